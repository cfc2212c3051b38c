package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gatewise/access-backend-go/internal/domain/accesspoint"
	"github.com/gatewise/access-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AccessPointHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AccessPointHandlerImpl struct {
	accessPointService accesspoint.AccessPointService
}

func NewAccessPointHandler(accessPointService accesspoint.AccessPointService) AccessPointHandler {
	return &AccessPointHandlerImpl{accessPointService: accessPointService}
}

// List implements AccessPointHandler.
func (h *AccessPointHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	// The device lookup shares the collection endpoint via a query
	// parameter so readers can resolve themselves without knowing an ID.
	if deviceData := r.URL.Query().Get("device_data"); deviceData != "" {
		point, err := h.accessPointService.GetByDevice(r.Context(), deviceData)
		if err != nil {
			slog.Error("Access point device lookup error", "error", err)
			response.HandleError(w, err)
			return
		}
		response.Success(w, point)
		return
	}

	points, err := h.accessPointService.List(r.Context())
	if err != nil {
		slog.Error("Access point list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, points)
}

// Create implements AccessPointHandler.
func (h *AccessPointHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq accesspoint.CreateAccessPointRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Access point create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Access point create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := h.accessPointService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Access point create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Access point created successfully")
	response.Created(w, "Access point created successfully", created)
}

// GetByID implements AccessPointHandler.
func (h *AccessPointHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	point, err := h.accessPointService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Access point get service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, point)
}

// Update implements AccessPointHandler.
func (h *AccessPointHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq accesspoint.UpdateAccessPointRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Access point update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Access point update validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := h.accessPointService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Access point update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Access point updated successfully")
	response.SuccessWithMessage(w, "Access point updated successfully", updated)
}

// Delete implements AccessPointHandler.
func (h *AccessPointHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.accessPointService.Delete(r.Context(), id); err != nil {
		slog.Error("Access point delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Access point deleted successfully")
	response.SuccessWithMessage(w, "Access point deleted successfully", nil)
}
