package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gatewise/access-backend-go/internal/domain/site"
	"github.com/gatewise/access-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SiteHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SiteHandlerImpl struct {
	siteService site.SiteService
}

func NewSiteHandler(siteService site.SiteService) SiteHandler {
	return &SiteHandlerImpl{siteService: siteService}
}

// List implements SiteHandler.
func (h *SiteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sites, err := h.siteService.List(r.Context())
	if err != nil {
		slog.Error("Site list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, sites)
}

// Create implements SiteHandler.
func (h *SiteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq site.CreateSiteRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Site create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Site create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := h.siteService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Site create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Site created successfully")
	response.Created(w, "Site created successfully", created)
}

// GetByID implements SiteHandler.
func (h *SiteHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.siteService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Site get service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, found)
}

// Update implements SiteHandler.
func (h *SiteHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq site.UpdateSiteRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Site update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Site update validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := h.siteService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Site update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Site updated successfully")
	response.SuccessWithMessage(w, "Site updated successfully", updated)
}

// Delete implements SiteHandler.
func (h *SiteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.siteService.Delete(r.Context(), id); err != nil {
		slog.Error("Site delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Site deleted successfully")
	response.SuccessWithMessage(w, "Site deleted successfully", nil)
}
