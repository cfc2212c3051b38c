package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gatewise/access-backend-go/internal/domain/accesslog"
	"github.com/gatewise/access-backend-go/internal/handler/http/response"
)

type AccessLogHandler interface {
	RecordDeviceEvent(w http.ResponseWriter, r *http.Request)
	RecordManualEvent(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	FilterOptions(w http.ResponseWriter, r *http.Request)
	RecomputeStatuses(w http.ResponseWriter, r *http.Request)
}

type AccessLogHandlerImpl struct {
	accessLogService accesslog.AccessLogService
}

func NewAccessLogHandler(accessLogService accesslog.AccessLogService) AccessLogHandler {
	return &AccessLogHandlerImpl{accessLogService: accessLogService}
}

// RecordDeviceEvent implements AccessLogHandler.
func (h *AccessLogHandlerImpl) RecordDeviceEvent(w http.ResponseWriter, r *http.Request) {
	var eventReq accesslog.DeviceEventRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&eventReq); err != nil {
		slog.Error("Device event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := eventReq.Validate(); err != nil {
		slog.Error("Device event validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	event, err := h.accessLogService.RecordDeviceEvent(r.Context(), eventReq)
	if err != nil {
		slog.Error("Device event service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Access event recorded", "employee_id", event.EmployeeID, "access_type", event.AccessType)
	response.Created(w, "Access event recorded", event)
}

// RecordManualEvent implements AccessLogHandler.
func (h *AccessLogHandlerImpl) RecordManualEvent(w http.ResponseWriter, r *http.Request) {
	var eventReq accesslog.ManualEventRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&eventReq); err != nil {
		slog.Error("Manual event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := eventReq.Validate(); err != nil {
		slog.Error("Manual event validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	event, err := h.accessLogService.RecordManualEvent(r.Context(), eventReq)
	if err != nil {
		slog.Error("Manual event service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Manual access event recorded", "employee_id", event.EmployeeID)
	response.Created(w, "Access event recorded", event)
}

// List implements AccessLogHandler.
func (h *AccessLogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := listFilterFromQuery(r)

	logs, total, err := h.accessLogService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Access log list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	response.SuccessWithMeta(w, logs, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// FilterOptions implements AccessLogHandler.
func (h *AccessLogHandlerImpl) FilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.accessLogService.FilterOptions(r.Context())
	if err != nil {
		slog.Error("Access log filter options error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, opts)
}

// RecomputeStatuses implements AccessLogHandler.
func (h *AccessLogHandlerImpl) RecomputeStatuses(w http.ResponseWriter, r *http.Request) {
	updated, err := h.accessLogService.RecomputeStatuses(r.Context())
	if err != nil {
		slog.Error("Access log recompute error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Access log statuses recomputed", "updated", updated)
	response.SuccessWithMessage(w, "Access log statuses recomputed", map[string]int{"updated": updated})
}

func listFilterFromQuery(r *http.Request) accesslog.ListFilter {
	q := r.URL.Query()

	filter := accesslog.ListFilter{
		AccessPoint: q.Get("access_point"),
		Employee:    q.Get("employee"),
		Result:      q.Get("result"),
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = limit
	}

	if from, err := time.ParseInLocation("2006-01-02", q.Get("from_date"), time.Local); err == nil {
		filter.FromDate = &from
	}
	if to, err := time.ParseInLocation("2006-01-02", q.Get("to_date"), time.Local); err == nil {
		// Inclusive through the end of the day.
		end := to.AddDate(0, 0, 1).Add(-time.Second)
		filter.ToDate = &end
	}

	filter.Normalize()
	return filter
}
