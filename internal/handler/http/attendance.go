package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gatewise/access-backend-go/internal/domain/attendance"
	"github.com/gatewise/access-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	History(w http.ResponseWriter, r *http.Request)
	Day(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// History implements AttendanceHandler.
func (h *AttendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	records, err := h.attendanceService.History(r.Context(), employeeID)
	if err != nil {
		slog.Error("Attendance history service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// Day implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Day(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	date, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("date"), time.Local)
	if err != nil {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	records, err := h.attendanceService.Day(r.Context(), employeeID, date)
	if err != nil {
		slog.Error("Attendance day service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}
