package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gatewise/access-backend-go/internal/domain/employee"
	"github.com/gatewise/access-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetByMemberCard(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	board, err := h.employeeService.List(r.Context())
	if err != nil {
		slog.Error("Employee list service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, board)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Employee create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Employee create validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	emp, err := h.employeeService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Employee create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created successfully")
	response.Created(w, "Employee created successfully", emp)
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	detail, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		slog.Error("Employee get service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, detail)
}

// GetByMemberCard implements EmployeeHandler. Badge readers resolve a
// scanned card to an employee before posting the event.
func (h *EmployeeHandlerImpl) GetByMemberCard(w http.ResponseWriter, r *http.Request) {
	card := chi.URLParam(r, "card")

	emp, err := h.employeeService.GetByMemberCard(r.Context(), card)
	if err != nil {
		slog.Error("Employee card lookup error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, emp)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq employee.UpdateEmployeeRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Employee update decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if updateReq.IsEmpty() {
		response.BadRequest(w, "At least one field must be provided", nil)
		return
	}

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Employee update validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	emp, err := h.employeeService.Update(r.Context(), id, updateReq)
	if err != nil {
		slog.Error("Employee update service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee updated successfully")
	response.SuccessWithMessage(w, "Employee updated successfully", emp)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		slog.Error("Employee delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee deleted successfully")
	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}
