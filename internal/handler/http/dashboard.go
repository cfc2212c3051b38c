package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gatewise/access-backend-go/internal/domain/dashboard"
	"github.com/gatewise/access-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Statistics(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Statistics implements DashboardHandler.
func (h *DashboardHandlerImpl) Statistics(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	stats, err := h.dashboardService.Statistics(r.Context(), page, pageSize)
	if err != nil {
		slog.Error("Dashboard statistics service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}
