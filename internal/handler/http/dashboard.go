package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetWeeklyAttendance returns the weekly attendance chart and totals
	GetWeeklyAttendance(w http.ResponseWriter, r *http.Request)
	// Refresh reloads every collection from the records service
	Refresh(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetWeeklyAttendance handles GET /dashboard/weekly
func (h *dashboardHandlerImpl) GetWeeklyAttendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetWeeklyAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Refresh handles POST /dashboard/refresh
func (h *dashboardHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Refresh(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Records refreshed", result)
}
