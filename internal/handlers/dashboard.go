package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/hiyoko-dev/crm-web/internal/errors"
	"github.com/hiyoko-dev/crm-web/internal/services"
)

// DashboardHandler serves the home page metrics.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Home renders the dashboard.
func (h *DashboardHandler) Home(c *gin.Context) {
	stats, err := h.dashboardService.Stats()
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"total_contacts":    stats.TotalContacts,
		"total_deals":       stats.TotalDeals,
		"total_companies":   stats.TotalCompanies,
		"recent_activities": stats.RecentActivities,
		"deals_by_stage":    stats.DealsByStage,
		"total_revenue":     stats.TotalRevenue,
		"overdue_tasks":     stats.OverdueTasks,
	})
}
