package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/hiyoko-dev/crm-web/internal/errors"
	"github.com/hiyoko-dev/crm-web/internal/services"
)

// ReportHandler serves the reports page.
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Reports renders deal, revenue, conversion and task metrics.
func (h *ReportHandler) Reports(c *gin.Context) {
	stats, err := h.reportService.Stats()
	if err != nil {
		apierrors.ServerError(c, err)
		return
	}

	render(c, http.StatusOK, "reports.html", gin.H{
		"total_deals":     stats.TotalDeals,
		"won_deals":       stats.WonDeals,
		"lost_deals":      stats.LostDeals,
		"total_revenue":   stats.TotalRevenue,
		"conversion_rate": stats.ConversionRate,
		"tasks_by_status": stats.TasksByStatus,
	})
}
