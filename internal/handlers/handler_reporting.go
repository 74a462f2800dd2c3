package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/quickbill305/quickbill_backend/internal/core/ports/services"
	"github.com/quickbill305/quickbill_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for reports and the dashboard.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/daily", h.dailyReport)
		reports.GET("/dashboard", h.dashboard)
	}
}

// dailyReport godoc
// @Summary Daily collections report
// @Description Builds the end-of-day collections report for one date (default today), broken down by method, account type, collector and hour.
// @Tags reports
// @Produce json
// @Param date query string false "Report date (YYYY-MM-DD)"
// @Success 200 {object} dto.DailyReportResponse
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/daily [get]
func (h *reportingHandler) dailyReport(c *gin.Context) {
	var params dto.DailyReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
		return
	}

	day := time.Now()
	if params.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", params.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid date, expected YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	resp, err := h.reportingService.DailyReport(c.Request.Context(), day)
	if err != nil {
		respondError(c, err, "Failed to build daily report")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// dashboard godoc
// @Summary Dashboard summary
// @Description Builds the landing-page summary: account counts, billed/collected/outstanding totals, today's collections and bill-delivery progress.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) dashboard(c *gin.Context) {
	resp, err := h.reportingService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build dashboard summary")
		return
	}
	c.JSON(http.StatusOK, resp)
}
