package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_app/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_app/internal/dto"
	"github.com/SscSPs/bookkeeping_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the dashboard, rollups, reports and transaction feed.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to derived figures.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/dashboard", h.getDashboard)
	rg.GET("/transactions", h.getTransactions)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("", h.getReport)
		reportingGroup.GET("/monthly", h.getMonthlyRollup)
		reportingGroup.GET("/yearly", h.getYearlyRollup)
	}
}

// getDashboard godoc
// @Summary Dashboard figures
// @Description Grand totals, counts, net profit and today's sales and purchases.
// @Tags reports
// @Produce json
// @Success 200 {object} domain.DashboardSnapshot
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snapshot, err := h.reportingService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Not found", "Failed to compute dashboard")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// getMonthlyRollup godoc
// @Summary Monthly rollup
// @Description Sales, purchases, sale count, average sale and profit per month. months=0 spans all recorded months.
// @Tags reports
// @Produce json
// @Param months query int false "Number of months ending with the current one" default(12)
// @Success 200 {array} dto.MonthlyRollupRow
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyRollup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.MonthlyRollupParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid monthly rollup query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	rows, err := h.reportingService.MonthlyRollup(c.Request.Context(), params.Months)
	if err != nil {
		respondError(c, logger, err, "Not found", "Failed to compute monthly rollup")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyRollupResponse(rows))
}

// getYearlyRollup godoc
// @Summary Yearly rollup
// @Description Ten calendar years ending with the current one.
// @Tags reports
// @Produce json
// @Success 200 {array} dto.YearlyRollupRow
// @Security BearerAuth
// @Router /reports/yearly [get]
func (h *reportingHandler) getYearlyRollup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.YearlyRollup(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Not found", "Failed to compute yearly rollup")
		return
	}
	c.JSON(http.StatusOK, dto.ToYearlyRollupResponse(rows))
}

// getReport godoc
// @Summary Filtered report
// @Description Sales and/or purchases in a month and year, with totals and a combined transaction list.
// @Tags reports
// @Produce json
// @Param month query int false "Month 1-12; omit for any"
// @Param year query int false "Year; omit for any"
// @Param type query string false "sales, purchases or all" default(all)
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /reports [get]
func (h *reportingHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid report query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}
	reportType, err := domain.ParseReportType(params.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	logger = logger.With(
		slog.Int("month", params.Month),
		slog.Int("year", params.Year),
		slog.String("type", string(reportType)),
	)

	report, err := h.reportingService.Report(c.Request.Context(), domain.ReportFilter{
		Month: params.Month,
		Year:  params.Year,
		Type:  reportType,
	})
	if err != nil {
		respondError(c, logger, err, "Not found", "Failed to generate report")
		return
	}

	logger.Info("Report generated", slog.Int("sales", len(report.Sales)), slog.Int("purchases", len(report.Purchases)))
	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}

// getTransactions godoc
// @Summary Recent transactions
// @Description Sales and purchases merged, newest first. limit=0 returns everything.
// @Tags reports
// @Produce json
// @Param limit query int false "Maximum entries" default(10)
// @Success 200 {array} domain.TransactionEntry
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *reportingHandler) getTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.TransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	entries, err := h.reportingService.RecentTransactions(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, logger, err, "Not found", "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, entries)
}
