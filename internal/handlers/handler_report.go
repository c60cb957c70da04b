package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contafacil/contafacil-backend/internal/core/domain"
	portssvc "github.com/contafacil/contafacil-backend/internal/core/ports/services"
	"github.com/contafacil/contafacil-backend/internal/dto"
)

// reportHandler handles HTTP requests related to financial reports.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{
		reportService: rs,
	}
}

// registerReportRoutes registers routes related to financial reports.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.POST("", h.createReport)
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
		reports.PUT("/:id", h.updateReport)
		reports.DELETE("/:id", h.deleteReport)

		reports.POST("/generate/income-statement", h.generateIncomeStatement)
		reports.POST("/generate/balance-sheet", h.generateBalanceSheet)
		reports.POST("/generate/cash-flow", h.generateCashFlow)
	}
}

// createReport godoc
// @Summary Store a report
// @Description Stores a report with a caller-supplied payload matching the report type
// @Tags reports
// @Accept  json
// @Produce  json
// @Param   report body dto.CreateReportRequest true "Report details"
// @Success 201 {object} dto.Response{data=dto.ReportResponse}
// @Failure 400 {object} dto.Response "Validation error (payload does not match type)"
// @Security BearerAuth
// @Router /reports [post]
func (h *reportHandler) createReport(c *gin.Context) {
	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.reportService.CreateReport(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create report")
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccess(dto.ToReportResponse(report)))
}

// getReport godoc
// @Summary Get a report by ID
// @Tags reports
// @Produce  json
// @Param   id path string true "Report ID"
// @Success 200 {object} dto.Response{data=dto.ReportResponse}
// @Failure 404 {object} dto.Response "Report not found"
// @Security BearerAuth
// @Router /reports/{id} [get]
func (h *reportHandler) getReport(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.reportService.GetReportByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve report")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToReportResponse(report)))
}

// listReports godoc
// @Summary List stored reports
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.Response{data=[]dto.ReportResponse}
// @Security BearerAuth
// @Router /reports [get]
func (h *reportHandler) listReports(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	reports, err := h.reportService.ListReports(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list reports")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToReportResponses(reports)))
}

// updateReport godoc
// @Summary Update a stored report
// @Description Updates a report's name, period or payload; the report type is immutable
// @Tags reports
// @Accept  json
// @Produce  json
// @Param   id path string true "Report ID"
// @Param   report body dto.UpdateReportRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.ReportResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Failure 404 {object} dto.Response "Report not found"
// @Security BearerAuth
// @Router /reports/{id} [put]
func (h *reportHandler) updateReport(c *gin.Context) {
	var req dto.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.reportService.UpdateReport(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update report")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess(dto.ToReportResponse(report)))
}

// deleteReport godoc
// @Summary Delete a stored report
// @Tags reports
// @Produce  json
// @Param   id path string true "Report ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response "Report not found"
// @Security BearerAuth
// @Router /reports/{id} [delete]
func (h *reportHandler) deleteReport(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.reportService.DeleteReport(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete report")
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessMessage("Report deleted"))
}

// generateIncomeStatement godoc
// @Summary Generate an income statement
// @Description Aggregates the period's completed transactions into an income statement and stores it
// @Tags reports
// @Accept  json
// @Produce  json
// @Param   period body dto.GenerateReportRequest true "Reporting period"
// @Success 201 {object} dto.Response{data=dto.ReportResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Security BearerAuth
// @Router /reports/generate/income-statement [post]
func (h *reportHandler) generateIncomeStatement(c *gin.Context) {
	h.generate(c, h.reportService.GenerateIncomeStatement)
}

// generateBalanceSheet godoc
// @Summary Generate a balance sheet
// @Description Computes per-account balances and groups them under assets and liabilities; equity is derived
// @Tags reports
// @Accept  json
// @Produce  json
// @Param   period body dto.GenerateReportRequest true "Reporting period"
// @Success 201 {object} dto.Response{data=dto.ReportResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Security BearerAuth
// @Router /reports/generate/balance-sheet [post]
func (h *reportHandler) generateBalanceSheet(c *gin.Context) {
	h.generate(c, h.reportService.GenerateBalanceSheet)
}

// generateCashFlow godoc
// @Summary Generate a cash flow statement
// @Description Aggregates the period's completed income and expense transactions into cash inflows and outflows
// @Tags reports
// @Accept  json
// @Produce  json
// @Param   period body dto.GenerateReportRequest true "Reporting period"
// @Success 201 {object} dto.Response{data=dto.ReportResponse}
// @Failure 400 {object} dto.Response "Validation error"
// @Security BearerAuth
// @Router /reports/generate/cash-flow [post]
func (h *reportHandler) generateCashFlow(c *gin.Context) {
	h.generate(c, h.reportService.GenerateCashFlow)
}

// generateFunc is the shared signature of the three report generators.
type generateFunc func(ctx context.Context, ownerID string, req dto.GenerateReportRequest) (*domain.FinancialReport, error)

// generate binds the period request and delegates to the selected generator.
func (h *reportHandler) generate(c *gin.Context, fn generateFunc) {
	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := fn(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to generate report")
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccess(dto.ToReportResponse(report)))
}
