package handler

import (
	"strconv"
	"time"

	"github.com/ayumu-dev/regi-api/internal/application/service"
	"github.com/ayumu-dev/regi-api/internal/presentation/http/dto/request"
	"github.com/ayumu-dev/regi-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles monthly revenue and financial report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Monthly handles the revenue summary for one calendar month
func (h *ReportHandler) Monthly(c *gin.Context) {
	var req request.ReportPeriodRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "year and month query parameters are required")
		return
	}

	summary, err := h.reportService.MonthlySummary(c.Request.Context(), req.Year, time.Month(req.Month))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly summary retrieved successfully", summary)
}

// Series handles the trailing monthly revenue series
func (h *ReportHandler) Series(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "6"))

	series, err := h.reportService.TrailingSeries(c.Request.Context(), months)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly series retrieved successfully", series)
}

// Financial handles the estimated profit report for one calendar month
func (h *ReportHandler) Financial(c *gin.Context) {
	var req request.ReportPeriodRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "year and month query parameters are required")
		return
	}

	report, err := h.reportService.FinancialReport(c.Request.Context(), req.Year, time.Month(req.Month))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Financial report retrieved successfully", report)
}
