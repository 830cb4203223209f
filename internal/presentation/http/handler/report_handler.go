package handler

import (
	"strconv"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/application/service"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles reporting HTTP requests. Every route here sits
// behind the owner-only middleware.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Revenue returns revenue, received, cost and profit for a period
func (h *ReportHandler) Revenue(c *gin.Context) {
	from, to, err := h.reportService.ResolvePeriod(c.Query("period"), c.Query("from"), c.Query("to"))
	if err != nil {
		response.Error(c, err)
		return
	}

	summary, err := h.reportService.GetRevenueSummary(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Revenue summary retrieved successfully", summary)
}

// TopProducts returns the best-selling products for a period
func (h *ReportHandler) TopProducts(c *gin.Context) {
	from, to, err := h.reportService.ResolvePeriod(c.Query("period"), c.Query("from"), c.Query("to"))
	if err != nil {
		response.Error(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	products, err := h.reportService.GetTopProducts(c.Request.Context(), from, to, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top products retrieved successfully", products)
}
