package handler

import (
	"strconv"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/application/service"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
	lowStockDefault  int
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService, lowStockDefault int) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		lowStockDefault:  lowStockDefault,
	}
}

// Stats returns the dashboard counters
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// LowStock returns the low-stock product list for the dashboard alert
func (h *DashboardHandler) LowStock(c *gin.Context) {
	threshold := h.lowStockDefault
	if raw := c.Query("threshold"); raw != "" {
		if t, err := strconv.Atoi(raw); err == nil && t >= 0 {
			threshold = t
		}
	}

	products, err := h.dashboardService.GetLowStockProducts(c.Request.Context(), threshold)
	if err != nil {
		response.Error(c, err)
		return
	}

	if IsOwner(c) {
		response.OK(c, "Low stock products retrieved successfully", response.NewOwnerProductViews(products))
		return
	}
	response.OK(c, "Low stock products retrieved successfully", products)
}
