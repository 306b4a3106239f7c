package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/simplebit/merchant-api/internal/application/service"
	"github.com/simplebit/merchant-api/internal/presentation/http/dto/response"
)

// DashboardHandler serves the overview screen payload
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get returns the merchant's dashboard overview
func (h *DashboardHandler) Get(c *gin.Context) {
	userID, ok := GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	overview, err := h.dashboardService.Get(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard retrieved", overview)
}
