package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/app/services"
	"github.com/almokadam/backoffice/internal/middleware"
)

// DashboardController handles the admin landing page endpoint
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the landing page counts and recent inquiries
// @Summary Get dashboard
// @Description Returns content counts and the most recent inquiries
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.dashboardService.GetDashboard(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dashboard,
		Timestamp: time.Now(),
	})
}
