package controllers

import (
	"net/http"

	"hotelhub-backend/logger"
	"hotelhub-backend/services"
	"hotelhub-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// Show renders the dashboard page for the session's tenant.
func (dc *DashboardController) Show(c *gin.Context) {
	session, ok := utils.CurrentSession(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	stats, err := dc.dashboard.GetDashboard(session.TenantID)
	if err != nil {
		logger.FromGin(c).Error("dashboard error", zap.Uint("hotel_id", session.TenantID), zap.Error(err))
		utils.SetFlash(c, "Dashboard loading failed")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Session": session,
		"Stats":   stats,
		"Flash":   utils.PopFlash(c),
	})
}

// Stats returns the same figures as JSON.
func (dc *DashboardController) Stats(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	stats, err := dc.dashboard.GetDashboard(id)
	if err != nil {
		respondServiceError(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, stats)
}
