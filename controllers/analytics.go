package controllers

import (
	"net/http"
	"strconv"

	"hotelhub-backend/services"

	"github.com/gin-gonic/gin"
)

// AnalyticsController returns the stored daily snapshots for a tenant.
type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

func (ac *AnalyticsController) GetAnalytics(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	rows, err := ac.analytics.ListAnalytics(id, limit)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch analytics")
		return
	}
	c.JSON(http.StatusOK, rows)
}
