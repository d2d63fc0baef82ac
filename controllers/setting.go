package controllers

import (
	"net/http"

	"hotelhub-backend/services"
	"hotelhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type SettingController struct {
	hotels *services.HotelService
}

func NewSettingController(hotels *services.HotelService) *SettingController {
	return &SettingController{hotels: hotels}
}

// GetSettings returns the hotel profile alongside its key/value settings.
func (sc *SettingController) GetSettings(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	hotel, err := sc.hotels.GetHotel(id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch hotel")
		return
	}
	settings, err := sc.hotels.ListSettings(id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"hotel":    hotel,
		"settings": settings,
	})
}

func (sc *SettingController) UpdateSetting(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	var input services.SettingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	setting, err := sc.hotels.UpsertSetting(id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to save setting")
		return
	}
	c.JSON(http.StatusOK, setting)
}
