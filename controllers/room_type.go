package controllers

import (
	"net/http"

	"hotelhub-backend/services"
	"hotelhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomTypeController struct {
	hotels *services.HotelService
}

func NewRoomTypeController(hotels *services.HotelService) *RoomTypeController {
	return &RoomTypeController{hotels: hotels}
}

func (rc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	rooms, err := rc.hotels.ListRoomTypes(id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch room types")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (rc *RoomTypeController) CreateRoomType(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	var input services.RoomTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	room, err := rc.hotels.CreateRoomType(id, input)
	if err != nil {
		respondServiceError(c, err, "Failed to create room type")
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateRoomType applies a partial update. Setting isActive to false is how a
// room type is withdrawn; there is no delete.
func (rc *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	roomID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input services.RoomTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	room, err := rc.hotels.UpdateRoomType(id, roomID, input)
	if err != nil {
		respondServiceError(c, err, "Failed to update room type")
		return
	}
	c.JSON(http.StatusOK, room)
}
