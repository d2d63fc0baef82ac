package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"hotelhub-backend/logger"
	"hotelhub-backend/models"
	"hotelhub-backend/services"
	"hotelhub-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	dateLayout      = "2006-01-02"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type CreateReservationInput struct {
	RoomTypeID      uint   `json:"roomTypeId" binding:"required"`
	GuestName       string `json:"guestName" binding:"required"`
	GuestEmail      string `json:"guestEmail" binding:"required,email"`
	GuestPhone      string `json:"guestPhone"`
	GuestCountry    string `json:"guestCountry"`
	CheckIn         string `json:"checkIn" binding:"required"` // YYYY-MM-DD
	CheckOut        string `json:"checkOut" binding:"required"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	Infants         int    `json:"infants"`
	SpecialRequests string `json:"specialRequests"`
	BookingSource   string `json:"bookingSource"`
	Notes           string `json:"notes"`
}

type UpdateReservationStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type ReservationController struct {
	reservations *services.ReservationService
	exports      *services.ExportService
}

func NewReservationController(reservations *services.ReservationService, exports *services.ExportService) *ReservationController {
	return &ReservationController{reservations: reservations, exports: exports}
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}

	var input CreateReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	checkIn, err := time.Parse(dateLayout, input.CheckIn)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "checkIn must be YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse(dateLayout, input.CheckOut)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "checkOut must be YYYY-MM-DD")
		return
	}
	if input.Adults == 0 {
		input.Adults = 1
	}

	reservation, err := rc.reservations.CreateReservation(id, services.CreateReservationInput{
		RoomTypeID: input.RoomTypeID,
		Notes:      input.Notes,
		Stay: models.Stay{
			GuestName:       input.GuestName,
			GuestEmail:      input.GuestEmail,
			GuestPhone:      input.GuestPhone,
			GuestCountry:    input.GuestCountry,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			Adults:          input.Adults,
			Children:        input.Children,
			Infants:         input.Infants,
			SpecialRequests: input.SpecialRequests,
			BookingSource:   input.BookingSource,
		},
	})
	if err != nil {
		respondServiceError(c, err, "Failed to create reservation")
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

func (rc *ReservationController) GetReservations(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	status := c.Query("status")
	if status != "" && !models.ValidReservationStatus(status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
		return
	}

	reservations, err := rc.reservations.ListReservations(id, status)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch reservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (rc *ReservationController) GetReservation(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	reservation, err := rc.reservations.GetReservation(id, c.Param("code"))
	if err != nil {
		respondServiceError(c, err, "Failed to fetch reservation")
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	reservationID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input UpdateReservationStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reservation, err := rc.reservations.UpdateReservationStatus(id, reservationID, input.Status)
	if err != nil {
		respondServiceError(c, err, "Failed to update reservation")
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// ExportReservations sends the tenant's reservations as an XLSX download.
func (rc *ReservationController) ExportReservations(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := rc.exports.ExportReservations(id, &buf); err != nil {
		logger.FromGin(c).Error("reservation export failed", zap.Uint("hotel_id", id), zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export reservations")
		return
	}

	filename := fmt.Sprintf("reservations-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
