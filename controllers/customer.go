package controllers

import (
	"net/http"
	"strconv"

	"hotelhub-backend/services"

	"github.com/gin-gonic/gin"
)

// CustomerController exposes the guest profiles and email history. Both are
// written by the reservation and notification flows, so they are read-only here.
type CustomerController struct {
	hotels *services.HotelService
}

func NewCustomerController(hotels *services.HotelService) *CustomerController {
	return &CustomerController{hotels: hotels}
}

func (cc *CustomerController) GetCustomers(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	customers, err := cc.hotels.ListCustomers(id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (cc *CustomerController) GetEmailLogs(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	logs, err := cc.hotels.ListEmailLogs(id, limit)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch emails")
		return
	}
	c.JSON(http.StatusOK, logs)
}
