package controllers

import (
	"net/http"

	"hotelhub-backend/services"
	"hotelhub-backend/utils"

	"github.com/gin-gonic/gin"
)

type RecordPaymentInput struct {
	ReservationID uint    `json:"reservationId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Fees          float64 `json:"fees"`
	PaymentMethod string  `json:"paymentMethod"`
	Provider      string  `json:"paymentProvider"`
	TransactionID string  `json:"transactionId"`
	Status        string  `json:"status"`
	Description   string  `json:"description"`
}

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

func (pc *PaymentController) RecordPayment(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	var input RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	payment, err := pc.payments.RecordPayment(id, services.PaymentInput{
		ReservationID: input.ReservationID,
		Amount:        input.Amount,
		Fees:          input.Fees,
		Method:        input.PaymentMethod,
		Provider:      input.Provider,
		TransactionID: input.TransactionID,
		Status:        input.Status,
		Description:   input.Description,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (pc *PaymentController) GetPayments(c *gin.Context) {
	id, ok := tenantID(c)
	if !ok {
		return
	}
	payments, err := pc.payments.ListPayments(id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}
