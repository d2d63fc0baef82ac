package models

import "time"

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Payment is a ledger entry against a reservation.
type Payment struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	HotelID         uint       `gorm:"index;not null" json:"hotelId"`
	ReservationID   uint       `gorm:"index;not null" json:"reservationId"`
	CustomerID      *uint      `gorm:"index" json:"customerId,omitempty"`
	Amount          float64    `gorm:"type:decimal(10,2);not null" json:"amount"`
	Currency        string     `gorm:"default:'EUR'" json:"currency"`
	PaymentMethod   string     `json:"paymentMethod"`
	PaymentProvider string     `json:"paymentProvider"`
	TransactionID   string     `gorm:"uniqueIndex;not null" json:"transactionId"`
	Status          string     `gorm:"index;default:'pending'" json:"status"`
	PaymentDate     *time.Time `json:"paymentDate,omitempty"`
	Description     string     `json:"description"`
	Fees            float64    `gorm:"type:decimal(10,2);default:0" json:"fees"`
	NetAmount       float64    `gorm:"type:decimal(10,2)" json:"netAmount"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}
