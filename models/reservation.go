package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	ReservationConfirmed  = "confirmed"
	ReservationCancelled  = "cancelled"
	ReservationCheckedIn  = "checked_in"
	ReservationCheckedOut = "checked_out"
)

// Payment status of a reservation as a whole
const (
	ReservationUnpaid   = "pending"
	ReservationPartial  = "partial"
	ReservationPaid     = "paid"
	ReservationRefunded = "refunded"
)

var (
	ErrInvalidStay  = errors.New("check-out must be after check-in")
	ErrInvalidGuest = errors.New("guest name and email are required")
	ErrNoAdults     = errors.New("at least one adult is required")
)

type Reservation struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	HotelID          uint      `gorm:"index;not null" json:"hotelId"`
	RoomTypeID       uint      `gorm:"index;not null" json:"roomTypeId"`
	ConfirmationCode string    `gorm:"uniqueIndex;not null" json:"confirmationCode"`
	GuestName        string    `gorm:"not null" json:"guestName"`
	GuestEmail       string    `gorm:"index;not null" json:"guestEmail"`
	GuestPhone       string    `json:"guestPhone"`
	GuestAddress     string    `json:"guestAddress"`
	GuestCountry     string    `json:"guestCountry"`
	CheckIn          time.Time `gorm:"not null" json:"checkIn"`
	CheckOut         time.Time `gorm:"not null" json:"checkOut"`
	Adults           int       `gorm:"default:1" json:"adults"`
	Children         int       `gorm:"default:0" json:"children"`
	Infants          int       `gorm:"default:0" json:"infants"`
	SpecialRequests  string    `json:"specialRequests"`
	TotalPrice       float64   `gorm:"type:decimal(10,2)" json:"totalPrice"`
	Currency         string    `gorm:"default:'EUR'" json:"currency"`
	PaymentStatus    string    `gorm:"default:'pending'" json:"paymentStatus"`
	PaymentMethod    string    `json:"paymentMethod"`
	BookingSource    string    `gorm:"default:'email'" json:"bookingSource"`
	Status           string    `gorm:"index;default:'confirmed'" json:"status"`
	Notes            string    `json:"notes"`
	StaffNotes       string    `json:"staffNotes"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	RoomType  RoomType   `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
	Payments  []Payment  `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE" json:"-"`
	EmailLogs []EmailLog `gorm:"foreignKey:ReservationID;constraint:OnDelete:SET NULL" json:"-"`
}

// Stay is the guest-supplied part of a reservation.
type Stay struct {
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	GuestCountry    string
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	Infants         int
	SpecialRequests string
	BookingSource   string
}

// NewReservation validates a stay and returns an unsaved reservation for it.
// Dates are truncated to calendar days in UTC.
func NewReservation(hotelID, roomTypeID uint, stay Stay) (*Reservation, error) {
	name := strings.TrimSpace(stay.GuestName)
	email := strings.ToLower(strings.TrimSpace(stay.GuestEmail))
	if name == "" || email == "" {
		return nil, ErrInvalidGuest
	}
	if stay.Adults < 1 {
		return nil, ErrNoAdults
	}

	checkIn := dateOnly(stay.CheckIn)
	checkOut := dateOnly(stay.CheckOut)
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidStay
	}

	source := stay.BookingSource
	if source == "" {
		source = "admin"
	}

	return &Reservation{
		HotelID:          hotelID,
		RoomTypeID:       roomTypeID,
		ConfirmationCode: NewConfirmationCode(time.Now()),
		GuestName:        name,
		GuestEmail:       email,
		GuestPhone:       strings.TrimSpace(stay.GuestPhone),
		GuestCountry:     stay.GuestCountry,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Adults:           stay.Adults,
		Children:         stay.Children,
		Infants:          stay.Infants,
		SpecialRequests:  stay.SpecialRequests,
		PaymentStatus:    ReservationUnpaid,
		BookingSource:    source,
		Status:           ReservationConfirmed,
	}, nil
}

// Nights is the number of nights between check-in and check-out.
func (r Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// NewConfirmationCode returns a code of the form YBH20240131A1B2C3D4.
func NewConfirmationCode(now time.Time) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("YBH%s%s", now.Format("20060102"), strings.ToUpper(id[:8]))
}

func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationConfirmed, ReservationCancelled, ReservationCheckedIn, ReservationCheckedOut:
		return true
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
