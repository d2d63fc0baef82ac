package models

import (
	"time"

	"gorm.io/datatypes"
)

// RoomType is a bookable category of room. Prices are per night.
type RoomType struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	HotelID            uint           `gorm:"index;not null" json:"hotelId"`
	Name               string         `gorm:"not null" json:"name"`
	Description        string         `json:"description"`
	Capacity           int            `gorm:"default:2" json:"capacity"`
	BedType            string         `json:"bedType"`
	SizeSqm            int            `json:"sizeSqm"`
	Amenities          datatypes.JSON `json:"amenities"`
	Images             datatypes.JSON `json:"images"`
	BasePrice          float64        `gorm:"type:decimal(10,2);not null" json:"basePrice"`
	WeekendPrice       float64        `gorm:"type:decimal(10,2)" json:"weekendPrice"`
	PeakSeasonPrice    float64        `gorm:"type:decimal(10,2)" json:"peakSeasonPrice"`
	MinimumStay        int            `gorm:"default:1" json:"minimumStay"`
	MaximumStay        int            `gorm:"default:30" json:"maximumStay"`
	AdvanceBookingDays int            `gorm:"default:365" json:"advanceBookingDays"`
	CancellationPolicy string         `json:"cancellationPolicy"`
	IsActive           bool           `gorm:"default:true" json:"isActive"`
	CreatedAt          time.Time      `json:"createdAt"`
}

// NightlyRate returns the price of a night starting on day. Friday and Saturday
// nights use the weekend price when one is set.
func (r RoomType) NightlyRate(day time.Time) float64 {
	switch day.Weekday() {
	case time.Friday, time.Saturday:
		if r.WeekendPrice > 0 {
			return r.WeekendPrice
		}
	}
	return r.BasePrice
}
