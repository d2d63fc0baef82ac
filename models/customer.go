package models

import (
	"time"
)

// Customer is a guest profile, unique per hotel and email. TotalBookings,
// TotalSpent, LoyaltyPoints and LastStayDate are only written inside the
// reservation and payment transactions.
type Customer struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	HotelID               uint       `gorm:"not null;uniqueIndex:idx_customer_hotel_email,priority:1" json:"hotelId"`
	Email                 string     `gorm:"not null;uniqueIndex:idx_customer_hotel_email,priority:2" json:"email"`
	FirstName             string     `json:"firstName"`
	LastName              string     `json:"lastName"`
	Phone                 string     `json:"phone"`
	Address               string     `json:"address"`
	City                  string     `json:"city"`
	Country               string     `json:"country"`
	Nationality           string     `json:"nationality"`
	Preferences           string     `json:"preferences"`
	LoyaltyPoints         int        `gorm:"default:0" json:"loyaltyPoints"`
	VIPStatus             string     `gorm:"default:'regular'" json:"vipStatus"`
	MarketingConsent      bool       `gorm:"default:false" json:"marketingConsent"`
	CommunicationLanguage string     `gorm:"default:'en'" json:"communicationLanguage"`
	TotalBookings         int        `gorm:"default:0" json:"totalBookings"`
	TotalSpent            float64    `gorm:"type:decimal(10,2);default:0" json:"totalSpent"`
	LastStayDate          *time.Time `json:"lastStayDate,omitempty"`
	Notes                 string     `json:"notes"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`

	Payments []Payment `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"-"`
}

func (c Customer) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
