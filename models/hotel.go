package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Hotel is the tenant. Every other table hangs off hotels.id and is removed with it.
type Hotel struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	Name                string     `gorm:"not null" json:"name"`
	Email               string     `gorm:"uniqueIndex;not null" json:"email"`
	Phone               string     `json:"phone"`
	Website             string     `json:"website"`
	Address             string     `json:"address"`
	City                string     `json:"city"`
	Country             string     `json:"country"`
	Subdomain           string     `gorm:"uniqueIndex;not null" json:"subdomain"`
	AdminEmail          string     `gorm:"index;not null" json:"adminEmail"`
	AdminPassword       string     `gorm:"not null" json:"-"`
	SubscriptionPlan    string     `gorm:"default:'basic'" json:"subscriptionPlan"`
	SubscriptionStatus  string     `gorm:"default:'active'" json:"subscriptionStatus"`
	SubscriptionExpires *time.Time `json:"subscriptionExpires,omitempty"`
	APIKey              *string    `gorm:"uniqueIndex" json:"-"`
	BrandingColors      JSONB      `gorm:"type:text" json:"brandingColors"`
	CustomLogo          string     `json:"customLogo"`
	Timezone            string     `gorm:"default:'UTC'" json:"timezone"`
	Currency            string     `gorm:"default:'EUR'" json:"currency"`
	Language            string     `gorm:"default:'en'" json:"language"`
	Status              string     `gorm:"default:'active'" json:"status"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`

	RoomTypes    []RoomType      `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"-"`
	Reservations []Reservation   `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"-"`
	Customers    []Customer      `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"-"`
	EmailLogs    []EmailLog      `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"-"`
	Payments     []Payment       `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"-"`
	Analytics    []AnalyticsData `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"-"`
	Settings     []SystemSetting `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"-"`
}

// DefaultBranding is applied to tenants created without branding colors.
func DefaultBranding() JSONB {
	return JSONB{"primary": "#667eea", "secondary": "#764ba2"}
}

// JSONB stores a free-form JSON object in a text column
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return "{}", nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (j *JSONB) Scan(value interface{}) error {
	var b []byte
	switch v := value.(type) {
	case nil:
		*j = JSONB{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("type assertion to []byte or string failed")
	}
	return json.Unmarshal(b, j)
}
