package models

import "time"

// SystemSetting is a per-hotel key/value pair.
type SystemSetting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	HotelID      uint      `gorm:"not null;uniqueIndex:idx_setting_hotel_key,priority:1" json:"hotelId"`
	SettingKey   string    `gorm:"not null;uniqueIndex:idx_setting_hotel_key,priority:2" json:"key"`
	SettingValue string    `gorm:"type:text" json:"value"`
	SettingType  string    `gorm:"default:'text'" json:"type"`
	Description  string    `json:"description"`
	IsPublic     bool      `gorm:"default:false" json:"isPublic"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
