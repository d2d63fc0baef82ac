package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"hotelhub-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomTypeInput carries room type fields from the admin API. Nil pointers
// leave the stored value untouched on update.
type RoomTypeInput struct {
	Name               *string  `json:"name"`
	Description        *string  `json:"description"`
	Capacity           *int     `json:"capacity"`
	BedType            *string  `json:"bedType"`
	SizeSqm            *int     `json:"sizeSqm"`
	Amenities          []string `json:"amenities"`
	BasePrice          *float64 `json:"basePrice"`
	WeekendPrice       *float64 `json:"weekendPrice"`
	PeakSeasonPrice    *float64 `json:"peakSeasonPrice"`
	MinimumStay        *int     `json:"minimumStay"`
	MaximumStay        *int     `json:"maximumStay"`
	AdvanceBookingDays *int     `json:"advanceBookingDays"`
	CancellationPolicy *string  `json:"cancellationPolicy"`
	IsActive           *bool    `json:"isActive"`
}

type SettingInput struct {
	Key         string `json:"key" binding:"required"`
	Value       string `json:"value"`
	Type        string `json:"type"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

// HotelService covers the tenant's own configuration and read-only listings.
type HotelService struct {
	db *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{db: db}
}

func (s *HotelService) GetHotel(tenantID uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.db.First(&hotel, tenantID).Error; err != nil {
		return nil, notFound("hotel", err)
	}
	return &hotel, nil
}

func (s *HotelService) ListRoomTypes(tenantID uint) ([]models.RoomType, error) {
	rooms := []models.RoomType{}
	if err := s.db.Where("hotel_id = ?", tenantID).Order("name ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}
	return rooms, nil
}

func (s *HotelService) CreateRoomType(tenantID uint, in RoomTypeInput) (*models.RoomType, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.BasePrice == nil || *in.BasePrice <= 0 {
		return nil, fmt.Errorf("%w: base price must be positive", ErrValidation)
	}

	room := models.RoomType{
		HotelID:   tenantID,
		Name:      strings.TrimSpace(*in.Name),
		BasePrice: *in.BasePrice,
		Amenities: datatypes.JSON(`[]`),
		Images:    datatypes.JSON(`[]`),
		IsActive:  true,
	}
	if err := applyRoomType(&room, in); err != nil {
		return nil, err
	}

	inactive := !room.IsActive
	if err := s.db.Create(&room).Error; err != nil {
		return nil, fmt.Errorf("create room type: %w", err)
	}
	// is_active defaults to true on insert, so a disabled room needs a second write.
	if inactive {
		if err := s.db.Model(&room).Update("is_active", false).Error; err != nil {
			return nil, fmt.Errorf("create room type: %w", err)
		}
		room.IsActive = false
	}
	return &room, nil
}

func (s *HotelService) UpdateRoomType(tenantID, id uint, in RoomTypeInput) (*models.RoomType, error) {
	var room models.RoomType
	if err := s.db.Where("hotel_id = ? AND id = ?", tenantID, id).First(&room).Error; err != nil {
		return nil, notFound("room type", err)
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if in.BasePrice != nil && *in.BasePrice <= 0 {
		return nil, fmt.Errorf("%w: base price must be positive", ErrValidation)
	}
	if in.Name != nil {
		room.Name = strings.TrimSpace(*in.Name)
	}
	if in.BasePrice != nil {
		room.BasePrice = *in.BasePrice
	}
	if err := applyRoomType(&room, in); err != nil {
		return nil, err
	}

	if err := s.db.Select("*").Omit("id", "hotel_id", "created_at").Updates(&room).Error; err != nil {
		return nil, fmt.Errorf("update room type: %w", err)
	}
	return &room, nil
}

func applyRoomType(room *models.RoomType, in RoomTypeInput) error {
	if in.Description != nil {
		room.Description = *in.Description
	}
	if in.Capacity != nil {
		room.Capacity = *in.Capacity
	}
	if in.BedType != nil {
		room.BedType = *in.BedType
	}
	if in.SizeSqm != nil {
		room.SizeSqm = *in.SizeSqm
	}
	if in.Amenities != nil {
		raw, err := json.Marshal(in.Amenities)
		if err != nil {
			return err
		}
		room.Amenities = datatypes.JSON(raw)
	}
	if in.WeekendPrice != nil {
		room.WeekendPrice = *in.WeekendPrice
	}
	if in.PeakSeasonPrice != nil {
		room.PeakSeasonPrice = *in.PeakSeasonPrice
	}
	if in.MinimumStay != nil {
		room.MinimumStay = *in.MinimumStay
	}
	if in.MaximumStay != nil {
		room.MaximumStay = *in.MaximumStay
	}
	if in.AdvanceBookingDays != nil {
		room.AdvanceBookingDays = *in.AdvanceBookingDays
	}
	if in.CancellationPolicy != nil {
		room.CancellationPolicy = *in.CancellationPolicy
	}
	if in.IsActive != nil {
		room.IsActive = *in.IsActive
	}

	if room.Capacity == 0 {
		room.Capacity = 2
	}
	if room.MinimumStay == 0 {
		room.MinimumStay = 1
	}
	if room.MaximumStay == 0 {
		room.MaximumStay = 30
	}
	if room.AdvanceBookingDays == 0 {
		room.AdvanceBookingDays = 365
	}
	if room.MaximumStay < room.MinimumStay {
		return fmt.Errorf("%w: maximum stay is below minimum stay", ErrValidation)
	}
	return nil
}

func (s *HotelService) ListSettings(tenantID uint) ([]models.SystemSetting, error) {
	settings := []models.SystemSetting{}
	if err := s.db.Where("hotel_id = ?", tenantID).Order("setting_key ASC").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return settings, nil
}

// UpsertSetting writes a setting, replacing any existing value for the key.
func (s *HotelService) UpsertSetting(tenantID uint, in SettingInput) (*models.SystemSetting, error) {
	key := strings.TrimSpace(in.Key)
	if key == "" {
		return nil, fmt.Errorf("%w: key is required", ErrValidation)
	}
	settingType := in.Type
	if settingType == "" {
		settingType = "text"
	}

	setting := models.SystemSetting{
		HotelID:      tenantID,
		SettingKey:   key,
		SettingValue: in.Value,
		SettingType:  settingType,
		Description:  in.Description,
		IsPublic:     in.IsPublic,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hotel_id"}, {Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "setting_type", "description", "is_public", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, fmt.Errorf("upsert setting: %w", err)
	}

	if err := s.db.Where("hotel_id = ? AND setting_key = ?", tenantID, key).First(&setting).Error; err != nil {
		return nil, fmt.Errorf("reload setting: %w", err)
	}
	return &setting, nil
}

func (s *HotelService) ListCustomers(tenantID uint) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := s.db.Where("hotel_id = ?", tenantID).Order("created_at DESC, id DESC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (s *HotelService) ListEmailLogs(tenantID uint, limit int) ([]models.EmailLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	logs := []models.EmailLog{}
	if err := s.db.Where("hotel_id = ?", tenantID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list email logs: %w", err)
	}
	return logs, nil
}
