package services

import (
	"fmt"
	"time"

	"hotelhub-backend/models"

	"gorm.io/gorm"
)

const recentEmailLimit = 5

type EmailSummary struct {
	Subject          string    `json:"subject"`
	FromEmail        string    `json:"fromEmail"`
	LanguageDetected string    `json:"languageDetected"`
	CreatedAt        time.Time `json:"createdAt"`
}

type RoomTypeSummary struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
	IsActive  bool    `json:"isActive"`
}

type DashboardStats struct {
	TotalEmails       int64             `json:"totalEmails"`
	TotalReservations int64             `json:"totalReservations"`
	TotalCustomers    int64             `json:"totalCustomers"`
	TotalRevenue      float64           `json:"totalRevenue"`
	RecentEmails      []EmailSummary    `json:"recentEmails"`
	RoomTypes         []RoomTypeSummary `json:"roomTypes"`
}

// DashboardService aggregates read-only figures for one tenant.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// scoped is the only way this service reads a table; it pins every query to the tenant.
func (s *DashboardService) scoped(model interface{}, tenantID uint) *gorm.DB {
	return s.db.Model(model).Where("hotel_id = ?", tenantID)
}

func (s *DashboardService) GetDashboard(tenantID uint) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.scoped(&models.EmailLog{}, tenantID).Count(&stats.TotalEmails).Error; err != nil {
		return nil, fmt.Errorf("count emails: %w", err)
	}
	if err := s.scoped(&models.Reservation{}, tenantID).Count(&stats.TotalReservations).Error; err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}
	if err := s.scoped(&models.Customer{}, tenantID).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	if err := s.scoped(&models.Payment{}, tenantID).
		Where("status = ?", models.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}

	if err := s.scoped(&models.EmailLog{}, tenantID).
		Select("subject, from_email, language_detected, created_at").
		Order("created_at DESC, id DESC").
		Limit(recentEmailLimit).
		Scan(&stats.RecentEmails).Error; err != nil {
		return nil, fmt.Errorf("recent emails: %w", err)
	}

	if err := s.scoped(&models.RoomType{}, tenantID).
		Select("id, name, base_price, is_active").
		Order("name ASC").
		Scan(&stats.RoomTypes).Error; err != nil {
		return nil, fmt.Errorf("room types: %w", err)
	}

	if stats.RecentEmails == nil {
		stats.RecentEmails = []EmailSummary{}
	}
	if stats.RoomTypes == nil {
		stats.RoomTypes = []RoomTypeSummary{}
	}
	return stats, nil
}
