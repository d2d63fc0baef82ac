package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"hotelhub-backend/models"
	"hotelhub-backend/utils"

	"gorm.io/gorm"
)

// AuthService checks admin credentials against the hotels table.
// There is no lockout or rate limiting.
type AuthService struct {
	db *gorm.DB

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Authenticate returns the tenant session for a valid admin email and password.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(email, password string) (*models.TenantSession, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var hotel models.Hotel
	err := s.db.Select("id", "name", "admin_email", "admin_password", "subscription_plan").
		Where("admin_email = ?", email).
		First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// spend the same bcrypt time as a real comparison
			utils.CheckPasswordHash(password, s.placeholderHash())
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup tenant: %w", err)
	}

	if !utils.CheckPasswordHash(password, hotel.AdminPassword) {
		return nil, ErrInvalidCredentials
	}

	return &models.TenantSession{
		TenantID:         hotel.ID,
		TenantName:       hotel.Name,
		AdminEmail:       hotel.AdminEmail,
		SubscriptionPlan: hotel.SubscriptionPlan,
	}, nil
}

func (s *AuthService) placeholderHash() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = utils.HashPassword("placeholder-password")
	})
	return s.dummyHash
}
