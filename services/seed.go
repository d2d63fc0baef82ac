package services

import (
	"errors"
	"fmt"
	"time"

	"hotelhub-backend/config"
	"hotelhub-backend/logger"
	"hotelhub-backend/models"
	"hotelhub-backend/utils"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminSubdomain is reserved for the seed tenant.
const AdminSubdomain = "admin"

var errAlreadySeeded = errors.New("seed tenant exists")

const (
	maxSchemaAttempts = 5
	schemaRetryDelay  = 200 * time.Millisecond
)

// EnsureSchema creates missing tables and seeds the admin tenant on first run.
// It is safe to call on every start. Failures are logged and reported as false.
func EnsureSchema(db *gorm.DB, seed config.SeedConfig) bool {
	log := logger.GetLogger()

	var err error
	for attempt := 1; attempt <= maxSchemaAttempts; attempt++ {
		if err = ensureSchema(db, seed); err == nil {
			log.Info("database initialized")
			return true
		}
		if !config.IsTransientDBError(err) && !config.IsSchemaConflict(err) {
			break
		}
		log.Warn("database busy or migrated concurrently, retrying initialization",
			zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(time.Duration(attempt) * schemaRetryDelay)
	}

	log.Error("database initialization failed", zap.Error(err))
	return false
}

func ensureSchema(db *gorm.DB, seed config.SeedConfig) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return seedAdminTenant(db, seed)
}

func adminTenantExists(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&models.Hotel{}).Where("subdomain = ?", AdminSubdomain).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check seed tenant: %w", err)
	}
	return count > 0, nil
}

// seedAdminTenant re-checks for the tenant inside the insert transaction.
func seedAdminTenant(db *gorm.DB, seed config.SeedConfig) error {
	exists, err := adminTenantExists(db)
	if err != nil || exists {
		return err
	}

	hashed, err := utils.HashPassword(seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	apiKey := utils.GenerateAPIKey()

	err = db.Transaction(func(tx *gorm.DB) error {
		exists, err := adminTenantExists(tx)
		if err != nil {
			return err
		}
		if exists {
			return errAlreadySeeded
		}

		hotel := models.Hotel{
			Name:             "YourBookingHub Ultra Admin",
			Email:            seed.AdminEmail,
			Subdomain:        AdminSubdomain,
			AdminEmail:       seed.AdminEmail,
			AdminPassword:    hashed,
			Phone:            "+1-800-BOOKING-HUB",
			Website:          "https://yourbookinghub.org",
			Address:          "123 Hotel Management Street",
			City:             "San Francisco",
			Country:          "USA",
			SubscriptionPlan: "enterprise",
			APIKey:           &apiKey,
			BrandingColors:   models.DefaultBranding(),
			Timezone:         "PST",
			Currency:         "USD",
			Language:         "en",
		}
		if err := tx.Create(&hotel).Error; err != nil {
			return err
		}

		rooms := defaultRoomTypes(hotel.ID)
		return tx.Create(&rooms).Error
	})

	// Another process seeded between our check and insert.
	if errors.Is(err, errAlreadySeeded) || errors.Is(err, gorm.ErrDuplicatedKey) {
		logger.GetLogger().Info("seed tenant created concurrently, skipping")
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed tenant: %w", err)
	}

	logger.GetLogger().Info("seed tenant created", zap.String("admin_email", seed.AdminEmail))
	return nil
}

func defaultRoomTypes(hotelID uint) []models.RoomType {
	return []models.RoomType{
		{
			HotelID:         hotelID,
			Name:            "Standard Room",
			Description:     "Comfortable standard accommodation",
			Capacity:        2,
			BedType:         "Queen",
			SizeSqm:         25,
			Amenities:       datatypes.JSON(`["WiFi", "TV", "AC", "Mini-fridge"]`),
			Images:          datatypes.JSON(`[]`),
			BasePrice:       100.00,
			WeekendPrice:    120.00,
			PeakSeasonPrice: 150.00,
			IsActive:        true,
		},
		{
			HotelID:         hotelID,
			Name:            "Deluxe Room",
			Description:     "Spacious room with premium amenities",
			Capacity:        2,
			BedType:         "King",
			SizeSqm:         35,
			Amenities:       datatypes.JSON(`["WiFi", "TV", "AC", "Mini-bar", "Balcony"]`),
			Images:          datatypes.JSON(`[]`),
			BasePrice:       150.00,
			WeekendPrice:    180.00,
			PeakSeasonPrice: 220.00,
			IsActive:        true,
		},
		{
			HotelID:         hotelID,
			Name:            "Suite",
			Description:     "Luxury suite with separate living area",
			Capacity:        4,
			BedType:         "King + Sofa",
			SizeSqm:         60,
			Amenities:       datatypes.JSON(`["WiFi", "Smart TV", "AC", "Full bar", "Balcony", "Jacuzzi"]`),
			Images:          datatypes.JSON(`[]`),
			BasePrice:       300.00,
			WeekendPrice:    350.00,
			PeakSeasonPrice: 450.00,
			IsActive:        true,
		},
	}
}
