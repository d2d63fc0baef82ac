package services

import (
	"fmt"
	"time"

	"hotelhub-backend/logger"
	"hotelhub-backend/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const periodDaily = "daily"

// AnalyticsService snapshots dashboard figures into analytics_data.
type AnalyticsService struct {
	db        *gorm.DB
	dashboard *DashboardService
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db, dashboard: NewDashboardService(db)}
}

// StartScheduler runs RecordDailySnapshot on schedule (cron syntax or a
// descriptor such as "@daily"). An empty schedule disables snapshots and
// returns a nil cron.
func (s *AnalyticsService) StartScheduler(schedule string) (*cron.Cron, error) {
	if schedule == "" {
		logger.GetLogger().Info("analytics scheduler disabled")
		return nil, nil
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if err := s.RecordDailySnapshot(time.Now()); err != nil {
			logger.GetLogger().Error("analytics snapshot failed", zap.Error(err))
		}
	}); err != nil {
		return nil, fmt.Errorf("invalid analytics schedule %q: %w", schedule, err)
	}

	c.Start()
	logger.GetLogger().Info("analytics scheduler started", zap.String("schedule", schedule))
	return c, nil
}

// RecordDailySnapshot writes one row per metric for every active hotel.
// Running it again for the same day overwrites that day's values.
func (s *AnalyticsService) RecordDailySnapshot(day time.Time) error {
	y, m, d := day.UTC().Date()
	recorded := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var hotelIDs []uint
	if err := s.db.Model(&models.Hotel{}).Where("status = ?", "active").Pluck("id", &hotelIDs).Error; err != nil {
		return fmt.Errorf("list hotels: %w", err)
	}

	for _, hotelID := range hotelIDs {
		stats, err := s.dashboard.GetDashboard(hotelID)
		if err != nil {
			return fmt.Errorf("hotel %d: %w", hotelID, err)
		}

		rows := []models.AnalyticsData{
			snapshotRow(hotelID, "reservations_total", float64(stats.TotalReservations), "count", recorded),
			snapshotRow(hotelID, "customers_total", float64(stats.TotalCustomers), "count", recorded),
			snapshotRow(hotelID, "revenue_total", stats.TotalRevenue, "currency", recorded),
			snapshotRow(hotelID, "emails_total", float64(stats.TotalEmails), "count", recorded),
		}
		err = s.db.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "hotel_id"}, {Name: "metric_name"}, {Name: "time_period"}, {Name: "date_recorded"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"metric_value", "metric_type"}),
		}).Create(&rows).Error
		if err != nil {
			return fmt.Errorf("hotel %d: save snapshot: %w", hotelID, err)
		}
	}

	logger.GetLogger().Info("analytics snapshot recorded",
		zap.Time("day", recorded), zap.Int("hotels", len(hotelIDs)))
	return nil
}

func snapshotRow(hotelID uint, name string, value float64, kind string, day time.Time) models.AnalyticsData {
	return models.AnalyticsData{
		HotelID:      hotelID,
		MetricName:   name,
		MetricValue:  value,
		MetricType:   kind,
		TimePeriod:   periodDaily,
		DateRecorded: day,
	}
}

// ListAnalytics returns the tenant's most recent snapshot rows.
func (s *AnalyticsService) ListAnalytics(tenantID uint, limit int) ([]models.AnalyticsData, error) {
	if limit <= 0 || limit > 1000 {
		limit = 120
	}
	rows := []models.AnalyticsData{}
	if err := s.db.Where("hotel_id = ?", tenantID).
		Order("date_recorded DESC, metric_name ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list analytics: %w", err)
	}
	return rows, nil
}
