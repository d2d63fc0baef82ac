package services

import (
	"fmt"
	"testing"
	"time"

	"hotelhub-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func TestGetDashboardEmptyTenant(t *testing.T) {
	db, _ := seededDB(t)
	empty := createHotel(t, db, "empty")

	stats, err := NewDashboardService(db).GetDashboard(empty.ID)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalEmails)
	assert.Zero(t, stats.TotalReservations)
	assert.Zero(t, stats.TotalCustomers)
	assert.Zero(t, stats.TotalRevenue)
	assert.NotNil(t, stats.RecentEmails)
	assert.Empty(t, stats.RecentEmails)
	assert.NotNil(t, stats.RoomTypes)
	assert.Empty(t, stats.RoomTypes)
}

func TestGetDashboardSeededTenant(t *testing.T) {
	db, hotel := seededDB(t)

	stats, err := NewDashboardService(db).GetDashboard(hotel.ID)
	require.NoError(t, err)

	require.Len(t, stats.RoomTypes, 3)
	assert.Equal(t, "Deluxe Room", stats.RoomTypes[0].Name)
	assert.Equal(t, "Standard Room", stats.RoomTypes[1].Name)
	assert.Equal(t, "Suite", stats.RoomTypes[2].Name)
	assert.Equal(t, 100.0, stats.RoomTypes[1].BasePrice)
	assert.True(t, stats.RoomTypes[0].IsActive)
}

func TestGetDashboardRevenueCountsCompletedOnly(t *testing.T) {
	db, hotel := seededDB(t)
	res := insertReservation(t, db, hotel.ID, "guest@example.com")

	for i, p := range []struct {
		amount float64
		status string
	}{
		{120.50, models.PaymentCompleted},
		{79.50, models.PaymentCompleted},
		{1000, models.PaymentPending},
		{300, models.PaymentFailed},
	} {
		require.NoError(t, db.Create(&models.Payment{
			HotelID:       hotel.ID,
			ReservationID: res.ID,
			Amount:        p.amount,
			Status:        p.status,
			TransactionID: fmt.Sprintf("TXN-%d", i),
		}).Error)
	}

	stats, err := NewDashboardService(db).GetDashboard(hotel.ID)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, stats.TotalRevenue, 0.001)
	assert.Equal(t, int64(1), stats.TotalReservations)
}

func TestGetDashboardRecentEmails(t *testing.T) {
	db, hotel := seededDB(t)
	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		require.NoError(t, db.Create(&models.EmailLog{
			HotelID:          hotel.ID,
			FromEmail:        fmt.Sprintf("guest%d@example.com", i),
			ToEmail:          "admin@yourbookinghub.org",
			Subject:          fmt.Sprintf("Subject %d", i),
			LanguageDetected: "en",
			CreatedAt:        base.Add(time.Duration(i) * time.Hour),
		}).Error)
	}

	stats, err := NewDashboardService(db).GetDashboard(hotel.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(7), stats.TotalEmails)
	require.Len(t, stats.RecentEmails, 5)
	assert.Equal(t, "Subject 6", stats.RecentEmails[0].Subject)
	assert.Equal(t, "Subject 2", stats.RecentEmails[4].Subject)
	assert.Equal(t, "guest6@example.com", stats.RecentEmails[0].FromEmail)
	assert.True(t, stats.RecentEmails[0].CreatedAt.Equal(base.Add(6*time.Hour)))
}

func TestGetDashboardIsolatesTenants(t *testing.T) {
	db, admin := seededDB(t)
	other := createHotel(t, db, "other")

	require.NoError(t, db.Create(&models.RoomType{HotelID: other.ID, Name: "Other Room", BasePrice: 90, IsActive: true}).Error)
	res := insertReservation(t, db, other.ID, "someone@example.com")
	require.NoError(t, db.Create(&models.Customer{HotelID: other.ID, Email: "someone@example.com"}).Error)
	require.NoError(t, db.Create(&models.EmailLog{HotelID: other.ID, FromEmail: "x@example.com", ToEmail: "y@example.com", Subject: "Other"}).Error)
	require.NoError(t, db.Create(&models.Payment{
		HotelID: other.ID, ReservationID: res.ID, Amount: 500, Status: models.PaymentCompleted, TransactionID: "TXN-OTHER",
	}).Error)

	stats, err := NewDashboardService(db).GetDashboard(admin.ID)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalEmails)
	assert.Zero(t, stats.TotalReservations)
	assert.Zero(t, stats.TotalCustomers)
	assert.Zero(t, stats.TotalRevenue)
	assert.Empty(t, stats.RecentEmails)
	require.Len(t, stats.RoomTypes, 3)
	for _, room := range stats.RoomTypes {
		assert.NotEqual(t, "Other Room", room.Name)
	}

	otherStats, err := NewDashboardService(db).GetDashboard(other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), otherStats.TotalReservations)
	assert.InDelta(t, 500.0, otherStats.TotalRevenue, 0.001)
	require.Len(t, otherStats.RoomTypes, 1)
}

// insertReservation writes a reservation row directly, bypassing pricing rules.
func insertReservation(t *testing.T, db *gorm.DB, hotelID uint, email string) models.Reservation {
	t.Helper()
	var room models.RoomType
	if err := db.Where("hotel_id = ?", hotelID).First(&room).Error; err != nil {
		room = models.RoomType{HotelID: hotelID, Name: "Fixture Room", BasePrice: 100, IsActive: true}
		require.NoError(t, db.Create(&room).Error)
	}

	res, err := models.NewReservation(hotelID, room.ID, models.Stay{
		GuestName:  "Fixture Guest",
		GuestEmail: email,
		CheckIn:    date(2030, time.June, 1),
		CheckOut:   date(2030, time.June, 3),
		Adults:     2,
	})
	require.NoError(t, err)
	res.TotalPrice = 200
	require.NoError(t, db.Omit(clause.Associations).Create(res).Error)
	return *res
}
