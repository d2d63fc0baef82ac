package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"hotelhub-backend/logger"
	"hotelhub-backend/models"
	"hotelhub-backend/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationNotifier is told about every reservation once it is committed.
type ReservationNotifier interface {
	ReservationConfirmed(hotel models.Hotel, reservation models.Reservation)
}

type CreateReservationInput struct {
	RoomTypeID uint
	Stay       models.Stay
	Notes      string
}

type ReservationService struct {
	db       *gorm.DB
	notifier ReservationNotifier
	now      func() time.Time
}

// NewReservationService builds the service. notifier may be nil.
func NewReservationService(db *gorm.DB, notifier ReservationNotifier) *ReservationService {
	return &ReservationService{db: db, notifier: notifier, now: time.Now}
}

func (s *ReservationService) CreateReservation(tenantID uint, in CreateReservationInput) (*models.Reservation, error) {
	reservation, err := models.NewReservation(tenantID, in.RoomTypeID, in.Stay)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if !utils.ValidateEmail(reservation.GuestEmail) {
		return nil, fmt.Errorf("%w: invalid guest email", ErrValidation)
	}
	reservation.Notes = in.Notes

	var hotel models.Hotel
	if err := s.db.First(&hotel, tenantID).Error; err != nil {
		return nil, notFound("hotel", err)
	}

	var roomType models.RoomType
	if err := s.db.Where("hotel_id = ? AND id = ?", tenantID, in.RoomTypeID).First(&roomType).Error; err != nil {
		return nil, notFound("room type", err)
	}
	if !roomType.IsActive {
		return nil, ErrRoomUnavailable
	}
	if err := checkStayRules(roomType, reservation, s.now()); err != nil {
		return nil, err
	}

	reservation.TotalPrice = quotePrice(roomType, reservation.CheckIn, reservation.CheckOut)
	reservation.Currency = hotel.Currency

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(reservation).Error; err != nil {
			return err
		}
		return recordBooking(tx, reservation)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrConflict
	}
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	reservation.RoomType = roomType
	logger.GetLogger().Info("reservation created",
		zap.Uint("hotel_id", tenantID),
		zap.String("confirmation_code", reservation.ConfirmationCode),
		zap.Float64("total_price", reservation.TotalPrice),
	)

	if s.notifier != nil {
		s.notifier.ReservationConfirmed(hotel, *reservation)
	}
	return reservation, nil
}

func checkStayRules(roomType models.RoomType, r *models.Reservation, now time.Time) error {
	nights := r.Nights()
	if roomType.MinimumStay > 0 && nights < roomType.MinimumStay {
		return fmt.Errorf("%w: minimum stay is %d nights", ErrValidation, roomType.MinimumStay)
	}
	if roomType.MaximumStay > 0 && nights > roomType.MaximumStay {
		return fmt.Errorf("%w: maximum stay is %d nights", ErrValidation, roomType.MaximumStay)
	}
	lead := utils.DaysBetween(now.UTC(), r.CheckIn)
	if lead < 0 {
		return fmt.Errorf("%w: check-in is in the past", ErrValidation)
	}
	if roomType.AdvanceBookingDays > 0 && lead > roomType.AdvanceBookingDays {
		return fmt.Errorf("%w: bookings open %d days ahead", ErrValidation, roomType.AdvanceBookingDays)
	}
	if r.Adults+r.Children > roomType.Capacity && roomType.Capacity > 0 {
		return fmt.Errorf("%w: room sleeps %d guests", ErrValidation, roomType.Capacity)
	}
	return nil
}

// quotePrice sums the nightly rates of the stay, rounded to cents.
func quotePrice(roomType models.RoomType, checkIn, checkOut time.Time) float64 {
	var total float64
	for _, night := range utils.Nights(checkIn, checkOut) {
		total += roomType.NightlyRate(night)
	}
	return math.Round(total*100) / 100
}

// recordBooking upserts the guest's customer profile and bumps its counters.
func recordBooking(tx *gorm.DB, r *models.Reservation) error {
	var customer models.Customer
	err := tx.Where("hotel_id = ? AND email = ?", r.HotelID, r.GuestEmail).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		first, last := splitName(r.GuestName)
		customer = models.Customer{
			HotelID:   r.HotelID,
			Email:     r.GuestEmail,
			FirstName: first,
			LastName:  last,
			Phone:     r.GuestPhone,
			Country:   r.GuestCountry,
		}
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"total_bookings": gorm.Expr("total_bookings + ?", 1),
	}
	if customer.LastStayDate == nil || r.CheckOut.After(*customer.LastStayDate) {
		updates["last_stay_date"] = r.CheckOut
	}
	return tx.Model(&customer).Updates(updates).Error
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// ListReservations returns the tenant's reservations, newest check-in first.
// An empty status returns every status.
func (s *ReservationService) ListReservations(tenantID uint, status string) ([]models.Reservation, error) {
	query := s.db.Preload("RoomType").Where("hotel_id = ?", tenantID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	reservations := []models.Reservation{}
	if err := query.Order("check_in DESC, id DESC").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return reservations, nil
}

func (s *ReservationService) GetReservation(tenantID uint, code string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.Preload("RoomType").
		Where("hotel_id = ? AND confirmation_code = ?", tenantID, strings.ToUpper(strings.TrimSpace(code))).
		First(&reservation).Error
	if err != nil {
		return nil, notFound("reservation", err)
	}
	return &reservation, nil
}

// UpdateReservationStatus moves a reservation to status. Cancelling takes the
// booking off the guest's total_bookings; reinstating puts it back.
func (s *ReservationService) UpdateReservationStatus(tenantID, id uint, status string) (*models.Reservation, error) {
	if !models.ValidReservationStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	var reservation models.Reservation
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_id = ? AND id = ?", tenantID, id).First(&reservation).Error; err != nil {
			return notFound("reservation", err)
		}
		previous := reservation.Status
		if previous == status {
			return nil
		}

		if err := tx.Model(&reservation).Update("status", status).Error; err != nil {
			return err
		}

		var delta int
		switch {
		case status == models.ReservationCancelled:
			delta = -1
		case previous == models.ReservationCancelled:
			delta = 1
		default:
			return nil
		}
		return tx.Model(&models.Customer{}).
			Where("hotel_id = ? AND email = ? AND total_bookings + ? >= 0", tenantID, reservation.GuestEmail, delta).
			Update("total_bookings", gorm.Expr("total_bookings + ?", delta)).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update reservation status: %w", err)
	}
	return &reservation, nil
}

func notFound(what string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("load %s: %w", what, err)
}
