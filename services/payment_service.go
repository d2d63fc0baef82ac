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
)

type PaymentInput struct {
	ReservationID uint
	Amount        float64
	Fees          float64
	Method        string
	Provider      string
	TransactionID string
	Status        string
	Description   string
}

// PaymentService keeps the payment ledger. Nothing here talks to a gateway;
// payments are recorded after the fact.
type PaymentService struct {
	db *gorm.DB
	now func() time.Time
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db, now: time.Now}
}

// RecordPayment stores a payment against one of the tenant's reservations.
// A completed payment also credits the guest and refreshes the reservation's
// payment status, all in the same transaction.
func (s *PaymentService) RecordPayment(tenantID uint, in PaymentInput) (*models.Payment, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if in.Fees < 0 || in.Fees > in.Amount {
		return nil, fmt.Errorf("%w: fees must be between 0 and the amount", ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = models.PaymentPending
	}
	if !models.ValidPaymentStatus(status) {
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrValidation, status)
	}
	txnID := strings.TrimSpace(in.TransactionID)
	if txnID == "" {
		txnID = utils.GenerateTransactionID()
	}

	var payment models.Payment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var reservation models.Reservation
		if err := tx.Where("hotel_id = ? AND id = ?", tenantID, in.ReservationID).First(&reservation).Error; err != nil {
			return notFound("reservation", err)
		}

		var customer *models.Customer
		var found models.Customer
		err := tx.Where("hotel_id = ? AND email = ?", tenantID, reservation.GuestEmail).First(&found).Error
		switch {
		case err == nil:
			customer = &found
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		payment = models.Payment{
			HotelID:         tenantID,
			ReservationID:   reservation.ID,
			Amount:          in.Amount,
			Currency:        reservation.Currency,
			PaymentMethod:   in.Method,
			PaymentProvider: in.Provider,
			TransactionID:   txnID,
			Status:          status,
			Description:     in.Description,
			Fees:            in.Fees,
			NetAmount:       math.Round((in.Amount-in.Fees)*100) / 100,
		}
		if customer != nil {
			payment.CustomerID = &customer.ID
		}
		if status == models.PaymentCompleted {
			paidAt := s.now()
			payment.PaymentDate = &paidAt
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		if status != models.PaymentCompleted {
			return nil
		}
		if customer != nil {
			if err := tx.Model(customer).Updates(map[string]interface{}{
				"total_spent":    gorm.Expr("total_spent + ?", in.Amount),
				"loyalty_points": gorm.Expr("loyalty_points + ?", int(math.Floor(in.Amount))),
			}).Error; err != nil {
				return err
			}
		}
		return refreshPaymentStatus(tx, &reservation, in.Method)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("transaction %s: %w", txnID, ErrConflict)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("record payment: %w", err)
	}

	logger.GetLogger().Info("payment recorded",
		zap.Uint("hotel_id", tenantID),
		zap.Uint("reservation_id", payment.ReservationID),
		zap.String("transaction_id", payment.TransactionID),
		zap.String("status", payment.Status),
	)
	return &payment, nil
}

func refreshPaymentStatus(tx *gorm.DB, r *models.Reservation, method string) error {
	var paid float64
	if err := tx.Model(&models.Payment{}).
		Where("reservation_id = ? AND status = ?", r.ID, models.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&paid).Error; err != nil {
		return err
	}

	status := models.ReservationPartial
	if paid >= r.TotalPrice {
		status = models.ReservationPaid
	}
	updates := map[string]interface{}{"payment_status": status}
	if method != "" {
		updates["payment_method"] = method
	}
	if err := tx.Model(r).Updates(updates).Error; err != nil {
		return err
	}
	r.PaymentStatus = status
	return nil
}

func (s *PaymentService) ListPayments(tenantID uint) ([]models.Payment, error) {
	payments := []models.Payment{}
	if err := s.db.Where("hotel_id = ?", tenantID).Order("created_at DESC, id DESC").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}
