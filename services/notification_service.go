package services

import (
	"fmt"
	"strings"
	"time"

	"hotelhub-backend/config"
	"hotelhub-backend/logger"
	"hotelhub-backend/models"
	"hotelhub-backend/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

const emailTypeConfirmation = "confirmation"

// Mailer is satisfied by *gomail.Dialer.
type Mailer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMSSender is satisfied by the Api field of a twilio RestClient.
type SMSSender interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// NotificationService sends reservation confirmations by email and SMS.
// A channel without credentials is skipped.
type NotificationService struct {
	db *gorm.DB

	mailer    Mailer
	fromEmail string

	sms     SMSSender
	smsFrom string
}

func NewNotificationService(db *gorm.DB, smtp config.SMTPConfig, tw config.TwilioConfig) *NotificationService {
	s := &NotificationService{db: db}

	if smtp.Enabled() {
		s.mailer = gomail.NewDialer(smtp.Host, smtp.Port, smtp.User, smtp.Password)
		s.fromEmail = smtp.User
	}

	if tw.Enabled() {
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: tw.AccountSID,
			Password: tw.AuthToken,
		})
		s.sms = client.Api
		s.smsFrom = tw.PhoneNumber
	}

	return s
}

// WithMailer replaces the email channel.
func (s *NotificationService) WithMailer(m Mailer, from string) *NotificationService {
	s.mailer = m
	s.fromEmail = from
	return s
}

// WithSMS replaces the SMS channel.
func (s *NotificationService) WithSMS(sender SMSSender, from string) *NotificationService {
	s.sms = sender
	s.smsFrom = from
	return s
}

// ReservationConfirmed notifies the guest. Delivery failures are logged, never returned.
func (s *NotificationService) ReservationConfirmed(hotel models.Hotel, r models.Reservation) {
	if s.mailer != nil {
		s.sendConfirmationEmail(hotel, r)
	}
	if s.sms != nil && r.GuestPhone != "" {
		s.sendConfirmationSMS(hotel, r)
	}
}

func (s *NotificationService) sendConfirmationEmail(hotel models.Hotel, r models.Reservation) {
	log := logger.GetLogger().With(
		zap.Uint("hotel_id", hotel.ID),
		zap.String("confirmation_code", r.ConfirmationCode),
	)

	subject := fmt.Sprintf("Your reservation at %s is confirmed (%s)", hotel.Name, r.ConfirmationCode)
	body := confirmationBody(hotel, r)

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.fromEmail, hotel.Name))
	m.SetHeader("To", r.GuestEmail)
	if hotel.Email != "" {
		m.SetHeader("Reply-To", hotel.Email)
	}
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	start := time.Now()
	err := s.mailer.DialAndSend(m)
	elapsed := time.Since(start)

	status := models.EmailStatusSent
	errorMsg := ""
	if err != nil {
		log.Error("failed to send confirmation email", zap.Error(err))
		status = models.EmailStatusFailed
		errorMsg = err.Error()
	} else {
		log.Info("confirmation email sent", zap.String("to", r.GuestEmail))
	}

	reservationID := r.ID
	entry := models.EmailLog{
		HotelID:          hotel.ID,
		ReservationID:    &reservationID,
		ThreadID:         r.ConfirmationCode,
		FromEmail:        s.fromEmail,
		ToEmail:          r.GuestEmail,
		Subject:          subject,
		Content:          body,
		LanguageDetected: hotel.Language,
		EmailType:        emailTypeConfirmation,
		ProcessingTimeMs: elapsed.Milliseconds(),
		Status:           status,
		ErrorMessage:     errorMsg,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Error("failed to log confirmation email", zap.Error(err))
	}
}

func (s *NotificationService) sendConfirmationSMS(hotel models.Hotel, r models.Reservation) {
	log := logger.GetLogger().With(
		zap.Uint("hotel_id", hotel.ID),
		zap.String("confirmation_code", r.ConfirmationCode),
	)

	to := utils.NormalizePhone(r.GuestPhone)
	if !utils.ValidatePhone(to) {
		log.Warn("skipping SMS, guest phone is not in international format", zap.String("phone", r.GuestPhone))
		return
	}
	if !strings.HasPrefix(to, "+") {
		to = "+" + to
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.smsFrom)
	params.SetBody(fmt.Sprintf("%s: reservation %s confirmed, %s to %s.",
		hotel.Name, r.ConfirmationCode,
		r.CheckIn.Format("2006-01-02"), r.CheckOut.Format("2006-01-02")))

	resp, err := s.sms.CreateMessage(params)
	switch {
	case err != nil:
		log.Error("failed to send confirmation SMS", zap.Error(err))
	case resp != nil && resp.Sid != nil:
		log.Info("confirmation SMS sent", zap.String("sid", *resp.Sid))
	default:
		log.Info("confirmation SMS sent, no SID returned")
	}
}

func confirmationBody(hotel models.Hotel, r models.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", r.GuestName)
	fmt.Fprintf(&b, "Thank you for booking with %s.\n\n", hotel.Name)
	fmt.Fprintf(&b, "Confirmation code: %s\n", r.ConfirmationCode)
	if r.RoomType.Name != "" {
		fmt.Fprintf(&b, "Room: %s\n", r.RoomType.Name)
	}
	fmt.Fprintf(&b, "Check-in: %s\n", r.CheckIn.Format("Monday, 2 January 2006"))
	fmt.Fprintf(&b, "Check-out: %s\n", r.CheckOut.Format("Monday, 2 January 2006"))
	fmt.Fprintf(&b, "Guests: %d adult(s)", r.Adults)
	if r.Children > 0 {
		fmt.Fprintf(&b, ", %d child(ren)", r.Children)
	}
	fmt.Fprintf(&b, "\nTotal: %.2f %s\n\n", r.TotalPrice, r.Currency)
	if hotel.Phone != "" {
		fmt.Fprintf(&b, "Questions? Call us on %s or reply to this email.\n", hotel.Phone)
	}
	return b.String()
}
