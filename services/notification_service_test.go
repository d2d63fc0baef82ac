package services

import (
	"errors"
	"testing"
	"time"

	"hotelhub-backend/config"
	"hotelhub-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"
)

type fakeMailer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeMailer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

type fakeSMS struct {
	sent []*twilioApi.CreateMessageParams
}

func (f *fakeSMS) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.sent = append(f.sent, params)
	sid := "SM123"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func bookWithNotifier(t *testing.T, notifier *NotificationService, phone string) (models.Hotel, *models.Reservation) {
	t.Helper()
	db, hotel := seededDB(t)
	notifier.db = db

	svc := NewReservationService(db, notifier)
	svc.now = func() time.Time { return date(2029, time.December, 1) }
	s := stay("grace@example.com", date(2030, time.January, 3), date(2030, time.January, 4))
	s.GuestPhone = phone

	res, err := svc.CreateReservation(hotel.ID, CreateReservationInput{
		RoomTypeID: roomTypeNamed(t, db, hotel.ID, "Deluxe Room").ID,
		Stay:       s,
	})
	require.NoError(t, err)
	return hotel, res
}

func TestNotificationSendsEmailAndLogsIt(t *testing.T) {
	mailer := &fakeMailer{}
	sms := &fakeSMS{}
	notifier := NewNotificationService(nil, config.SMTPConfig{}, config.TwilioConfig{}).
		WithMailer(mailer, "bookings@yourbookinghub.org").
		WithSMS(sms, "+15550000000")

	hotel, res := bookWithNotifier(t, notifier, "+1 (555) 123-4567")

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, []string{"grace@example.com"}, mailer.sent[0].GetHeader("To"))
	assert.Contains(t, mailer.sent[0].GetHeader("Subject")[0], res.ConfirmationCode)

	var logs []models.EmailLog
	require.NoError(t, notifier.db.Where("hotel_id = ?", hotel.ID).Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, models.EmailStatusSent, logs[0].Status)
	assert.Equal(t, "confirmation", logs[0].EmailType)
	assert.Equal(t, "bookings@yourbookinghub.org", logs[0].FromEmail)
	require.NotNil(t, logs[0].ReservationID)
	assert.Equal(t, res.ID, *logs[0].ReservationID)
	assert.Contains(t, logs[0].Content, "Deluxe Room")

	require.Len(t, sms.sent, 1)
	assert.Equal(t, "+15551234567", *sms.sent[0].To)
	assert.Equal(t, "+15550000000", *sms.sent[0].From)
	assert.Contains(t, *sms.sent[0].Body, res.ConfirmationCode)
}

func TestNotificationRecordsFailedEmail(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("connection refused")}
	notifier := NewNotificationService(nil, config.SMTPConfig{}, config.TwilioConfig{}).
		WithMailer(mailer, "bookings@yourbookinghub.org")

	hotel, _ := bookWithNotifier(t, notifier, "")

	var log models.EmailLog
	require.NoError(t, notifier.db.Where("hotel_id = ?", hotel.ID).First(&log).Error)
	assert.Equal(t, models.EmailStatusFailed, log.Status)
	assert.Equal(t, "connection refused", log.ErrorMessage)
}

func TestNotificationSkipsInvalidPhone(t *testing.T) {
	sms := &fakeSMS{}
	notifier := NewNotificationService(nil, config.SMTPConfig{}, config.TwilioConfig{}).
		WithSMS(sms, "+15550000000")

	hotel, _ := bookWithNotifier(t, notifier, "call me maybe")

	assert.Empty(t, sms.sent)
	var count int64
	require.NoError(t, notifier.db.Model(&models.EmailLog{}).Where("hotel_id = ?", hotel.ID).Count(&count).Error)
	assert.Zero(t, count)
}
