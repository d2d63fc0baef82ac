package models

import "time"

const (
	EmailStatusSent      = "sent"
	EmailStatusFailed    = "failed"
	EmailStatusProcessed = "processed"
)

// EmailLog records a message exchanged with a guest. SentimentScore and
// AIAnalysis are kept in the schema but nothing populates them.
type EmailLog struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	HotelID          uint      `gorm:"index;not null" json:"hotelId"`
	ReservationID    *uint     `gorm:"index" json:"reservationId,omitempty"`
	ThreadID         string    `json:"threadId"`
	FromEmail        string    `gorm:"not null" json:"fromEmail"`
	ToEmail          string    `gorm:"not null" json:"toEmail"`
	Subject          string    `json:"subject"`
	Content          string    `gorm:"type:text" json:"content"`
	LanguageDetected string    `json:"languageDetected"`
	SentimentScore   *float64  `gorm:"type:decimal(3,2)" json:"sentimentScore,omitempty"`
	PriorityLevel    string    `gorm:"default:'normal'" json:"priorityLevel"`
	EmailType        string    `json:"emailType"`
	AIAnalysis       string    `gorm:"column:ai_analysis;type:text" json:"aiAnalysis,omitempty"`
	ProcessingTimeMs int64     `json:"processingTimeMs"`
	Status           string    `gorm:"default:'processed'" json:"status"`
	ErrorMessage     string    `gorm:"type:text" json:"errorMessage,omitempty"`
	CreatedAt        time.Time `gorm:"index" json:"createdAt"`
}
