package models

import "time"

type AnalyticsData struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	HotelID      uint      `gorm:"not null;uniqueIndex:idx_analytics_metric,priority:1" json:"hotelId"`
	MetricName   string    `gorm:"not null;uniqueIndex:idx_analytics_metric,priority:2" json:"metricName"`
	MetricValue  float64   `gorm:"type:decimal(15,4)" json:"metricValue"`
	MetricType   string    `json:"metricType"`
	TimePeriod   string    `gorm:"uniqueIndex:idx_analytics_metric,priority:3" json:"timePeriod"`
	DateRecorded time.Time `gorm:"uniqueIndex:idx_analytics_metric,priority:4" json:"dateRecorded"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (AnalyticsData) TableName() string { return "analytics_data" }
