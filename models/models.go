package models

// All lists every table in migration order.
func All() []interface{} {
	return []interface{}{
		&Hotel{},
		&RoomType{},
		&Customer{},
		&Reservation{},
		&EmailLog{},
		&Payment{},
		&AnalyticsData{},
		&SystemSetting{},
	}
}
