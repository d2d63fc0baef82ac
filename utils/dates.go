// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// Nights returns the start of every night from checkIn up to, not including, checkOut.
func Nights(checkIn, checkOut time.Time) []time.Time {
	var nights []time.Time
	for d := BeginningOfDay(checkIn); d.Before(BeginningOfDay(checkOut)); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}
