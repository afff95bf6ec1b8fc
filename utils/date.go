package utils

import (
	"fmt"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate accepts "YYYY-MM-DD" or RFC3339 and truncates to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s", s)
	}
	return Midnight(t), nil
}

// Midnight truncates a timestamp to its calendar date in UTC.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights returns the number of nights in the half-open stay [checkIn, checkOut),
// as the ceiling of the whole-day difference.
func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn).Hours() / 24
	return int(math.Ceil(diff))
}

// DateRange returns every date of the half-open interval [start, end).
func DateRange(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := Midnight(start); d.Before(Midnight(end)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// DaysUntil counts whole days from now until the given date (ceiling).
func DaysUntil(t time.Time, now time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}
