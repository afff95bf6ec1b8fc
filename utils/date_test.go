package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2026-03-15T18:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("15/03/2026")
	assert.Error(t, err)
}

func TestNights(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, Nights(checkIn, checkOut))

	// one night stay
	assert.Equal(t, 1, Nights(checkIn, checkIn.AddDate(0, 0, 1)))

	// same day checks out to zero nights
	assert.Equal(t, 0, Nights(checkIn, checkIn))
}

func TestDateRange(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)

	dates := DateRange(start, end)
	require.Len(t, dates, 3)
	assert.Equal(t, start, dates[0])
	// checkout date itself is excluded
	assert.Equal(t, end.AddDate(0, 0, -1), dates[2])
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	checkIn := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 7, DaysUntil(checkIn, now))

	assert.Equal(t, 0, DaysUntil(now, now))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.556))
	assert.Equal(t, 10.0, Round2(10.0))
	assert.Equal(t, -0.5, Round2(-0.499999999))
}
