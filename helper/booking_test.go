package helper

import (
	"strings"
	"testing"
	"time"

	"resort_booking/model"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingNumber(t *testing.T) {
	number := GenerateBookingNumber()

	assert.True(t, strings.HasPrefix(number, "MRB-"))
	assert.Equal(t, number, strings.ToUpper(number))

	parts := strings.Split(number, "-")
	assert.Len(t, parts, 3)
	assert.Len(t, parts[2], 6)

	// two consecutive numbers should not collide
	assert.NotEqual(t, number, GenerateBookingNumber())
}

func TestCalculateRefund(t *testing.T) {
	checkIn := time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC)

	t.Run("a week or more out refunds in full", func(t *testing.T) {
		now := checkIn.AddDate(0, 0, -10)
		assert.InDelta(t, 1000.0, CalculateRefund(1000, checkIn, now), 1e-9)
	})

	t.Run("exactly seven days still refunds in full", func(t *testing.T) {
		now := checkIn.AddDate(0, 0, -7)
		assert.InDelta(t, 1000.0, CalculateRefund(1000, checkIn, now), 1e-9)
	})

	t.Run("three to six days refunds half", func(t *testing.T) {
		now := checkIn.AddDate(0, 0, -5)
		assert.InDelta(t, 500.0, CalculateRefund(1000, checkIn, now), 1e-9)
	})

	t.Run("the day before refunds nothing", func(t *testing.T) {
		now := checkIn.AddDate(0, 0, -1)
		assert.InDelta(t, 0.0, CalculateRefund(1000, checkIn, now), 1e-9)
	})

	t.Run("after check-in refunds nothing", func(t *testing.T) {
		now := checkIn.AddDate(0, 0, 1)
		assert.InDelta(t, 0.0, CalculateRefund(1000, checkIn, now), 1e-9)
	})
}

func TestCanModifyBooking(t *testing.T) {
	assert.True(t, CanModifyBooking(model.BookingPending))
	assert.True(t, CanModifyBooking(model.BookingConfirmed))
	assert.True(t, CanModifyBooking(model.BookingCheckedIn))
	assert.False(t, CanModifyBooking(model.BookingCancelled))
	assert.False(t, CanModifyBooking(model.BookingCheckedOut))
}
