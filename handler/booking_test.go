package handler

import (
	"testing"

	"resort_booking/model"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	allowed := [][2]string{
		{model.BookingPending, model.BookingConfirmed},
		{model.BookingPending, model.BookingCancelled},
		{model.BookingConfirmed, model.BookingCheckedIn},
		{model.BookingConfirmed, model.BookingCancelled},
		{model.BookingConfirmed, model.BookingNoShow},
		{model.BookingCheckedIn, model.BookingCheckedOut},
		{model.BookingCheckedIn, model.BookingCancelled},
	}
	for _, pair := range allowed {
		assert.True(t, canTransition(pair[0], pair[1]), "%s -> %s should be allowed", pair[0], pair[1])
	}

	denied := [][2]string{
		{model.BookingPending, model.BookingCheckedIn},
		{model.BookingPending, model.BookingNoShow},
		{model.BookingCheckedOut, model.BookingCheckedIn},
		{model.BookingCancelled, model.BookingConfirmed},
		{model.BookingNoShow, model.BookingCheckedIn},
	}
	for _, pair := range denied {
		assert.False(t, canTransition(pair[0], pair[1]), "%s -> %s should be denied", pair[0], pair[1])
	}
}
