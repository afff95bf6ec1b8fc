package helper

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"resort_booking/utils"
)

const bookingNumberPrefix = "MRB"

// GenerateBookingNumber builds a human-readable booking number from a base36
// timestamp and a random suffix. Collisions are unlikely but not impossible;
// the unique index on bookings enforces the rest and creation retries.
func GenerateBookingNumber() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := make([]byte, 6)
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", bookingNumberPrefix, ts, suffix))
}

// CalculateRefund applies the cancellation tiers: a week or more out refunds
// everything, three to six days refunds half, closer than that refunds nothing.
func CalculateRefund(total float64, checkIn, now time.Time) float64 {
	days := utils.DaysUntil(checkIn, now)
	switch {
	case days >= 7:
		return total
	case days >= 3:
		return total * 0.5
	default:
		return 0
	}
}

// CanModifyBooking reports whether a booking in the given status may still be
// edited or cancelled. CANCELLED and CHECKED_OUT are final.
func CanModifyBooking(status string) bool {
	return status != "CANCELLED" && status != "CHECKED_OUT"
}
