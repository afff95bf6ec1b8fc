package helper

import "errors"

// Core error taxonomy. Handlers map these to distinct HTTP statuses so every
// failure stays user-actionable.
var (
	ErrNotFound              = errors.New("record not found")
	ErrUnavailable           = errors.New("room not available for the requested dates")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrInvalidPromotion      = errors.New("invalid promotion")
	ErrInvalidDateRange      = errors.New("invalid date range")
	ErrForbidden             = errors.New("not authorized")
	ErrPaymentFailed         = errors.New("payment failed")
)
