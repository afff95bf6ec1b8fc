package helper

import (
	"errors"
	"fmt"
	"time"

	"resort_booking/model"
	"resort_booking/utils"

	"gorm.io/gorm"
)

const (
	TaxRate    = 0.12 // flat 12% of subtotal
	ServiceFee = 50.0 // flat per-booking fee in the booking's currency
)

type RoomCharge struct {
	RoomId   uint    `json:"roomId"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"` // average nightly price per unit
	Total    float64 `json:"total"`
}

type BookingCalculation struct {
	Subtotal    float64      `json:"subtotal"`
	Taxes       float64      `json:"taxes"`
	Fees        float64      `json:"fees"`
	Discount    float64      `json:"discount"`
	Total       float64      `json:"total"`
	Nights      int          `json:"nights"`
	Currency    string       `json:"currency"`
	PromoCode   string       `json:"promoCode,omitempty"`
	RoomCharges []RoomCharge `json:"roomCharges"`
}

// Rounded returns a copy with every monetary field rounded half-up to 2dp.
// Internal math stays unrounded until this point.
func (calc BookingCalculation) Rounded() BookingCalculation {
	calc.Subtotal = utils.Round2(calc.Subtotal)
	calc.Taxes = utils.Round2(calc.Taxes)
	calc.Fees = utils.Round2(calc.Fees)
	calc.Discount = utils.Round2(calc.Discount)
	calc.Total = utils.Round2(calc.Total)
	for i := range calc.RoomCharges {
		calc.RoomCharges[i].Price = utils.Round2(calc.RoomCharges[i].Price)
		calc.RoomCharges[i].Total = utils.Round2(calc.RoomCharges[i].Total)
	}
	return calc
}

// PriceRoomStay prices one room for a stay: rate plan when one resolves,
// otherwise the raw ledger sum.
func PriceRoomStay(records []model.Availability, plans []model.RatePlan, nights int) float64 {
	base := LedgerSum(records)
	if plan := ResolveRatePlan(plans, nights); plan != nil {
		return ApplyRatePlan(plan, base, nights)
	}
	return base
}

// CalculateBookingTotal validates availability and builds the full price
// breakdown for a multi-room stay. A promo code that fails validation aborts
// the whole calculation rather than silently charging full price. The total is
// not floored at zero: an oversized fixed discount can drive it negative.
func CalculateBookingTotal(db *gorm.DB, hotelId uint, rooms []model.BookingRoomInput, checkIn, checkOut time.Time, promoCode string) (*BookingCalculation, error) {
	nights := utils.Nights(checkIn, checkOut)
	if nights <= 0 {
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidDateRange)
	}

	calc := &BookingCalculation{Nights: nights, Currency: "USD"}

	for _, rb := range rooms {
		var room model.Room
		if err := db.First(&room, rb.RoomId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("room %d: %w", rb.RoomId, ErrNotFound)
			}
			return nil, err
		}

		records, err := GetLedgerRange(db, room.ID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}
		if !LedgerCovers(records, nights, rb.Quantity) {
			return nil, fmt.Errorf("%s: %w", room.Name, ErrUnavailable)
		}

		plans, err := GetEligibleRatePlans(db, room.ID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}

		perUnit := PriceRoomStay(records, plans, nights)
		lineTotal := perUnit * float64(rb.Quantity)
		calc.Subtotal += lineTotal
		calc.Currency = room.Currency

		calc.RoomCharges = append(calc.RoomCharges, RoomCharge{
			RoomId:   room.ID,
			Quantity: rb.Quantity,
			Price:    perUnit / float64(nights),
			Total:    lineTotal,
		})
	}

	if promoCode != "" {
		promo, err := FindPromotionByCode(db, promoCode)
		if err != nil {
			return nil, err
		}
		discount, err := EvaluatePromotion(promo, hotelId, calc.Subtotal, nights, time.Now())
		if err != nil {
			return nil, err
		}
		calc.Discount = discount
		calc.PromoCode = promoCode
	}

	calc.finalize()
	return calc, nil
}

// finalize derives taxes, fees and the grand total from the subtotal and
// discount already on the calculation.
func (calc *BookingCalculation) finalize() {
	calc.Taxes = calc.Subtotal * TaxRate
	calc.Fees = ServiceFee
	calc.Total = calc.Subtotal + calc.Taxes + calc.Fees - calc.Discount
}
