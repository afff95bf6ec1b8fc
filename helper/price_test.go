package helper

import (
	"testing"
	"time"

	"resort_booking/model"
	"resort_booking/utils"

	"github.com/stretchr/testify/assert"
)

func TestFinalizeTotals(t *testing.T) {
	t.Run("five nights at 100 with no discount", func(t *testing.T) {
		calc := &BookingCalculation{Subtotal: 500, Nights: 5}
		calc.finalize()

		assert.InDelta(t, 60.0, calc.Taxes, 1e-9)
		assert.InDelta(t, 50.0, calc.Fees, 1e-9)
		assert.InDelta(t, 610.0, calc.Total, 1e-9)
	})

	t.Run("twenty percent promotion", func(t *testing.T) {
		calc := &BookingCalculation{Subtotal: 500, Discount: 100, Nights: 5}
		calc.finalize()

		assert.InDelta(t, 510.0, calc.Total, 1e-9)
	})

	t.Run("oversized fixed discount drives the total negative", func(t *testing.T) {
		calc := &BookingCalculation{Subtotal: 500, Discount: 700, Nights: 5}
		calc.finalize()

		assert.InDelta(t, -90.0, calc.Total, 1e-9)
	})

	t.Run("taxes are computed before the discount", func(t *testing.T) {
		calc := &BookingCalculation{Subtotal: 1000, Discount: 500}
		calc.finalize()

		assert.InDelta(t, 120.0, calc.Taxes, 1e-9)
	})
}

func TestBookingCalculationRounded(t *testing.T) {
	calc := BookingCalculation{
		Subtotal: 333.333333,
		Taxes:    39.999999,
		Fees:     50,
		Discount: 66.666666,
		Total:    356.666666,
		RoomCharges: []RoomCharge{
			{RoomId: 1, Quantity: 1, Price: 111.111111, Total: 333.333333},
		},
	}

	rounded := calc.Rounded()
	assert.Equal(t, 333.33, rounded.Subtotal)
	assert.Equal(t, 40.0, rounded.Taxes)
	assert.Equal(t, 66.67, rounded.Discount)
	assert.Equal(t, 356.67, rounded.Total)
	assert.Equal(t, 111.11, rounded.RoomCharges[0].Price)

	// original stays unrounded
	assert.Equal(t, 333.333333, calc.Subtotal)
}

func TestPriceRoomStayWithVaryingNightlyPrices(t *testing.T) {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := []model.Availability{
		{Date: start, Available: 2, Price: 100},
		{Date: start.AddDate(0, 0, 1), Available: 2, Price: 150},
		{Date: start.AddDate(0, 0, 2), Available: 2, Price: 120},
	}

	t.Run("raw ledger sum", func(t *testing.T) {
		assert.InDelta(t, 370.0, PriceRoomStay(rows, nil, 3), 1e-9)
	})

	t.Run("discount plan over mixed prices", func(t *testing.T) {
		plans := []model.RatePlan{{Discount: utils.Ptr(50.0)}}
		assert.InDelta(t, 185.0, PriceRoomStay(rows, plans, 3), 1e-9)
	})

	t.Run("ineligible plan falls back to ledger", func(t *testing.T) {
		plans := []model.RatePlan{{Discount: utils.Ptr(50.0), MinStay: utils.Ptr(5)}}
		assert.InDelta(t, 370.0, PriceRoomStay(rows, plans, 3), 1e-9)
	})
}
