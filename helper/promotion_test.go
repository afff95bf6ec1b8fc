package helper

import (
	"testing"

	"resort_booking/model"
	"resort_booking/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activePromo() *model.Promotion {
	return &model.Promotion{
		Code:          "TESTCODE",
		DiscountType:  "PERCENTAGE",
		DiscountValue: 20,
		StartDate:     dateAt(2026, 1, 1),
		EndDate:       dateAt(2026, 12, 31),
		IsActive:      true,
	}
}

func TestEvaluatePromotionRejections(t *testing.T) {
	now := dateAt(2026, 6, 1)

	t.Run("inactive", func(t *testing.T) {
		promo := activePromo()
		promo.IsActive = false
		_, err := EvaluatePromotion(promo, 1, 500, 5, now)
		assert.ErrorIs(t, err, ErrInvalidPromotion)
	})

	t.Run("outside validity window", func(t *testing.T) {
		promo := activePromo()
		_, err := EvaluatePromotion(promo, 1, 500, 5, dateAt(2027, 2, 1))
		assert.ErrorIs(t, err, ErrInvalidPromotion)
	})

	t.Run("scoped to another hotel", func(t *testing.T) {
		promo := activePromo()
		promo.HotelId = utils.Ptr(uint(7))
		_, err := EvaluatePromotion(promo, 3, 500, 5, now)
		assert.ErrorIs(t, err, ErrInvalidPromotion)
	})

	t.Run("usage limit reached", func(t *testing.T) {
		promo := activePromo()
		promo.UsageLimit = utils.Ptr(100)
		promo.UsageCount = 100
		_, err := EvaluatePromotion(promo, 1, 500, 5, now)
		assert.ErrorIs(t, err, ErrInvalidPromotion)
	})

	t.Run("below minimum amount", func(t *testing.T) {
		promo := activePromo()
		promo.MinAmount = utils.Ptr(1000.0)
		_, err := EvaluatePromotion(promo, 1, 500, 5, now)
		assert.ErrorIs(t, err, ErrInvalidPromotion)
	})

	t.Run("below minimum nights", func(t *testing.T) {
		promo := activePromo()
		promo.MinNights = utils.Ptr(7)
		_, err := EvaluatePromotion(promo, 1, 500, 5, now)
		assert.ErrorIs(t, err, ErrInvalidPromotion)
	})

	t.Run("nil promotion", func(t *testing.T) {
		_, err := EvaluatePromotion(nil, 1, 500, 5, now)
		assert.ErrorIs(t, err, ErrInvalidPromotion)
	})
}

func TestEvaluatePromotionDiscounts(t *testing.T) {
	now := dateAt(2026, 6, 1)

	t.Run("percentage", func(t *testing.T) {
		discount, err := EvaluatePromotion(activePromo(), 1, 500, 5, now)
		require.NoError(t, err)
		assert.InDelta(t, 100.0, discount, 1e-9)
	})

	t.Run("percentage capped at max discount", func(t *testing.T) {
		promo := activePromo()
		promo.MaxDiscount = utils.Ptr(60.0)
		discount, err := EvaluatePromotion(promo, 1, 500, 5, now)
		require.NoError(t, err)
		assert.InDelta(t, 60.0, discount, 1e-9)
	})

	t.Run("fixed amount may exceed the subtotal", func(t *testing.T) {
		promo := activePromo()
		promo.DiscountType = "FIXED_AMOUNT"
		promo.DiscountValue = 700
		discount, err := EvaluatePromotion(promo, 1, 500, 5, now)
		require.NoError(t, err)
		assert.InDelta(t, 700.0, discount, 1e-9)
	})

	t.Run("free nights use the average nightly rate", func(t *testing.T) {
		promo := activePromo()
		promo.DiscountType = "FREE_NIGHTS"
		promo.DiscountValue = 2
		discount, err := EvaluatePromotion(promo, 1, 500, 5, now)
		require.NoError(t, err)
		assert.InDelta(t, 200.0, discount, 1e-9)
	})

	t.Run("site-wide code applies to any hotel", func(t *testing.T) {
		promo := activePromo()
		promo.HotelId = nil
		_, err := EvaluatePromotion(promo, 42, 500, 5, now)
		assert.NoError(t, err)
	})

	t.Run("unknown discount type", func(t *testing.T) {
		promo := activePromo()
		promo.DiscountType = "BOGO"
		_, err := EvaluatePromotion(promo, 1, 500, 5, now)
		assert.ErrorIs(t, err, ErrInvalidPromotion)
	})
}
