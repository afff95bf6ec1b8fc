package helper

import (
	"errors"
	"fmt"
	"time"

	"resort_booking/model"

	"gorm.io/gorm"
)

// FindPromotionByCode looks a promotion up by exact code match.
func FindPromotionByCode(db *gorm.DB, code string) (*model.Promotion, error) {
	var promo model.Promotion
	if err := db.Where("code = ?", code).First(&promo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: code not found", ErrInvalidPromotion)
		}
		return nil, err
	}
	return &promo, nil
}

// EvaluatePromotion validates a promotion against a stay and returns the
// discount amount. FIXED_AMOUNT is returned verbatim and may exceed the
// subtotal; callers decide whether to clamp.
func EvaluatePromotion(promo *model.Promotion, hotelId uint, subtotal float64, nights int, now time.Time) (float64, error) {
	if promo == nil {
		return 0, fmt.Errorf("%w: code not found", ErrInvalidPromotion)
	}
	if !promo.IsActive {
		return 0, fmt.Errorf("%w: promotion is not active", ErrInvalidPromotion)
	}
	if now.Before(promo.StartDate) || now.After(promo.EndDate) {
		return 0, fmt.Errorf("%w: promotion expired or not yet started", ErrInvalidPromotion)
	}
	if promo.HotelId != nil && *promo.HotelId != hotelId {
		return 0, fmt.Errorf("%w: promotion not valid for this hotel", ErrInvalidPromotion)
	}
	if promo.UsageLimit != nil && promo.UsageCount >= *promo.UsageLimit {
		return 0, fmt.Errorf("%w: usage limit exceeded", ErrInvalidPromotion)
	}
	if promo.MinAmount != nil && subtotal < *promo.MinAmount {
		return 0, fmt.Errorf("%w: minimum booking amount of %.2f required", ErrInvalidPromotion, *promo.MinAmount)
	}
	if promo.MinNights != nil && nights < *promo.MinNights {
		return 0, fmt.Errorf("%w: minimum %d nights required", ErrInvalidPromotion, *promo.MinNights)
	}

	discount := 0.0
	switch promo.DiscountType {
	case "PERCENTAGE":
		discount = subtotal * (promo.DiscountValue / 100)
		if promo.MaxDiscount != nil && discount > *promo.MaxDiscount {
			discount = *promo.MaxDiscount
		}
	case "FIXED_AMOUNT":
		discount = promo.DiscountValue
	case "FREE_NIGHTS":
		// average nightly rate times the number of free nights granted
		discount = (subtotal / float64(nights)) * promo.DiscountValue
	default:
		return 0, fmt.Errorf("%w: unknown discount type %s", ErrInvalidPromotion, promo.DiscountType)
	}

	return discount, nil
}

// RedeemPromotion bumps the usage counter by one inside the booking
// transaction. The WHERE clause keeps the check-then-increment atomic: near
// the limit only as many redemptions succeed as slots remain. The counter is
// never decremented, including on cancellation.
func RedeemPromotion(tx *gorm.DB, code string) error {
	result := tx.Model(&model.Promotion{}).
		Where("code = ? AND (usage_limit IS NULL OR usage_count < usage_limit)", code).
		Update("usage_count", gorm.Expr("usage_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: usage limit exceeded", ErrInvalidPromotion)
	}
	return nil
}
