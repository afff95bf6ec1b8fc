package helper

import (
	"log"
	"time"

	"resort_booking/model"

	"gorm.io/gorm"
)

// GetEligibleRatePlans fetches a room's active plans whose validity window
// covers the whole stay, highest priority first.
func GetEligibleRatePlans(db *gorm.DB, roomId uint, checkIn, checkOut time.Time) ([]model.RatePlan, error) {
	var plans []model.RatePlan
	if err := db.
		Where("room_id = ? AND is_active = true AND start_date <= ? AND end_date >= ?", roomId, checkIn, checkOut).
		Order("priority desc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// ResolveRatePlan picks the single applicable plan for a stay length: first
// plan (already priority-ordered) whose min/max stay bounds admit nights.
// Returns nil when no plan matches and ledger pricing applies verbatim.
func ResolveRatePlan(plans []model.RatePlan, nights int) *model.RatePlan {
	for i := range plans {
		plan := &plans[i]
		minStay := 1
		if plan.MinStay != nil {
			minStay = *plan.MinStay
		}
		if nights < minStay {
			continue
		}
		if plan.MaxStay != nil && nights > *plan.MaxStay {
			continue
		}
		return plan
	}
	return nil
}

// ApplyRatePlan prices a stay under a plan: percentage discount or markup on
// the ledger sum, else the plan's flat base price per night. A plan carrying
// both discount and markup is a configuration error; discount wins.
func ApplyRatePlan(plan *model.RatePlan, ledgerSum float64, nights int) float64 {
	if plan.Discount != nil && plan.Markup != nil {
		log.Printf("rate plan %d has both discount and markup set, using discount", plan.ID)
	}
	if plan.Discount != nil {
		return ledgerSum * (1 - *plan.Discount/100)
	}
	if plan.Markup != nil {
		return ledgerSum * (1 + *plan.Markup/100)
	}
	return plan.BasePrice * float64(nights)
}
