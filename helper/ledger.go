package helper

import (
	"fmt"
	"time"

	"resort_booking/model"
	"resort_booking/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetLedgerRange returns the ordered ledger rows covering [checkIn, checkOut).
func GetLedgerRange(db *gorm.DB, roomId uint, checkIn, checkOut time.Time) ([]model.Availability, error) {
	var records []model.Availability
	if err := db.
		Where("room_id = ? AND date >= ? AND date < ?", roomId, utils.Midnight(checkIn), utils.Midnight(checkOut)).
		Order("date asc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// LedgerCovers reports whether the fetched range can host a stay: exactly one
// row per night, none blocked, each with at least qty units left.
func LedgerCovers(records []model.Availability, nights, qty int) bool {
	if len(records) != nights {
		return false
	}
	for _, rec := range records {
		if rec.IsBlocked || rec.Available < qty {
			return false
		}
	}
	return true
}

// LedgerSum adds up the nightly prices of the range.
func LedgerSum(records []model.Availability) float64 {
	sum := 0.0
	for _, rec := range records {
		sum += rec.Price
	}
	return sum
}

// DecrementLedger takes qty units off every date of [checkIn, checkOut) in one
// conditional UPDATE. If any date is blocked or short on units the row count
// comes back below nights and nothing is kept - the caller's transaction must
// roll back on ErrInsufficientInventory.
func DecrementLedger(tx *gorm.DB, roomId uint, checkIn, checkOut time.Time, qty int) error {
	nights := utils.Nights(checkIn, checkOut)
	result := tx.Model(&model.Availability{}).
		Where("room_id = ? AND date >= ? AND date < ? AND is_blocked = false AND available >= ?",
			roomId, utils.Midnight(checkIn), utils.Midnight(checkOut), qty).
		Update("available", gorm.Expr("available - ?", qty))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != int64(nights) {
		return fmt.Errorf("room %d: %w", roomId, ErrInsufficientInventory)
	}
	return nil
}

// RestoreLedger puts qty units back on every date of the original range. The
// quantities come from the booking's own line items, never from current ledger
// state, so concurrent manager edits cannot corrupt the restore.
func RestoreLedger(tx *gorm.DB, roomId uint, checkIn, checkOut time.Time, qty int) error {
	return tx.Model(&model.Availability{}).
		Where("room_id = ? AND date >= ? AND date < ?", roomId, utils.Midnight(checkIn), utils.Midnight(checkOut)).
		Update("available", gorm.Expr("available + ?", qty)).Error
}

// SetLedgerBlocked blocks or unblocks a date range. Blocking forces available
// to zero; unblocking only clears the flag, the manager restores counts
// explicitly afterwards.
func SetLedgerBlocked(tx *gorm.DB, roomId uint, start, end time.Time, blocked bool, reason *string) error {
	updates := map[string]any{
		"is_blocked": blocked,
	}
	if blocked {
		updates["available"] = 0
		updates["reason"] = reason
	} else {
		updates["reason"] = nil
	}
	return tx.Model(&model.Availability{}).
		Where("room_id = ? AND date >= ? AND date <= ?", roomId, utils.Midnight(start), utils.Midnight(end)).
		Updates(updates).Error
}

// SeedLedger bulk-creates daily ledger rows for a room starting today. Existing
// (room, date) rows are left untouched.
func SeedLedger(tx *gorm.DB, room *model.Room, days int) error {
	start := utils.Midnight(time.Now())
	records := make([]model.Availability, 0, days)
	for i := 0; i < days; i++ {
		records = append(records, model.Availability{
			HotelId:   room.HotelId,
			RoomId:    room.ID,
			Date:      start.AddDate(0, 0, i),
			Available: room.TotalUnits,
			Price:     room.BasePrice,
			Currency:  room.Currency,
		})
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(records, 100).Error
}
