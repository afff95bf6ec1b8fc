package helper

import (
	"testing"
	"time"

	"resort_booking/model"

	"github.com/stretchr/testify/assert"
)

func dateAt(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ledgerRows(start time.Time, nights, available int, price float64) []model.Availability {
	rows := make([]model.Availability, 0, nights)
	for i := 0; i < nights; i++ {
		rows = append(rows, model.Availability{
			RoomId:    1,
			Date:      start.AddDate(0, 0, i),
			Available: available,
			Price:     price,
		})
	}
	return rows
}

func TestLedgerCovers(t *testing.T) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("full range with enough units", func(t *testing.T) {
		rows := ledgerRows(start, 5, 3, 100)
		assert.True(t, LedgerCovers(rows, 5, 3))
	})

	t.Run("missing a night", func(t *testing.T) {
		rows := ledgerRows(start, 4, 3, 100)
		assert.False(t, LedgerCovers(rows, 5, 1))
	})

	t.Run("one night short on units", func(t *testing.T) {
		rows := ledgerRows(start, 5, 2, 100)
		rows[2].Available = 1
		assert.False(t, LedgerCovers(rows, 5, 2))
	})

	t.Run("blocked night fails even with units", func(t *testing.T) {
		rows := ledgerRows(start, 5, 10, 100)
		rows[4].IsBlocked = true
		assert.False(t, LedgerCovers(rows, 5, 1))
	})

	t.Run("requesting more units than stock", func(t *testing.T) {
		rows := ledgerRows(start, 2, 2, 100)
		assert.False(t, LedgerCovers(rows, 2, 3))
	})
}

func TestLedgerSum(t *testing.T) {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	rows := ledgerRows(start, 3, 5, 120)
	rows[1].Price = 180

	assert.Equal(t, 420.0, LedgerSum(rows))
	assert.Equal(t, 0.0, LedgerSum(nil))
}
