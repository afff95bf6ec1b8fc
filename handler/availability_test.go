package handler

import (
	"testing"

	"resort_booking/model"
	"resort_booking/utils"

	"github.com/stretchr/testify/assert"
)

func TestStayWithinLimits(t *testing.T) {
	t.Run("no limits set", func(t *testing.T) {
		rows := []model.Availability{{}, {}, {}}
		assert.True(t, stayWithinLimits(rows, 3))
	})

	t.Run("min stay on one date rejects a short stay", func(t *testing.T) {
		rows := []model.Availability{{}, {MinStay: utils.Ptr(3)}}
		assert.False(t, stayWithinLimits(rows, 2))
		assert.True(t, stayWithinLimits(rows, 3))
	})

	t.Run("max stay on one date rejects a long stay", func(t *testing.T) {
		rows := []model.Availability{{MaxStay: utils.Ptr(7)}}
		assert.False(t, stayWithinLimits(rows, 10))
		assert.True(t, stayWithinLimits(rows, 7))
	})
}
