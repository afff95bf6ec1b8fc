package helper

import (
	"testing"

	"resort_booking/model"
	"resort_booking/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRatePlan(t *testing.T) {
	plans := []model.RatePlan{
		{Name: "peak", Priority: 10, MinStay: utils.Ptr(7)},
		{Name: "weekly", Priority: 5, MinStay: utils.Ptr(3), MaxStay: utils.Ptr(6)},
		{Name: "standard", Priority: 0},
	}

	t.Run("highest priority admissible plan wins", func(t *testing.T) {
		plan := ResolveRatePlan(plans, 7)
		require.NotNil(t, plan)
		assert.Equal(t, "peak", plan.Name)
	})

	t.Run("stay too short for the top plan falls through", func(t *testing.T) {
		plan := ResolveRatePlan(plans, 4)
		require.NotNil(t, plan)
		assert.Equal(t, "weekly", plan.Name)
	})

	t.Run("max stay bound excludes a plan", func(t *testing.T) {
		plan := ResolveRatePlan(plans[1:], 8)
		require.NotNil(t, plan)
		assert.Equal(t, "standard", plan.Name)
	})

	t.Run("two nights against a three-night minimum resolves nothing", func(t *testing.T) {
		restricted := []model.RatePlan{{Name: "weekly", MinStay: utils.Ptr(3)}}
		assert.Nil(t, ResolveRatePlan(restricted, 2))
	})

	t.Run("no plans at all", func(t *testing.T) {
		assert.Nil(t, ResolveRatePlan(nil, 5))
	})
}

func TestApplyRatePlan(t *testing.T) {
	t.Run("percentage discount off the ledger sum", func(t *testing.T) {
		plan := &model.RatePlan{Discount: utils.Ptr(20.0)}
		assert.InDelta(t, 400.0, ApplyRatePlan(plan, 500, 5), 1e-9)
	})

	t.Run("percentage markup on the ledger sum", func(t *testing.T) {
		plan := &model.RatePlan{Markup: utils.Ptr(10.0)}
		assert.InDelta(t, 550.0, ApplyRatePlan(plan, 500, 5), 1e-9)
	})

	t.Run("flat base price per night", func(t *testing.T) {
		plan := &model.RatePlan{BasePrice: 90}
		assert.InDelta(t, 450.0, ApplyRatePlan(plan, 500, 5), 1e-9)
	})

	t.Run("discount wins when both are set", func(t *testing.T) {
		plan := &model.RatePlan{Discount: utils.Ptr(20.0), Markup: utils.Ptr(10.0)}
		assert.InDelta(t, 400.0, ApplyRatePlan(plan, 500, 5), 1e-9)
	})
}

func TestPriceRoomStay(t *testing.T) {
	rows := ledgerRows(dateAt(2026, 4, 1), 5, 3, 100)

	t.Run("ledger pricing when no plan resolves", func(t *testing.T) {
		assert.InDelta(t, 500.0, PriceRoomStay(rows, nil, 5), 1e-9)
	})

	t.Run("resolved plan reprices the stay", func(t *testing.T) {
		plans := []model.RatePlan{{Discount: utils.Ptr(10.0)}}
		assert.InDelta(t, 450.0, PriceRoomStay(rows, plans, 5), 1e-9)
	})
}
