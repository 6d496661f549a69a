//go:build unit

package cart_test

import (
	"testing"
	"time"

	"registrar/internal/domain/cart"
	"registrar/internal/domain/offering"
	"registrar/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOffering(t *testing.T, code string, capacity int, days []time.Weekday, startH, endH int) *offering.Offering {
	t.Helper()
	sched, err := schedule.New(days, schedule.MustTimeOfDay(startH, 0), schedule.MustTimeOfDay(endH, 0), "")
	require.NoError(t, err)
	o, err := offering.New(uuid.New(), code, "2026FA", capacity, sched)
	require.NoError(t, err)
	return o
}

func TestAddItem(t *testing.T) {
	c := cart.New(uuid.New())
	a, b := uuid.New(), uuid.New()

	assert.True(t, c.AddItem(a))
	assert.True(t, c.AddItem(b))
	assert.False(t, c.AddItem(a))
	assert.Equal(t, []uuid.UUID{a, b}, c.Items())
}

func TestRemoveItem(t *testing.T) {
	c := cart.New(uuid.New())
	a, b := uuid.New(), uuid.New()
	c.AddItem(a)
	c.AddItem(b)

	assert.True(t, c.RemoveItem(a))
	assert.False(t, c.RemoveItem(a))
	assert.Equal(t, []uuid.UUID{b}, c.Items())
}

func TestClear(t *testing.T) {
	c := cart.New(uuid.New())
	c.AddItem(uuid.New())
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Size())
}

func TestValidate(t *testing.T) {
	mwf := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	tr := []time.Weekday{time.Tuesday, time.Thursday}

	t.Run("empty cart is an error", func(t *testing.T) {
		c := cart.New(uuid.New())
		result := c.Validate(nil)
		assert.Equal(t, []string{"cart is empty"}, result.Errors)
	})

	t.Run("clean cart passes", func(t *testing.T) {
		c := cart.New(uuid.New())
		morning := buildOffering(t, "CS201", 3, mwf, 9, 10)
		afternoon := buildOffering(t, "MATH250", 3, tr, 13, 14)
		c.AddItem(morning.ID())
		c.AddItem(afternoon.ID())

		result := c.Validate([]*offering.Offering{morning, afternoon})
		assert.False(t, result.HasErrors())
		assert.False(t, result.HasWarnings())
	})

	t.Run("each conflicting pair yields one error", func(t *testing.T) {
		c := cart.New(uuid.New())
		first := buildOffering(t, "CS201", 3, mwf, 9, 10)
		second := buildOffering(t, "MATH250", 3, mwf, 9, 11)
		third := buildOffering(t, "PHYS110", 3, mwf, 9, 12)
		for _, o := range []*offering.Offering{first, second, third} {
			c.AddItem(o.ID())
		}

		result := c.Validate([]*offering.Offering{first, second, third})
		assert.ElementsMatch(t, []string{
			"schedule conflict: CS201 and MATH250",
			"schedule conflict: CS201 and PHYS110",
			"schedule conflict: MATH250 and PHYS110",
		}, result.Errors)
	})

	t.Run("full offering is a warning not an error", func(t *testing.T) {
		c := cart.New(uuid.New())
		full := buildOffering(t, "CS201", 1, mwf, 9, 10)
		require.Equal(t, offering.DecisionAdmitted, full.Admit(uuid.New()))
		c.AddItem(full.ID())

		result := c.Validate([]*offering.Offering{full})
		assert.False(t, result.HasErrors())
		assert.Equal(t, []string{"offering CS201 is full - will be waitlisted"}, result.Warnings)
	})

	t.Run("validation does not mutate the cart", func(t *testing.T) {
		c := cart.New(uuid.New())
		o := buildOffering(t, "CS201", 3, mwf, 9, 10)
		c.AddItem(o.ID())

		first := c.Validate([]*offering.Offering{o})
		second := c.Validate([]*offering.Offering{o})
		assert.Equal(t, first, second)
		assert.Equal(t, 1, c.Size())
	})
}
