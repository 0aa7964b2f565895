package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	t.Run("FullGrid", func(t *testing.T) {
		slots := GenerateTimeSlots()

		expected := []types.TimeString{
			"12:00", "12:30", "13:00", "13:30", "14:00",
			"19:00", "19:30", "20:00", "20:30", "21:00", "21:30", "22:00", "22:30",
		}
		assert.Equal(t, expected, slots)
	})

	t.Run("BoundariesIncluded", func(t *testing.T) {
		slots := GenerateTimeSlots()

		assert.Len(t, slots, 13)
		assert.Equal(t, types.TimeString(LunchOpenTime), slots[0])
		assert.Equal(t, types.TimeString(DinnerCloseTime), slots[len(slots)-1])
	})
}

func TestIsSlotTime(t *testing.T) {
	t.Run("GridTimes", func(t *testing.T) {
		assert.True(t, IsSlotTime("12:00"))
		assert.True(t, IsSlotTime("14:00"))
		assert.True(t, IsSlotTime("19:30"))
		assert.True(t, IsSlotTime("22:30"))
	})

	t.Run("OutsideGrid", func(t *testing.T) {
		// между обедом и ужином
		assert.False(t, IsSlotTime("15:00"))
		assert.False(t, IsSlotTime("18:30"))
		// после закрытия
		assert.False(t, IsSlotTime("23:00"))
		// не на границе шага - округление не выполняется
		assert.False(t, IsSlotTime("12:15"))
		assert.False(t, IsSlotTime("19:01"))
	})

	t.Run("InvalidValues", func(t *testing.T) {
		assert.False(t, IsSlotTime(""))
		assert.False(t, IsSlotTime("not-a-time"))
	})
}
