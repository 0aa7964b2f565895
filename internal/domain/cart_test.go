package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_State(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		cart := NewCart()
		assert.Equal(t, CartEmpty, cart.State())
	})

	t.Run("Populated", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(CartLine{ProductID: 1, Name: "Margherita", UnitPrice: 10, Qty: 1})
		assert.Equal(t, CartPopulated, cart.State())
	})

	t.Run("EmptyAfterClear", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(CartLine{ProductID: 1, Name: "Margherita", UnitPrice: 10, Qty: 1})
		cart.Clear()
		assert.Equal(t, CartEmpty, cart.State())
	})
}

func TestCart_AddItem(t *testing.T) {
	t.Run("NewLine", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(CartLine{ProductID: 1, Name: "Margherita", UnitPrice: 10, Qty: 2})

		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 2, cart.Lines[0].Qty)
	})

	t.Run("MergeSameProduct", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(CartLine{ProductID: 1, Name: "Margherita", UnitPrice: 10, Qty: 2})
		cart.AddItem(CartLine{ProductID: 1, Name: "Margherita", UnitPrice: 10, Qty: 3})

		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 5, cart.Lines[0].Qty)
	})

	t.Run("DifferentProducts", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(CartLine{ProductID: 1, Name: "Margherita", UnitPrice: 10, Qty: 1})
		cart.AddItem(CartLine{ProductID: 2, Name: "Regina", UnitPrice: 12, Qty: 1})

		assert.Len(t, cart.Lines, 2)
	})

	t.Run("SanitizesInput", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(CartLine{
			ProductID: 1,
			Name:      "Margherita",
			UnitPrice: -5,
			Qty:       0,
			Supplements: []CartSupplement{
				{Name: "Oeuf", UnitPrice: -1, Qty: -2},
			},
		})

		assert.Equal(t, float64(0), cart.Lines[0].UnitPrice)
		assert.Equal(t, 1, cart.Lines[0].Qty)
		assert.Equal(t, float64(0), cart.Lines[0].Supplements[0].UnitPrice)
		assert.Equal(t, 1, cart.Lines[0].Supplements[0].Qty)
	})
}

func TestCart_ChangeQty(t *testing.T) {
	t.Run("Increment", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(CartLine{ProductID: 1, UnitPrice: 10, Qty: 2})

		ok := cart.ChangeQty(0, 3)
		assert.True(t, ok)
		assert.Equal(t, 5, cart.Lines[0].Qty)
	})

	t.Run("FloorsAtOne", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(CartLine{ProductID: 1, UnitPrice: 10, Qty: 2})

		ok := cart.ChangeQty(0, -100)
		assert.True(t, ok)
		assert.Equal(t, 1, cart.Lines[0].Qty)
	})

	t.Run("InvalidIndex", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(CartLine{ProductID: 1, UnitPrice: 10, Qty: 1})

		assert.False(t, cart.ChangeQty(-1, 1))
		assert.False(t, cart.ChangeQty(1, 1))
	})
}

func TestCart_RemoveItem(t *testing.T) {
	t.Run("RemovesByIndex", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(CartLine{ProductID: 1, Name: "Margherita", UnitPrice: 10, Qty: 1})
		cart.AddItem(CartLine{ProductID: 2, Name: "Regina", UnitPrice: 12, Qty: 1})

		ok := cart.RemoveItem(0)
		assert.True(t, ok)
		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, int64(2), cart.Lines[0].ProductID)
	})

	t.Run("InvalidIndex", func(t *testing.T) {
		cart := NewCart()
		assert.False(t, cart.RemoveItem(0))
		assert.False(t, cart.RemoveItem(-1))
	})
}

func TestCart_Totals(t *testing.T) {
	t.Run("LineTotalWithSupplements", func(t *testing.T) {
		line := CartLine{
			ProductID: 1,
			UnitPrice: 10,
			Qty:       2,
			Supplements: []CartSupplement{
				{Name: "Oeuf", UnitPrice: 1.5, Qty: 2},
			},
		}
		assert.InDelta(t, 23.0, line.Total(), 0.001)
	})

	t.Run("CartTotal", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(CartLine{ProductID: 1, UnitPrice: 10, Qty: 2})
		cart.AddItem(CartLine{ProductID: 2, UnitPrice: 12.5, Qty: 1})

		assert.InDelta(t, 32.5, cart.Total(), 0.001)
	})

	t.Run("ItemCountIgnoresSupplements", func(t *testing.T) {
		cart := NewCart()
		cart.AddItem(CartLine{
			ProductID: 1,
			UnitPrice: 10,
			Qty:       2,
			Supplements: []CartSupplement{
				{Name: "Oeuf", UnitPrice: 1.5, Qty: 3},
			},
		})
		cart.AddItem(CartLine{ProductID: 2, UnitPrice: 12, Qty: 1})

		assert.Equal(t, 3, cart.ItemCount())
	})

	t.Run("EmptyCart", func(t *testing.T) {
		cart := NewCart()
		assert.Equal(t, float64(0), cart.Total())
		assert.Equal(t, 0, cart.ItemCount())
	})
}
