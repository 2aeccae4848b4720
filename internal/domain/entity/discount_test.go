package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscountAvailableAt(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	discount := &Discount{ValidFrom: from, ValidTo: to}

	// Both window boundaries are inclusive.
	assert.True(t, discount.AvailableAt(from))
	assert.True(t, discount.AvailableAt(to))
	assert.True(t, discount.AvailableAt(from.Add(24*time.Hour)))

	assert.False(t, discount.AvailableAt(from.Add(-time.Second)))
	assert.False(t, discount.AvailableAt(to.Add(time.Second)))
}

func TestPromotionAvailableAt(t *testing.T) {
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	promotion := &Promotion{ValidFrom: from, ValidTo: to}

	assert.True(t, promotion.AvailableAt(from))
	assert.True(t, promotion.AvailableAt(to))
	assert.False(t, promotion.AvailableAt(to.Add(time.Nanosecond)))
}

func TestUserCartHelpers(t *testing.T) {
	user := &User{
		Cart:     []CartItem{{ProductID: "p1", Quantity: 2}},
		Wishlist: []string{"p9"},
	}

	assert.Equal(t, 0, user.CartLine("p1"))
	assert.Equal(t, -1, user.CartLine("p2"))
	assert.True(t, user.InWishlist("p9"))
	assert.False(t, user.InWishlist("p1"))
}
