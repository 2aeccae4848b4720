package firestore

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	cloudfirestore "cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampForCreate(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	t.Run("assigns id and both timestamps, payload untouched", func(t *testing.T) {
		product := &entity.Product{Name: "Oat Milk", Price: 3.5}

		stampForCreate(product, "doc-1", now)

		assert.Equal(t, "doc-1", product.ID)
		assert.Equal(t, now, product.CreatedAt)
		assert.Equal(t, now, product.UpdatedAt)
		assert.Equal(t, "Oat Milk", product.Name)
		assert.Equal(t, 3.5, product.Price)
	})

	t.Run("non-record values pass through unchanged", func(t *testing.T) {
		plain := &struct{ Name string }{Name: "raw"}

		stampForCreate(plain, "doc-2", now)

		assert.Equal(t, "raw", plain.Name)
	})
}

func TestFieldUpdates(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	updates := fieldUpdates(map[string]any{
		"price": 5.5,
		"name":  "Soy Milk",
	}, now)

	require.Len(t, updates, 3)
	assert.Equal(t, []cloudfirestore.Update{
		{Path: "name", Value: "Soy Milk"},
		{Path: "price", Value: 5.5},
		{Path: "updatedAt", Value: now},
	}, updates)
}

func TestFieldUpdates_EmptyStillStampsUpdatedAt(t *testing.T) {
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	updates := fieldUpdates(nil, now)

	require.Len(t, updates, 1)
	assert.Equal(t, "updatedAt", updates[0].Path)
	assert.Equal(t, now, updates[0].Value)
}
