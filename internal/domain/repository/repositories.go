package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CRUD is the generic contract every resource repository satisfies. The
// document store exposes the same five primitives for every collection;
// resource-specific behavior lives in the usecase layer, not here.
type CRUD[T any] interface {
	// FindByID retrieves a document by its ID. Returns ErrNotFound when absent.
	FindByID(ctx context.Context, id string) (*T, error)

	// FindAll retrieves documents matching the query's equality filters.
	FindAll(ctx context.Context, q ListQuery) ([]*T, error)

	// Create persists a new document with a store-generated ID and creation
	// timestamp, returning the assigned ID.
	Create(ctx context.Context, doc *T) (string, error)

	// Update partially merges fields into an existing document and stamps
	// the update time.
	Update(ctx context.Context, id string, fields map[string]any) error

	// Delete removes a document by ID.
	Delete(ctx context.Context, id string) error
}

// ProductRepository persists catalog products.
type ProductRepository interface {
	CRUD[entity.Product]
}

// CategoryRepository persists product categories.
type CategoryRepository interface {
	CRUD[entity.Category]
}

// OrderRepository persists orders.
type OrderRepository interface {
	CRUD[entity.Order]
}

// UserRepository persists user profile documents. Profile document IDs are
// identity-provider UIDs, so creation takes an explicit ID.
type UserRepository interface {
	CRUD[entity.User]

	// CreateWithID persists a new profile under the given provider UID.
	CreateWithID(ctx context.Context, id string, user *entity.User) error
}

// DiscountRepository persists discounts.
type DiscountRepository interface {
	CRUD[entity.Discount]
}

// PromotionRepository persists promotions.
type PromotionRepository interface {
	CRUD[entity.Promotion]
}

// InventoryRepository persists per-store stock records.
type InventoryRepository interface {
	CRUD[entity.Inventory]
}

// StoreRepository persists stores.
type StoreRepository interface {
	CRUD[entity.Store]
}
