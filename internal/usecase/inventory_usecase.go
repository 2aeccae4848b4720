package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateInventoryInput carries the fields for a new stock record.
type CreateInventoryInput struct {
	ProductID string
	StoreID   string
	Stock     int
}

// UpdateInventoryInput carries a partial update; nil fields are left unchanged.
type UpdateInventoryInput struct {
	Stock *int
}

// InventoryListFilter narrows an inventory listing.
type InventoryListFilter struct {
	ProductID string
	StoreID   string
	Limit     int
}

// InventoryUsecase defines the stock management use cases.
type InventoryUsecase interface {
	Create(ctx context.Context, input *CreateInventoryInput) (*entity.Inventory, error)
	GetByID(ctx context.Context, id string) (*entity.Inventory, error)
	List(ctx context.Context, filter InventoryListFilter) ([]*entity.Inventory, error)
	Update(ctx context.Context, id string, input *UpdateInventoryInput) (*entity.Inventory, error)
	Delete(ctx context.Context, id string) error
}
