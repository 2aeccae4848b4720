package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateStoreInput carries the fields for a new store.
type CreateStoreInput struct {
	Name     string
	Location string
}

// UpdateStoreInput carries a partial update; nil fields are left unchanged.
type UpdateStoreInput struct {
	Name     *string
	Location *string
}

// StoreListFilter narrows a store listing.
type StoreListFilter struct {
	Location string
	Limit    int
}

// StoreUsecase defines the store management use cases.
type StoreUsecase interface {
	Create(ctx context.Context, input *CreateStoreInput) (*entity.Store, error)

	// GetByID retrieves a store, optionally embedding its inventory records.
	GetByID(ctx context.Context, id string, populate bool) (*entity.Store, error)

	List(ctx context.Context, filter StoreListFilter) ([]*entity.Store, error)
	Update(ctx context.Context, id string, input *UpdateStoreInput) (*entity.Store, error)
	Delete(ctx context.Context, id string) error
}
