package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// CreateDiscountInput carries the fields for a new discount.
type CreateDiscountInput struct {
	Name        string
	Type        entity.DiscountType
	Value       float64
	ValidFrom   time.Time
	ValidTo     time.Time
	ProductIDs  []string
	CategoryIDs []string
}

// UpdateDiscountInput carries a partial update; nil fields are left unchanged.
type UpdateDiscountInput struct {
	Name        *string
	Type        *entity.DiscountType
	Value       *float64
	ValidFrom   *time.Time
	ValidTo     *time.Time
	ProductIDs  []string
	CategoryIDs []string
}

// DiscountListFilter narrows a discount listing. AvailableOnly keeps only
// discounts whose validity window contains the current instant, boundaries
// inclusive.
type DiscountListFilter struct {
	Type          entity.DiscountType
	AvailableOnly bool
	Populate      bool
	Limit         int
}

// DiscountUsecase defines the discount management use cases.
type DiscountUsecase interface {
	Create(ctx context.Context, input *CreateDiscountInput) (*entity.Discount, error)

	// GetByID retrieves a discount, optionally resolving its product and
	// category references into embedded documents.
	GetByID(ctx context.Context, id string, populate bool) (*entity.Discount, error)

	List(ctx context.Context, filter DiscountListFilter) ([]*entity.Discount, error)
	Update(ctx context.Context, id string, input *UpdateDiscountInput) (*entity.Discount, error)
	Delete(ctx context.Context, id string) error
}
