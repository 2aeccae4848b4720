package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderLineInput is one requested order line; price and name are captured
// from the catalog at creation time.
type OrderLineInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput carries the fields for a new order.
type CreateOrderInput struct {
	Items       []OrderLineInput
	DiscountID  string
	PromotionID string
}

// UpdateOrderInput carries a partial update; nil fields are left unchanged.
type UpdateOrderInput struct {
	Status      *entity.OrderStatus
	DiscountID  *string
	PromotionID *string
}

// OrderListFilter narrows an order listing.
type OrderListFilter struct {
	UserID string
	Status entity.OrderStatus
	Limit  int
}

// OrderUsecase defines the order management use cases.
type OrderUsecase interface {
	// Create places an order for the user, capturing line prices from the
	// catalog, and publishes an order.created event.
	Create(ctx context.Context, userID string, input *CreateOrderInput) (*entity.Order, error)

	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, filter OrderListFilter) ([]*entity.Order, error)

	// Update partially updates an order; status changes publish an
	// order.status_changed event.
	Update(ctx context.Context, id string, input *UpdateOrderInput) (*entity.Order, error)

	Delete(ctx context.Context, id string) error
}
