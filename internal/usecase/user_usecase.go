package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// UpdateUserInput carries a partial profile update; nil fields are left
// unchanged. Email and role are owned by the identity provider and cannot
// be edited here.
type UpdateUserInput struct {
	Name    *string
	Phone   *string
	Address *string
}

// UserListFilter narrows a user listing.
type UserListFilter struct {
	Role  entity.Role
	Email string
	Limit int
}

// UserUsecase defines profile, cart and wishlist use cases.
type UserUsecase interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	List(ctx context.Context, filter UserListFilter) ([]*entity.User, error)
	Update(ctx context.Context, id string, input *UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id string) error

	// AddCartItem merges quantity into an existing line for the same product
	// or appends a new line, and returns the updated profile.
	AddCartItem(ctx context.Context, userID, productID string, quantity int) (*entity.User, error)

	// RemoveCartItem drops the line for productID. Removing an absent
	// product is a no-op success.
	RemoveCartItem(ctx context.Context, userID, productID string) (*entity.User, error)

	// AddWishlistItem adds productID with set semantics.
	AddWishlistItem(ctx context.Context, userID, productID string) (*entity.User, error)

	// RemoveWishlistItem drops productID; absent IDs are a no-op success.
	RemoveWishlistItem(ctx context.Context, userID, productID string) (*entity.User, error)
}
