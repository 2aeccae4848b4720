package impl

import (
	"context"
	"fmt"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository) usecase.UserUsecase {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return s.findUser(ctx, id)
}

func (s *userService) List(ctx context.Context, filter usecase.UserListFilter) ([]*entity.User, error) {
	query := repository.ListQuery{Limit: filter.Limit}
	if filter.Role != "" {
		query = query.WithFilter("role", filter.Role)
	}
	if filter.Email != "" {
		query = query.WithFilter("email", filter.Email)
	}

	users, err := s.userRepo.FindAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (s *userService) Update(ctx context.Context, id string, input *usecase.UpdateUserInput) (*entity.User, error) {
	if _, err := s.findUser(ctx, id); err != nil {
		return nil, err
	}

	fields := make(map[string]any)
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.Address != nil {
		fields["address"] = *input.Address
	}

	if err := s.userRepo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.findUser(ctx, id)
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.findUser(ctx, id); err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// AddCartItem merges the quantity into an existing line for the same
// product, or appends a new line. Read and write are separate store calls,
// so concurrent cart edits follow last-writer-wins.
func (s *userService) AddCartItem(ctx context.Context, userID, productID string, quantity int) (*entity.User, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if idx := user.CartLine(productID); idx >= 0 {
		user.Cart[idx].Quantity += quantity
	} else {
		user.Cart = append(user.Cart, entity.CartItem{ProductID: productID, Quantity: quantity})
	}

	return s.saveCart(ctx, user)
}

func (s *userService) RemoveCartItem(ctx context.Context, userID, productID string) (*entity.User, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := user.CartLine(productID)
	if idx < 0 {
		// Removing a product that is not in the cart is a no-op success.
		return user, nil
	}

	user.Cart = append(user.Cart[:idx], user.Cart[idx+1:]...)

	return s.saveCart(ctx, user)
}

func (s *userService) AddWishlistItem(ctx context.Context, userID, productID string) (*entity.User, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.InWishlist(productID) {
		return user, nil
	}

	user.Wishlist = append(user.Wishlist, productID)

	return s.saveWishlist(ctx, user)
}

func (s *userService) RemoveWishlistItem(ctx context.Context, userID, productID string) (*entity.User, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.InWishlist(productID) {
		return user, nil
	}

	kept := make([]string, 0, len(user.Wishlist)-1)
	for _, id := range user.Wishlist {
		if id != productID {
			kept = append(kept, id)
		}
	}
	user.Wishlist = kept

	return s.saveWishlist(ctx, user)
}

func (s *userService) findUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}

	return user, nil
}

func (s *userService) saveCart(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := s.userRepo.Update(ctx, user.ID, map[string]any{"cart": user.Cart}); err != nil {
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}

	return s.findUser(ctx, user.ID)
}

func (s *userService) saveWishlist(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := s.userRepo.Update(ctx, user.ID, map[string]any{"wishlist": user.Wishlist}); err != nil {
		return nil, fmt.Errorf("failed to update wishlist: %w", err)
	}

	return s.findUser(ctx, user.ID)
}
