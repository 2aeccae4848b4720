package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockUserRepo
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := &mockUserRepo{}
	service := NewUserService(userRepo)

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func testUser(id string) *entity.User {
	user := &entity.User{
		Name:  "Test User",
		Email: "user@example.com",
		Role:  entity.RoleCustomer,
	}
	user.ID = id

	return user
}

func TestUserService_AddCartItem_MergesExistingLine(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := testUser("u1")
	user.Cart = []entity.CartItem{{ProductID: "p1", Quantity: 2}}

	fx.userRepo.On("FindByID", ctx, "u1").Return(user, nil)
	fx.userRepo.On("Update", ctx, "u1", map[string]any{
		"cart": []entity.CartItem{{ProductID: "p1", Quantity: 5}},
	}).Return(nil)

	updated, err := fx.service.AddCartItem(ctx, "u1", "p1", 3)
	require.NoError(t, err)
	require.Len(t, updated.Cart, 1)
	assert.Equal(t, 5, updated.Cart[0].Quantity)

	fx.userRepo.AssertExpectations(t)
}

func TestUserService_AddCartItem_AppendsNewLine(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := testUser("u1")
	user.Cart = []entity.CartItem{{ProductID: "p1", Quantity: 1}}

	fx.userRepo.On("FindByID", ctx, "u1").Return(user, nil)
	fx.userRepo.On("Update", ctx, "u1", map[string]any{
		"cart": []entity.CartItem{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 4},
		},
	}).Return(nil)

	updated, err := fx.service.AddCartItem(ctx, "u1", "p2", 4)
	require.NoError(t, err)
	require.Len(t, updated.Cart, 2)
	assert.Equal(t, "p2", updated.Cart[1].ProductID)

	fx.userRepo.AssertExpectations(t)
}

func TestUserService_RemoveCartItem_AbsentProductIsNoop(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := testUser("u1")
	user.Cart = []entity.CartItem{{ProductID: "p1", Quantity: 1}}

	fx.userRepo.On("FindByID", ctx, "u1").Return(user, nil)

	updated, err := fx.service.RemoveCartItem(ctx, "u1", "p-unknown")
	require.NoError(t, err)
	assert.Len(t, updated.Cart, 1)

	fx.userRepo.AssertNotCalled(t, "Update", ctx, "u1", mock.Anything)
}

func TestUserService_RemoveCartItem_DropsLine(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := testUser("u1")
	user.Cart = []entity.CartItem{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 2},
	}

	fx.userRepo.On("FindByID", ctx, "u1").Return(user, nil)
	fx.userRepo.On("Update", ctx, "u1", map[string]any{
		"cart": []entity.CartItem{{ProductID: "p2", Quantity: 2}},
	}).Return(nil)

	updated, err := fx.service.RemoveCartItem(ctx, "u1", "p1")
	require.NoError(t, err)
	require.Len(t, updated.Cart, 1)
	assert.Equal(t, "p2", updated.Cart[0].ProductID)
}

func TestUserService_AddWishlistItem_SetSemantics(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := testUser("u1")
	user.Wishlist = []string{"p1"}

	fx.userRepo.On("FindByID", ctx, "u1").Return(user, nil)

	// Adding an already-wished product changes nothing and writes nothing.
	updated, err := fx.service.AddWishlistItem(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, updated.Wishlist)
	fx.userRepo.AssertNotCalled(t, "Update", ctx, "u1", mock.Anything)

	fx.userRepo.On("Update", ctx, "u1", map[string]any{
		"wishlist": []string{"p1", "p2"},
	}).Return(nil)

	updated, err = fx.service.AddWishlistItem(ctx, "u1", "p2")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, updated.Wishlist)
}

func TestUserService_Update_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrNotFound)

	name := "New Name"
	_, err := fx.service.Update(ctx, "missing", &usecase.UpdateUserInput{Name: &name})
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
