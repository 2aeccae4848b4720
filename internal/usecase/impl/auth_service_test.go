package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	identity *mockIdentity
	userRepo *mockUserRepo
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	identity := &mockIdentity{}
	userRepo := &mockUserRepo{}
	service := NewAuthService(identity, userRepo, newDiscardLogger())

	return authServiceFixtures{
		service:  service,
		identity: identity,
		userRepo: userRepo,
	}
}

func TestAuthService_Register_CreatesCustomerProfile(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.identity.On("CreateUser", ctx, service.CreateIdentityParams{
		Email:    "shopper@example.com",
		Password: "secret123",
		Name:     "Shopper",
	}).Return(&service.IdentityUser{UID: "uid-1", Email: "shopper@example.com"}, nil)
	fx.identity.On("SetUserRole", ctx, "uid-1", entity.RoleCustomer).Return(nil)
	fx.userRepo.On("CreateWithID", ctx, "uid-1", mock.AnythingOfType("*entity.User")).Return(nil)
	fx.identity.On("GenerateCustomToken", ctx, "uid-1", entity.RoleCustomer).Return("custom-token", nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "shopper@example.com",
		Password: "secret123",
		Name:     "Shopper",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-token", out.Token)
	assert.Equal(t, entity.RoleCustomer, out.User.Role)
	assert.Equal(t, "shopper@example.com", out.User.Email)

	fx.identity.AssertExpectations(t)
	fx.userRepo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.identity.On("CreateUser", ctx, mock.AnythingOfType("service.CreateIdentityParams")).
		Return(nil, service.ErrIdentityExists)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "secret123",
		Name:     "Shopper",
	})
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	fx.userRepo.AssertNotCalled(t, "CreateWithID", ctx, mock.Anything, mock.Anything)
}

func TestAuthService_Login_MintsTokenWithProfileRole(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.identity.On("VerifyToken", ctx, "Bearer id-token").
		Return(&service.Principal{UID: "uid-1", Role: entity.RoleCustomer}, nil)

	admin := testUser("uid-1")
	admin.Role = entity.RoleAdmin
	fx.userRepo.On("FindByID", ctx, "uid-1").Return(admin, nil)
	fx.identity.On("GenerateCustomToken", ctx, "uid-1", entity.RoleAdmin).Return("admin-token", nil)

	out, err := fx.service.Login(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, "admin-token", out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestAuthService_Login_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.identity.On("VerifyToken", ctx, "Bearer bad").Return(nil, service.ErrTokenInvalid)

	_, err := fx.service.Login(ctx, "bad")
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthService_Verify_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.identity.On("VerifyToken", ctx, "garbage").Return(nil, service.ErrTokenInvalid)

	_, err := fx.service.Verify(ctx, "garbage")
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthService_DevToken_RejectsUnknownRole(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.DevToken(context.Background(), "uid-1", entity.Role("superuser"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	fx.identity.AssertNotCalled(t, "SetUserRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_DevToken_SetsClaimAndMints(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.identity.On("SetUserRole", ctx, "uid-1", entity.RoleAdmin).Return(nil)
	fx.identity.On("GenerateCustomToken", ctx, "uid-1", entity.RoleAdmin).Return("dev-token", nil)

	token, err := fx.service.DevToken(ctx, "uid-1", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "dev-token", token)
}
