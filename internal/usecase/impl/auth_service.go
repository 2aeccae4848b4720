package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type authService struct {
	identity service.IdentityService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	identity service.IdentityService,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		identity: identity,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates the provider account, stamps the customer role claim,
// and writes the profile document under the provider UID. New accounts are
// always customers; admin promotion happens out of band.
func (s *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	identityUser, err := s.identity.CreateUser(ctx, service.CreateIdentityParams{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Phone:    input.Phone,
	})
	if err != nil {
		if errors.Is(err, service.ErrIdentityExists) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	if err := s.identity.SetUserRole(ctx, identityUser.UID, entity.RoleCustomer); err != nil {
		return nil, fmt.Errorf("failed to set user role: %w", err)
	}

	user := &entity.User{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
		Role:    entity.RoleCustomer,
	}

	if err := s.userRepo.CreateWithID(ctx, identityUser.UID, user); err != nil {
		// The provider account now exists without a profile; log loudly so
		// the orphan can be cleaned up.
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		logger.Error("identity created but profile write failed",
			slog.String("uid", identityUser.UID),
			slog.Any("error", err),
		)

		return nil, fmt.Errorf("failed to create user profile: %w", err)
	}

	token, err := s.identity.GenerateCustomToken(ctx, identityUser.UID, entity.RoleCustomer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate custom token: %w", err)
	}

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// Login exchanges a verified provider ID token for a fresh custom token
// carrying the role stored on the profile.
func (s *authService) Login(ctx context.Context, idToken string) (*usecase.AuthOutput, error) {
	// The verifier expects the Authorization header form.
	principal, err := s.identity.VerifyToken(ctx, "Bearer "+idToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(ctx, principal.UID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}

	role := user.Role
	if !role.IsValid() {
		role = entity.RoleCustomer
	}

	token, err := s.identity.GenerateCustomToken(ctx, principal.UID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate custom token: %w", err)
	}

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

func (s *authService) Verify(ctx context.Context, authorizationHeader string) (*service.Principal, error) {
	principal, err := s.identity.VerifyToken(ctx, authorizationHeader)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return principal, nil
}

// DevToken mints a custom token for any UID and role. Only the config-gated
// development route reaches this.
func (s *authService) DevToken(ctx context.Context, uid string, role entity.Role) (string, error) {
	if !role.IsValid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown role")
	}

	if err := s.identity.SetUserRole(ctx, uid, role); err != nil {
		return "", fmt.Errorf("failed to set user role: %w", err)
	}

	token, err := s.identity.GenerateCustomToken(ctx, uid, role)
	if err != nil {
		return "", fmt.Errorf("failed to generate custom token: %w", err)
	}

	return token, nil
}
