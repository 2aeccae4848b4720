// Package identity wraps Firebase Auth as the external identity provider.
package identity

import (
	"context"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const bearerPrefix = "Bearer "

// roleClaim is the custom-claim key carrying the user role.
const roleClaim = "role"

type firebaseService struct {
	client *auth.Client
}

// NewFirebaseService creates the identity adapter for the configured
// Firebase project.
func NewFirebaseService(ctx context.Context, cfg *config.Config) (service.IdentityService, error) {
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get auth client")
	}

	return &firebaseService{client: client}, nil
}

// VerifyToken verifies a bearer token with the provider and extracts the
// principal. Every verification failure, including a missing or malformed
// header, maps to service.ErrTokenInvalid.
func (s *firebaseService) VerifyToken(ctx context.Context, authorizationHeader string) (*service.Principal, error) {
	if authorizationHeader == "" {
		return nil, service.ErrTokenInvalid
	}

	tokenString := strings.TrimPrefix(authorizationHeader, bearerPrefix)
	if tokenString == authorizationHeader || tokenString == "" {
		return nil, service.ErrTokenInvalid
	}

	token, err := s.client.VerifyIDToken(ctx, tokenString)
	if err != nil {
		return nil, service.ErrTokenInvalid
	}

	principal := &service.Principal{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		principal.Email = email
	}
	if role, ok := token.Claims[roleClaim].(string); ok {
		principal.Role = entity.Role(role)
	}

	return principal, nil
}

// GetUser fetches the provider account record for a UID.
func (s *firebaseService) GetUser(ctx context.Context, uid string) (*service.IdentityUser, error) {
	record, err := s.client.GetUser(ctx, uid)
	if err != nil {
		return nil, errors.Wrapf(err, "get user %s", uid)
	}

	return toIdentityUser(record), nil
}

// CreateUser registers a new provider account.
func (s *firebaseService) CreateUser(ctx context.Context, params service.CreateIdentityParams) (*service.IdentityUser, error) {
	toCreate := (&auth.UserToCreate{}).
		Email(params.Email).
		Password(params.Password).
		DisplayName(params.Name)
	if params.Phone != "" {
		toCreate = toCreate.PhoneNumber(params.Phone)
	}

	record, err := s.client.CreateUser(ctx, toCreate)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, service.ErrIdentityExists
		}

		return nil, errors.Wrap(err, "create user")
	}

	return toIdentityUser(record), nil
}

// GenerateCustomToken mints a provider custom token carrying the role claim.
func (s *firebaseService) GenerateCustomToken(ctx context.Context, uid string, role entity.Role) (string, error) {
	token, err := s.client.CustomTokenWithClaims(ctx, uid, map[string]any{
		roleClaim: role.String(),
	})
	if err != nil {
		return "", errors.Wrapf(err, "mint custom token for %s", uid)
	}

	return token, nil
}

// SetUserRole stores the role as a custom claim on the provider account.
// The claim lands in ID tokens minted after the next refresh.
func (s *firebaseService) SetUserRole(ctx context.Context, uid string, role entity.Role) error {
	err := s.client.SetCustomUserClaims(ctx, uid, map[string]any{
		roleClaim: role.String(),
	})
	if err != nil {
		return errors.Wrapf(err, "set role claim for %s", uid)
	}

	return nil
}

func toIdentityUser(record *auth.UserRecord) *service.IdentityUser {
	return &service.IdentityUser{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		PhoneNumber: record.PhoneNumber,
		Disabled:    record.Disabled,
	}
}
