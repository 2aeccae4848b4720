package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// RegisterInput carries the fields for a new account. Registration always
// creates a customer; admin roles are assigned out of band.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Address  string
}

// AuthOutput is returned by registration and login: the stored profile and
// a provider custom token the client exchanges for an ID token.
type AuthOutput struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// AuthUsecase defines authentication use cases. Token verification and
// minting delegate entirely to the identity provider.
type AuthUsecase interface {
	// Register creates the provider identity, sets the customer role claim,
	// and writes the profile document keyed by the provider UID.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login exchanges a verified provider ID token for a custom token and
	// the caller's profile.
	Login(ctx context.Context, idToken string) (*AuthOutput, error)

	// Verify validates a bearer token and returns the principal.
	Verify(ctx context.Context, authorizationHeader string) (*service.Principal, error)

	// DevToken mints a custom token for an arbitrary UID and role. Reachable
	// only through the config-gated development route.
	DevToken(ctx context.Context, uid string, role entity.Role) (string, error)
}
