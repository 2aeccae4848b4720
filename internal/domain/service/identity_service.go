// Package service defines interfaces for external capabilities consumed by
// the usecase layer.
package service

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrTokenInvalid is returned for any token verification failure, including
// absent or malformed tokens.
var ErrTokenInvalid = errors.New("invalid authentication token")

// ErrIdentityExists is returned when an identity with the same email is
// already registered at the provider.
var ErrIdentityExists = errors.New("identity already exists")

// Principal is the authenticated identity attached to a request after
// successful token verification.
type Principal struct {
	UID   string      `json:"uid"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

// IdentityUser is the provider-side account record.
type IdentityUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhoneNumber string `json:"phoneNumber"`
	Disabled    bool   `json:"disabled"`
}

// CreateIdentityParams carries the fields for a new provider account.
type CreateIdentityParams struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// IdentityService wraps the external identity provider. There is no local
// caching of tokens or claims; every call round-trips to the provider.
type IdentityService interface {
	// VerifyToken strips a "Bearer " prefix, verifies signature and expiry
	// with the provider, and reads the role custom claim. Any failure maps
	// to ErrTokenInvalid.
	VerifyToken(ctx context.Context, authorizationHeader string) (*Principal, error)

	// GetUser fetches the provider account for a UID.
	GetUser(ctx context.Context, uid string) (*IdentityUser, error)

	// CreateUser registers a new provider account.
	CreateUser(ctx context.Context, params CreateIdentityParams) (*IdentityUser, error)

	// GenerateCustomToken mints a provider custom token for the UID with the
	// role embedded as a claim.
	GenerateCustomToken(ctx context.Context, uid string, role entity.Role) (string, error)

	// SetUserRole stores the role as a custom claim on the provider account.
	SetUserRole(ctx context.Context, uid string, role entity.Role) error
}
