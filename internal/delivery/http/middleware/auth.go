package middleware

import (
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates requests against the identity provider and
// enforces the role policy declared in the route table.
type AuthMiddleware struct {
	identity service.IdentityService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityService) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Authenticate verifies the bearer token with the identity provider and
// stores the resulting principal in the request context. Every verification
// failure, including a missing header, yields 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, err := m.identity.VerifyToken(
			c.Request().Context(),
			c.Request().Header.Get(echo.HeaderAuthorization),
		)
		if err != nil {
			return domainerrors.ErrUnauthenticated
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// Require is the single authorization gate: it passes when the
// authenticated principal holds one of the allowed roles. An empty role
// list means any authenticated principal passes.
func (m *AuthMiddleware) Require(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := deliverycontext.GetPrincipal(c)
			if principal == nil {
				return domainerrors.ErrUnauthenticated
			}

			if len(allowed) > 0 && !allowed.Contains(principal.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
