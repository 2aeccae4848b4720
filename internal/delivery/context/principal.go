package context

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/domain/service"
)

// KeyPrincipal is the key for storing the authenticated principal in
// echo.Context.
const KeyPrincipal ContextKey = "principal"

// GetPrincipal extracts the authenticated principal from echo.Context.
// Returns nil when the request was not authenticated.
func GetPrincipal(c echo.Context) *service.Principal {
	if p, ok := c.Get(string(KeyPrincipal)).(*service.Principal); ok {
		return p
	}

	return nil
}

// SetPrincipal stores the authenticated principal in echo.Context.
func SetPrincipal(c echo.Context, p *service.Principal) {
	c.Set(string(KeyPrincipal), p)
}
