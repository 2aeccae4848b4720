package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubIdentity verifies any token equal to its configured value.
type stubIdentity struct {
	token     string
	principal *service.Principal
}

func (s *stubIdentity) VerifyToken(_ context.Context, header string) (*service.Principal, error) {
	if header == "Bearer "+s.token {
		return s.principal, nil
	}

	return nil, service.ErrTokenInvalid
}

func (s *stubIdentity) GetUser(context.Context, string) (*service.IdentityUser, error) {
	return nil, service.ErrTokenInvalid
}

func (s *stubIdentity) CreateUser(context.Context, service.CreateIdentityParams) (*service.IdentityUser, error) {
	return nil, service.ErrTokenInvalid
}

func (s *stubIdentity) GenerateCustomToken(context.Context, string, entity.Role) (string, error) {
	return "", service.ErrTokenInvalid
}

func (s *stubIdentity) SetUserRole(context.Context, string, entity.Role) error {
	return nil
}

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	m := NewAuthMiddleware(&stubIdentity{token: "good"})
	c, _ := newAuthTestContext(t, "")

	err := m.Authenticate(okHandler)(c)
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&stubIdentity{token: "good"})
	c, _ := newAuthTestContext(t, "Bearer forged")

	err := m.Authenticate(okHandler)(c)
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthenticate_StoresPrincipal(t *testing.T) {
	principal := &service.Principal{UID: "uid-1", Role: entity.RoleCustomer}
	m := NewAuthMiddleware(&stubIdentity{token: "good", principal: principal})
	c, _ := newAuthTestContext(t, "Bearer good")

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, principal, deliverycontext.GetPrincipal(c))
}

func TestRequire_RoleMismatch(t *testing.T) {
	m := NewAuthMiddleware(&stubIdentity{})
	c, _ := newAuthTestContext(t, "")
	deliverycontext.SetPrincipal(c, &service.Principal{UID: "uid-1", Role: entity.RoleCustomer})

	err := m.Require(entity.RoleAdmin)(okHandler)(c)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRequire_AnyAuthenticated(t *testing.T) {
	m := NewAuthMiddleware(&stubIdentity{})
	c, _ := newAuthTestContext(t, "")
	deliverycontext.SetPrincipal(c, &service.Principal{UID: "uid-1", Role: entity.RoleCustomer})

	err := m.Require()(okHandler)(c)
	require.NoError(t, err)
}

func TestRequire_NoPrincipal(t *testing.T) {
	m := NewAuthMiddleware(&stubIdentity{})
	c, _ := newAuthTestContext(t, "")

	err := m.Require(entity.RoleAdmin)(okHandler)(c)
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
