package handler

import (
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

func newTestContext(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, "/health")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	t.Run("owner passes", func(t *testing.T) {
		c, _ := newTestContext(t, "/users/uid-1")
		deliverycontext.SetPrincipal(c, &service.Principal{UID: "uid-1", Role: entity.RoleCustomer})

		assert.NoError(t, requireOwnerOrAdmin(c, "uid-1"))
	})

	t.Run("admin passes for any owner", func(t *testing.T) {
		c, _ := newTestContext(t, "/users/uid-1")
		deliverycontext.SetPrincipal(c, &service.Principal{UID: "admin-1", Role: entity.RoleAdmin})

		assert.NoError(t, requireOwnerOrAdmin(c, "uid-1"))
	})

	t.Run("other customer is forbidden", func(t *testing.T) {
		c, _ := newTestContext(t, "/users/uid-1")
		deliverycontext.SetPrincipal(c, &service.Principal{UID: "uid-2", Role: entity.RoleCustomer})

		assert.ErrorIs(t, requireOwnerOrAdmin(c, "uid-1"), domainerrors.ErrForbidden)
	})

	t.Run("missing principal is unauthenticated", func(t *testing.T) {
		c, _ := newTestContext(t, "/users/uid-1")

		assert.ErrorIs(t, requireOwnerOrAdmin(c, "uid-1"), domainerrors.ErrUnauthenticated)
	})
}

func TestQueryHelpers(t *testing.T) {
	c, _ := newTestContext(t, "/products?populate=true&limit=25&bogus=x")

	assert.True(t, boolQuery(c, "populate"))
	assert.False(t, boolQuery(c, "bogus"))
	assert.False(t, boolQuery(c, "absent"))
	assert.Equal(t, 25, intQuery(c, "limit"))
	assert.Equal(t, 0, intQuery(c, "absent"))
}
