// Package handler contains the echo handlers for every resource.
package handler

import (
	"net/http"
	"strconv"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// requireOwnerOrAdmin passes when the principal is an admin or owns the
// resource identified by ownerID.
func requireOwnerOrAdmin(c echo.Context, ownerID string) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}
	if principal.Role != entity.RoleAdmin && principal.UID != ownerID {
		return domainerrors.ErrForbidden
	}

	return nil
}

// boolQuery parses an optional boolean query parameter; absent or
// malformed values read as false.
func boolQuery(c echo.Context, name string) bool {
	value, err := strconv.ParseBool(c.QueryParam(name))

	return err == nil && value
}

// availableOnlyQuery reads the validity-window filter flag. The documented
// parameter is "availableOnly"; "available" is accepted as an alias.
func availableOnlyQuery(c echo.Context) bool {
	return boolQuery(c, "availableOnly") || boolQuery(c, "available")
}

// intQuery parses an optional integer query parameter; absent or malformed
// values read as zero.
func intQuery(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}

	return value
}
