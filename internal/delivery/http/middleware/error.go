// Package middleware contains the HTTP delivery's echo middleware.
package middleware

import (
	"log/slog"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware shapes every error leaving the HTTP pipeline into the
// uniform error envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Coded domain
// errors keep their status and code; echo's own errors (404 routes, 405
// methods) pass through under HTTP_ERROR; everything else is logged and
// collapsed to a generic 500 so internals never reach the client.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	req := c.Request()
	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
