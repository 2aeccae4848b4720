package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products/p1", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandleHTTPError_AppError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrProductNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeErrorBody(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "PRODUCT_NOT_FOUND", body.Error.Code)
	require.NotNil(t, body.Meta)
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	body := decodeErrorBody(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestHandleHTTPError_UnknownErrorHidesDetails(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("firestore connection refused"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrorBody(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "firestore")
}
