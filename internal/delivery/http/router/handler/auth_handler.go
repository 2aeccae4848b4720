package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for authentication handlers
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest represents the request body for account registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
	Address  string `json:"address"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// DevTokenRequest represents the request body for the development token route
type DevTokenRequest struct {
	UID  string      `json:"uid" validate:"required"`
	Role entity.Role `json:"role" validate:"required,oneof=customer admin"`
}

// Register handles account creation
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	out, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out)
}

// Login exchanges a provider ID token for a custom token and profile
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	out, err := h.authUC.Login(c.Request().Context(), req.IDToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// Verify validates the bearer token and echoes the principal
func (h *AuthHandler) Verify(c echo.Context) error {
	principal, err := h.authUC.Verify(
		c.Request().Context(),
		c.Request().Header.Get(echo.HeaderAuthorization),
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, principal)
}

// DevToken mints a custom token for any UID and role. The route is only
// registered when development routes are enabled in config.
func (h *AuthHandler) DevToken(c echo.Context) error {
	var req DevTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token request")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	token, err := h.authUC.DevToken(c.Request().Context(), req.UID, req.Role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token})
}
