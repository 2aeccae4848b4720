package handler

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// UserHandler holds dependencies for profile, cart and wishlist handlers
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUC: params.UserUC}
}

// UpdateUserRequest represents a partial profile update
type UpdateUserRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Phone   *string `json:"phone" validate:"omitempty,e164"`
	Address *string `json:"address"`
}

// CartItemRequest represents the request body for adding a cart line
type CartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// WishlistItemRequest represents the request body for adding a wishlist entry
type WishlistItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// GetProfile returns the authenticated caller's own profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}

	user, err := h.userUC.GetByID(c.Request().Context(), principal.UID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// Get retrieves one profile; customers can only read their own
func (h *UserHandler) Get(c echo.Context) error {
	if err := requireOwnerOrAdmin(c, c.Param("id")); err != nil {
		return err
	}

	user, err := h.userUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// List retrieves profiles with optional filters
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userUC.List(c.Request().Context(), usecase.UserListFilter{
		Role:  entity.Role(c.QueryParam("role")),
		Email: c.QueryParam("email"),
		Limit: intQuery(c, "limit"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// Update handles partial profile updates; customers can only edit their own
func (h *UserHandler) Update(c echo.Context) error {
	if err := requireOwnerOrAdmin(c, c.Param("id")); err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user, err := h.userUC.Update(c.Request().Context(), c.Param("id"), &usecase.UpdateUserInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// Delete removes a profile document
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")})
}

// AddCartItem merges a line into the user's cart
func (h *UserHandler) AddCartItem(c echo.Context) error {
	if err := requireOwnerOrAdmin(c, c.Param("id")); err != nil {
		return err
	}

	var req CartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user, err := h.userUC.AddCartItem(c.Request().Context(), c.Param("id"), req.ProductID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// RemoveCartItem drops a cart line
func (h *UserHandler) RemoveCartItem(c echo.Context) error {
	if err := requireOwnerOrAdmin(c, c.Param("id")); err != nil {
		return err
	}

	user, err := h.userUC.RemoveCartItem(c.Request().Context(), c.Param("id"), c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// AddWishlistItem adds a product to the wishlist
func (h *UserHandler) AddWishlistItem(c echo.Context) error {
	if err := requireOwnerOrAdmin(c, c.Param("id")); err != nil {
		return err
	}

	var req WishlistItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	user, err := h.userUC.AddWishlistItem(c.Request().Context(), c.Param("id"), req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// RemoveWishlistItem drops a product from the wishlist
func (h *UserHandler) RemoveWishlistItem(c echo.Context) error {
	if err := requireOwnerOrAdmin(c, c.Param("id")); err != nil {
		return err
	}

	user, err := h.userUC.RemoveWishlistItem(c.Request().Context(), c.Param("id"), c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
