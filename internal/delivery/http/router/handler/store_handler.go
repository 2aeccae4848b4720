package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
}

// StoreHandler holds dependencies for store handlers
type StoreHandler struct {
	storeUC usecase.StoreUsecase
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{storeUC: params.StoreUC}
}

// CreateStoreRequest represents the request body for creating a store
type CreateStoreRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// UpdateStoreRequest represents a partial store update
type UpdateStoreRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Location *string `json:"location" validate:"omitempty,min=1"`
}

// Create handles store creation
func (h *StoreHandler) Create(c echo.Context) error {
	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	store, err := h.storeUC.Create(c.Request().Context(), &usecase.CreateStoreInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, store)
}

// Get handles retrieving a single store, optionally with its inventory
func (h *StoreHandler) Get(c echo.Context) error {
	store, err := h.storeUC.GetByID(c.Request().Context(), c.Param("id"), boolQuery(c, "populate"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}

// List handles listing stores
func (h *StoreHandler) List(c echo.Context) error {
	stores, err := h.storeUC.List(c.Request().Context(), usecase.StoreListFilter{
		Location: c.QueryParam("location"),
		Limit:    intQuery(c, "limit"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stores)
}

// Update handles partial store updates
func (h *StoreHandler) Update(c echo.Context) error {
	var req UpdateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	store, err := h.storeUC.Update(c.Request().Context(), c.Param("id"), &usecase.UpdateStoreInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}

// Delete handles store removal
func (h *StoreHandler) Delete(c echo.Context) error {
	if err := h.storeUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")})
}
