package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
}

// InventoryHandler holds dependencies for stock handlers
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
}

// NewInventoryHandler is the constructor for InventoryHandler
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{inventoryUC: params.InventoryUC}
}

// CreateInventoryRequest represents the request body for creating a stock record
type CreateInventoryRequest struct {
	ProductID string `json:"productId" validate:"required"`
	StoreID   string `json:"storeId" validate:"required"`
	Stock     int    `json:"stock" validate:"gte=0"`
}

// UpdateInventoryRequest represents a partial stock update
type UpdateInventoryRequest struct {
	Stock *int `json:"stock" validate:"omitempty,gte=0"`
}

// Create handles stock record creation
func (h *InventoryHandler) Create(c echo.Context) error {
	var req CreateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	inventory, err := h.inventoryUC.Create(c.Request().Context(), &usecase.CreateInventoryInput{
		ProductID: req.ProductID,
		StoreID:   req.StoreID,
		Stock:     req.Stock,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, inventory)
}

// Get handles retrieving a single stock record
func (h *InventoryHandler) Get(c echo.Context) error {
	inventory, err := h.inventoryUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, inventory)
}

// List handles listing stock records with optional filters
func (h *InventoryHandler) List(c echo.Context) error {
	records, err := h.inventoryUC.List(c.Request().Context(), usecase.InventoryListFilter{
		ProductID: c.QueryParam("productId"),
		StoreID:   c.QueryParam("storeId"),
		Limit:     intQuery(c, "limit"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records)
}

// Update handles partial stock updates
func (h *InventoryHandler) Update(c echo.Context) error {
	var req UpdateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	inventory, err := h.inventoryUC.Update(c.Request().Context(), c.Param("id"), &usecase.UpdateInventoryInput{
		Stock: req.Stock,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, inventory)
}

// Delete handles stock record removal
func (h *InventoryHandler) Delete(c echo.Context) error {
	if err := h.inventoryUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")})
}
