package handler

import (
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscountHandlerParams holds dependencies for DiscountHandler, injected by Fx.
type DiscountHandlerParams struct {
	fx.In

	DiscountUC usecase.DiscountUsecase
}

// DiscountHandler holds dependencies for discount handlers
type DiscountHandler struct {
	discountUC usecase.DiscountUsecase
}

// NewDiscountHandler is the constructor for DiscountHandler
func NewDiscountHandler(params DiscountHandlerParams) *DiscountHandler {
	return &DiscountHandler{discountUC: params.DiscountUC}
}

// CreateDiscountRequest represents the request body for creating a discount
type CreateDiscountRequest struct {
	Name        string              `json:"name" validate:"required"`
	Type        entity.DiscountType `json:"type" validate:"required,oneof=percentage fixed"`
	Value       float64             `json:"value" validate:"required,gt=0"`
	ValidFrom   time.Time           `json:"validFrom" validate:"required"`
	ValidTo     time.Time           `json:"validTo" validate:"required"`
	ProductIDs  []string            `json:"productIds"`
	CategoryIDs []string            `json:"categoryIds"`
}

// UpdateDiscountRequest represents a partial discount update
type UpdateDiscountRequest struct {
	Name        *string              `json:"name" validate:"omitempty,min=1"`
	Type        *entity.DiscountType `json:"type" validate:"omitempty,oneof=percentage fixed"`
	Value       *float64             `json:"value" validate:"omitempty,gt=0"`
	ValidFrom   *time.Time           `json:"validFrom"`
	ValidTo     *time.Time           `json:"validTo"`
	ProductIDs  []string             `json:"productIds"`
	CategoryIDs []string             `json:"categoryIds"`
}

// Create handles discount creation
func (h *DiscountHandler) Create(c echo.Context) error {
	var req CreateDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	discount, err := h.discountUC.Create(c.Request().Context(), &usecase.CreateDiscountInput{
		Name:        req.Name,
		Type:        req.Type,
		Value:       req.Value,
		ValidFrom:   req.ValidFrom,
		ValidTo:     req.ValidTo,
		ProductIDs:  req.ProductIDs,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, discount)
}

// Get handles retrieving a single discount
func (h *DiscountHandler) Get(c echo.Context) error {
	discount, err := h.discountUC.GetByID(c.Request().Context(), c.Param("id"), boolQuery(c, "populate"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, discount)
}

// List handles listing discounts with optional filters
func (h *DiscountHandler) List(c echo.Context) error {
	discounts, err := h.discountUC.List(c.Request().Context(), usecase.DiscountListFilter{
		Type:          entity.DiscountType(c.QueryParam("type")),
		AvailableOnly: availableOnlyQuery(c),
		Populate:      boolQuery(c, "populate"),
		Limit:         intQuery(c, "limit"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, discounts)
}

// Update handles partial discount updates
func (h *DiscountHandler) Update(c echo.Context) error {
	var req UpdateDiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	discount, err := h.discountUC.Update(c.Request().Context(), c.Param("id"), &usecase.UpdateDiscountInput{
		Name:        req.Name,
		Type:        req.Type,
		Value:       req.Value,
		ValidFrom:   req.ValidFrom,
		ValidTo:     req.ValidTo,
		ProductIDs:  req.ProductIDs,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, discount)
}

// Delete handles discount removal
func (h *DiscountHandler) Delete(c echo.Context) error {
	if err := h.discountUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")})
}
