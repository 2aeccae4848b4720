package handler

import (
	"net/http"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PromotionHandlerParams holds dependencies for PromotionHandler, injected by Fx.
type PromotionHandlerParams struct {
	fx.In

	PromotionUC usecase.PromotionUsecase
}

// PromotionHandler holds dependencies for promotion handlers
type PromotionHandler struct {
	promotionUC usecase.PromotionUsecase
}

// NewPromotionHandler is the constructor for PromotionHandler
func NewPromotionHandler(params PromotionHandlerParams) *PromotionHandler {
	return &PromotionHandler{promotionUC: params.PromotionUC}
}

// CreatePromotionRequest represents the request body for creating a promotion
type CreatePromotionRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Code        string    `json:"code" validate:"required"`
	Value       float64   `json:"value" validate:"required,gt=0"`
	ValidFrom   time.Time `json:"validFrom" validate:"required"`
	ValidTo     time.Time `json:"validTo" validate:"required"`
	ProductIDs  []string  `json:"productIds"`
}

// UpdatePromotionRequest represents a partial promotion update
type UpdatePromotionRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Code        *string    `json:"code" validate:"omitempty,min=1"`
	Value       *float64   `json:"value" validate:"omitempty,gt=0"`
	ValidFrom   *time.Time `json:"validFrom"`
	ValidTo     *time.Time `json:"validTo"`
	ProductIDs  []string   `json:"productIds"`
}

// Create handles promotion creation
func (h *PromotionHandler) Create(c echo.Context) error {
	var req CreatePromotionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	promotion, err := h.promotionUC.Create(c.Request().Context(), &usecase.CreatePromotionInput{
		Name:        req.Name,
		Description: req.Description,
		Code:        req.Code,
		Value:       req.Value,
		ValidFrom:   req.ValidFrom,
		ValidTo:     req.ValidTo,
		ProductIDs:  req.ProductIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, promotion)
}

// Get handles retrieving a single promotion
func (h *PromotionHandler) Get(c echo.Context) error {
	promotion, err := h.promotionUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, promotion)
}

// List handles listing promotions with optional filters
func (h *PromotionHandler) List(c echo.Context) error {
	promotions, err := h.promotionUC.List(c.Request().Context(), usecase.PromotionListFilter{
		Code:          c.QueryParam("code"),
		AvailableOnly: availableOnlyQuery(c),
		Limit:         intQuery(c, "limit"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, promotions)
}

// Update handles partial promotion updates
func (h *PromotionHandler) Update(c echo.Context) error {
	var req UpdatePromotionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	promotion, err := h.promotionUC.Update(c.Request().Context(), c.Param("id"), &usecase.UpdatePromotionInput{
		Name:        req.Name,
		Description: req.Description,
		Code:        req.Code,
		Value:       req.Value,
		ValidFrom:   req.ValidFrom,
		ValidTo:     req.ValidTo,
		ProductIDs:  req.ProductIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, promotion)
}

// Delete handles promotion removal
func (h *PromotionHandler) Delete(c echo.Context) error {
	if err := h.promotionUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")})
}

// GetQR returns the promotion share link rendered as a PNG QR code
func (h *PromotionHandler) GetQR(c echo.Context) error {
	png, err := h.promotionUC.GenerateQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
