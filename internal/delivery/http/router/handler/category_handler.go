package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
}

// CategoryHandler holds dependencies for category handlers
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{categoryUC: params.CategoryUC}
}

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Name             string `json:"name" validate:"required"`
	ParentCategoryID string `json:"parentCategoryId"`
}

// UpdateCategoryRequest represents a partial category update
type UpdateCategoryRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1"`
	ParentCategoryID *string `json:"parentCategoryId"`
}

// Create handles category creation
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	category, err := h.categoryUC.Create(c.Request().Context(), &usecase.CreateCategoryInput{
		Name:             req.Name,
		ParentCategoryID: req.ParentCategoryID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

// Get handles retrieving a single category
func (h *CategoryHandler) Get(c echo.Context) error {
	category, err := h.categoryUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// List handles listing categories
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryUC.List(c.Request().Context(), usecase.CategoryListFilter{
		ParentCategoryID: c.QueryParam("parentCategoryId"),
		Limit:            intQuery(c, "limit"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

// Update handles partial category updates
func (h *CategoryHandler) Update(c echo.Context) error {
	var req UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	category, err := h.categoryUC.Update(c.Request().Context(), c.Param("id"), &usecase.UpdateCategoryInput{
		Name:             req.Name,
		ParentCategoryID: req.ParentCategoryID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

// Delete handles category removal
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.categoryUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")})
}
