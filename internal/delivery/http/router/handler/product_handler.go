package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler holds dependencies for product handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Unit        string   `json:"unit" validate:"required"`
	CategoryID  string   `json:"categoryId" validate:"required"`
	DiscountIDs []string `json:"discountIds"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Unit        *string  `json:"unit" validate:"omitempty,min=1"`
	CategoryID  *string  `json:"categoryId" validate:"omitempty,min=1"`
	DiscountIDs []string `json:"discountIds"`
}

// Create handles product creation
func (h *ProductHandler) Create(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	product, err := h.productUC.Create(c.Request().Context(), &usecase.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Unit:        req.Unit,
		CategoryID:  req.CategoryID,
		DiscountIDs: req.DiscountIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// Get handles retrieving a single product
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productUC.GetByID(c.Request().Context(), c.Param("id"), boolQuery(c, "populate"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// List handles listing products with optional filters
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productUC.List(c.Request().Context(), usecase.ProductListFilter{
		CategoryID: c.QueryParam("categoryId"),
		Unit:       c.QueryParam("unit"),
		Limit:      intQuery(c, "limit"),
		Populate:   boolQuery(c, "populate"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// Update handles partial product updates
func (h *ProductHandler) Update(c echo.Context) error {
	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	product, err := h.productUC.Update(c.Request().Context(), c.Param("id"), &usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Unit:        req.Unit,
		CategoryID:  req.CategoryID,
		DiscountIDs: req.DiscountIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// Delete handles product removal
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")})
}

// UploadImage stores the product image sent as multipart field "image"
func (h *ProductHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing image file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable image file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if err := h.productUC.UploadImage(c.Request().Context(), c.Param("id"), contentType, file); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")})
}

// GetImage streams the stored product image
func (h *ProductHandler) GetImage(c echo.Context) error {
	reader, contentType, err := h.productUC.GetImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer reader.Close()

	return c.Stream(http.StatusOK, contentType, reader)
}
