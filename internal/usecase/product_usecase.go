// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// CreateProductInput carries the fields for a new product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Unit        string
	CategoryID  string
	DiscountIDs []string
}

// UpdateProductInput carries a partial update; nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Unit        *string
	CategoryID  *string
	DiscountIDs []string
}

// ProductListFilter narrows a product listing.
type ProductListFilter struct {
	CategoryID string
	Unit       string
	Limit      int
	Populate   bool
}

// ProductUsecase defines the product management use cases.
type ProductUsecase interface {
	// Create persists a new product and returns it with its assigned ID.
	Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// GetByID retrieves a product, optionally resolving its discount
	// references into embedded documents.
	GetByID(ctx context.Context, id string, populate bool) (*entity.Product, error)

	// List retrieves products matching the filter.
	List(ctx context.Context, filter ProductListFilter) ([]*entity.Product, error)

	// Update partially updates an existing product and returns the result.
	Update(ctx context.Context, id string, input *UpdateProductInput) (*entity.Product, error)

	// Delete removes a product after verifying it exists.
	Delete(ctx context.Context, id string) error

	// UploadImage stores the product image and records its key on the product.
	UploadImage(ctx context.Context, id string, contentType string, r io.Reader) error

	// GetImage streams the product image and its content type.
	GetImage(ctx context.Context, id string) (io.ReadCloser, string, error)
}
