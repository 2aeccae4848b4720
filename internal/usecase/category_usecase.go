package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CreateCategoryInput carries the fields for a new category.
type CreateCategoryInput struct {
	Name             string
	ParentCategoryID string
}

// UpdateCategoryInput carries a partial update; nil fields are left unchanged.
type UpdateCategoryInput struct {
	Name             *string
	ParentCategoryID *string
}

// CategoryListFilter narrows a category listing.
type CategoryListFilter struct {
	ParentCategoryID string
	Limit            int
}

// CategoryUsecase defines the category management use cases.
type CategoryUsecase interface {
	Create(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context, filter CategoryListFilter) ([]*entity.Category, error)
	Update(ctx context.Context, id string, input *UpdateCategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
