package impl

import (
	"context"
	"fmt"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service instance
func NewCategoryService(categoryRepo repository.CategoryRepository) usecase.CategoryUsecase {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) Create(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	if input.ParentCategoryID != "" {
		if _, err := s.categoryRepo.FindByID(ctx, input.ParentCategoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, domainerrors.ErrCategoryNotFound.WithDetails("parent category does not exist")
			}

			return nil, fmt.Errorf("failed to find parent category: %w", err)
		}
	}

	category := &entity.Category{
		Name:             input.Name,
		ParentCategoryID: input.ParentCategoryID,
	}

	if _, err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *categoryService) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}

	return category, nil
}

func (s *categoryService) List(ctx context.Context, filter usecase.CategoryListFilter) ([]*entity.Category, error) {
	query := repository.ListQuery{Limit: filter.Limit}
	if filter.ParentCategoryID != "" {
		query = query.WithFilter("parentCategoryId", filter.ParentCategoryID)
	}

	categories, err := s.categoryRepo.FindAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

func (s *categoryService) Update(ctx context.Context, id string, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}

	fields := make(map[string]any)
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.ParentCategoryID != nil {
		fields["parentCategoryId"] = *input.ParentCategoryID
	}

	if err := s.categoryRepo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	updated, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}

	return updated, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return fmt.Errorf("failed to find category by ID: %w", err)
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
