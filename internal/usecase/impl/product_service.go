package impl

import (
	"context"
	"fmt"
	"io"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type productService struct {
	productRepo  repository.ProductRepository
	discountRepo repository.DiscountRepository
	images       service.ImageStorage
}

// NewProductService creates a new product service instance. images may be
// nil when no image bucket is configured; image operations then report the
// feature as unavailable.
func NewProductService(
	productRepo repository.ProductRepository,
	discountRepo repository.DiscountRepository,
	images service.ImageStorage,
) usecase.ProductUsecase {
	return &productService{
		productRepo:  productRepo,
		discountRepo: discountRepo,
		images:       images,
	}
}

func (s *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Unit:        input.Unit,
		CategoryID:  input.CategoryID,
		DiscountIDs: input.DiscountIDs,
	}

	if _, err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *productService) GetByID(ctx context.Context, id string, populate bool) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	if populate {
		if err := s.populateDiscounts(ctx, product); err != nil {
			return nil, err
		}
	}

	return product, nil
}

func (s *productService) List(ctx context.Context, filter usecase.ProductListFilter) ([]*entity.Product, error) {
	query := repository.ListQuery{Limit: filter.Limit}
	if filter.CategoryID != "" {
		query = query.WithFilter("categoryId", filter.CategoryID)
	}
	if filter.Unit != "" {
		query = query.WithFilter("unit", filter.Unit)
	}

	products, err := s.productRepo.FindAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if filter.Populate {
		for _, product := range products {
			if err := s.populateDiscounts(ctx, product); err != nil {
				return nil, err
			}
		}
	}

	return products, nil
}

func (s *productService) Update(ctx context.Context, id string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	fields := make(map[string]any)
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Unit != nil {
		fields["unit"] = *input.Unit
	}
	if input.CategoryID != nil {
		fields["categoryId"] = *input.CategoryID
	}
	if input.DiscountIDs != nil {
		fields["discountIds"] = input.DiscountIDs
	}

	if err := s.productRepo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	updated, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return updated, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return fmt.Errorf("failed to find product by ID: %w", err)
	}

	if product.ImageKey != "" && s.images != nil {
		if err := s.images.Delete(ctx, product.ImageKey); err != nil {
			return fmt.Errorf("failed to delete product image: %w", err)
		}
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (s *productService) UploadImage(ctx context.Context, id string, contentType string, r io.Reader) error {
	if s.images == nil {
		return domainerrors.ErrImageStorageDisabled
	}

	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return fmt.Errorf("failed to find product by ID: %w", err)
	}

	key := "products/" + id
	if err := s.images.Upload(ctx, key, contentType, r); err != nil {
		return fmt.Errorf("failed to upload product image: %w", err)
	}

	if err := s.productRepo.Update(ctx, id, map[string]any{"imageKey": key}); err != nil {
		return fmt.Errorf("failed to record product image key: %w", err)
	}

	return nil
}

func (s *productService) GetImage(ctx context.Context, id string) (io.ReadCloser, string, error) {
	if s.images == nil {
		return nil, "", domainerrors.ErrImageStorageDisabled
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", domainerrors.ErrProductNotFound
		}

		return nil, "", fmt.Errorf("failed to find product by ID: %w", err)
	}

	if product.ImageKey == "" {
		return nil, "", domainerrors.ErrImageNotFound
	}

	reader, contentType, err := s.images.Download(ctx, product.ImageKey)
	if errors.Is(err, service.ErrImageNotFound) {
		return nil, "", domainerrors.ErrImageNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to download product image: %w", err)
	}

	return reader, contentType, nil
}

func (s *productService) populateDiscounts(ctx context.Context, product *entity.Product) error {
	discounts, err := resolveRefs(ctx, product.DiscountIDs, s.discountRepo.FindByID)
	if err != nil {
		return fmt.Errorf("failed to resolve product discounts: %w", err)
	}

	product.Discounts = discounts

	return nil
}
