package impl

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type discountService struct {
	discountRepo repository.DiscountRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	now          func() time.Time
}

// NewDiscountService creates a new discount service instance
func NewDiscountService(
	discountRepo repository.DiscountRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) usecase.DiscountUsecase {
	return &discountService{
		discountRepo: discountRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *discountService) Create(ctx context.Context, input *usecase.CreateDiscountInput) (*entity.Discount, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown discount type")
	}
	if input.ValidTo.Before(input.ValidFrom) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("validTo precedes validFrom")
	}

	discount := &entity.Discount{
		Name:        input.Name,
		Type:        input.Type,
		Value:       input.Value,
		ValidFrom:   input.ValidFrom,
		ValidTo:     input.ValidTo,
		ProductIDs:  input.ProductIDs,
		CategoryIDs: input.CategoryIDs,
	}

	if _, err := s.discountRepo.Create(ctx, discount); err != nil {
		return nil, fmt.Errorf("failed to create discount: %w", err)
	}

	return discount, nil
}

func (s *discountService) GetByID(ctx context.Context, id string, populate bool) (*entity.Discount, error) {
	discount, err := s.discountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrDiscountNotFound
		}

		return nil, fmt.Errorf("failed to find discount by ID: %w", err)
	}

	if populate {
		if err := s.populateRefs(ctx, discount); err != nil {
			return nil, err
		}
	}

	return discount, nil
}

// List retrieves discounts. The store only supports equality filters, so
// the validity-window check for AvailableOnly runs in memory.
func (s *discountService) List(ctx context.Context, filter usecase.DiscountListFilter) ([]*entity.Discount, error) {
	query := repository.ListQuery{Limit: filter.Limit}
	if filter.Type != "" {
		query = query.WithFilter("type", filter.Type)
	}

	discounts, err := s.discountRepo.FindAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list discounts: %w", err)
	}

	if filter.AvailableOnly {
		now := s.now()
		available := make([]*entity.Discount, 0, len(discounts))
		for _, discount := range discounts {
			if discount.AvailableAt(now) {
				available = append(available, discount)
			}
		}
		discounts = available
	}

	if filter.Populate {
		for _, discount := range discounts {
			if err := s.populateRefs(ctx, discount); err != nil {
				return nil, err
			}
		}
	}

	return discounts, nil
}

func (s *discountService) Update(ctx context.Context, id string, input *usecase.UpdateDiscountInput) (*entity.Discount, error) {
	if _, err := s.discountRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrDiscountNotFound
		}

		return nil, fmt.Errorf("failed to find discount by ID: %w", err)
	}

	fields := make(map[string]any)
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown discount type")
		}
		fields["type"] = *input.Type
	}
	if input.Value != nil {
		fields["value"] = *input.Value
	}
	if input.ValidFrom != nil {
		fields["validFrom"] = *input.ValidFrom
	}
	if input.ValidTo != nil {
		fields["validTo"] = *input.ValidTo
	}
	if input.ProductIDs != nil {
		fields["productIds"] = input.ProductIDs
	}
	if input.CategoryIDs != nil {
		fields["categoryIds"] = input.CategoryIDs
	}

	if err := s.discountRepo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("failed to update discount: %w", err)
	}

	updated, err := s.discountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find discount by ID: %w", err)
	}

	return updated, nil
}

func (s *discountService) Delete(ctx context.Context, id string) error {
	if _, err := s.discountRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrDiscountNotFound
		}

		return fmt.Errorf("failed to find discount by ID: %w", err)
	}

	if err := s.discountRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete discount: %w", err)
	}

	return nil
}

func (s *discountService) populateRefs(ctx context.Context, discount *entity.Discount) error {
	products, err := resolveRefs(ctx, discount.ProductIDs, s.productRepo.FindByID)
	if err != nil {
		return fmt.Errorf("failed to resolve discount products: %w", err)
	}

	categories, err := resolveRefs(ctx, discount.CategoryIDs, s.categoryRepo.FindByID)
	if err != nil {
		return fmt.Errorf("failed to resolve discount categories: %w", err)
	}

	discount.Products = products
	discount.Categories = categories

	return nil
}
