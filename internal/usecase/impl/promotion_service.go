package impl

import (
	"context"
	"fmt"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type promotionService struct {
	promotionRepo repository.PromotionRepository
	qrcode        service.QRCodeService
	now           func() time.Time
}

// NewPromotionService creates a new promotion service instance
func NewPromotionService(
	promotionRepo repository.PromotionRepository,
	qrcode service.QRCodeService,
) usecase.PromotionUsecase {
	return &promotionService{
		promotionRepo: promotionRepo,
		qrcode:        qrcode,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *promotionService) Create(ctx context.Context, input *usecase.CreatePromotionInput) (*entity.Promotion, error) {
	if input.ValidTo.Before(input.ValidFrom) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("validTo precedes validFrom")
	}

	promotion := &entity.Promotion{
		Name:        input.Name,
		Description: input.Description,
		Code:        input.Code,
		Value:       input.Value,
		ValidFrom:   input.ValidFrom,
		ValidTo:     input.ValidTo,
		ProductIDs:  input.ProductIDs,
	}

	if _, err := s.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}

	return promotion, nil
}

func (s *promotionService) GetByID(ctx context.Context, id string) (*entity.Promotion, error) {
	promotion, err := s.promotionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrPromotionNotFound
		}

		return nil, fmt.Errorf("failed to find promotion by ID: %w", err)
	}

	return promotion, nil
}

func (s *promotionService) List(ctx context.Context, filter usecase.PromotionListFilter) ([]*entity.Promotion, error) {
	query := repository.ListQuery{Limit: filter.Limit}
	if filter.Code != "" {
		query = query.WithFilter("code", filter.Code)
	}

	promotions, err := s.promotionRepo.FindAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}

	if filter.AvailableOnly {
		now := s.now()
		available := make([]*entity.Promotion, 0, len(promotions))
		for _, promotion := range promotions {
			if promotion.AvailableAt(now) {
				available = append(available, promotion)
			}
		}
		promotions = available
	}

	return promotions, nil
}

func (s *promotionService) Update(ctx context.Context, id string, input *usecase.UpdatePromotionInput) (*entity.Promotion, error) {
	if _, err := s.promotionRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrPromotionNotFound
		}

		return nil, fmt.Errorf("failed to find promotion by ID: %w", err)
	}

	fields := make(map[string]any)
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Code != nil {
		fields["code"] = *input.Code
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

	if err := s.promotionRepo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("failed to update promotion: %w", err)
	}

	updated, err := s.promotionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find promotion by ID: %w", err)
	}

	return updated, nil
}

func (s *promotionService) Delete(ctx context.Context, id string) error {
	if _, err := s.promotionRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrPromotionNotFound
		}

		return fmt.Errorf("failed to find promotion by ID: %w", err)
	}

	if err := s.promotionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete promotion: %w", err)
	}

	return nil
}

func (s *promotionService) GenerateQR(ctx context.Context, id string) ([]byte, error) {
	if _, err := s.promotionRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrPromotionNotFound
		}

		return nil, fmt.Errorf("failed to find promotion by ID: %w", err)
	}

	png, err := s.qrcode.GeneratePromotionQR(id)
	if err != nil {
		return nil, fmt.Errorf("failed to generate promotion QR code: %w", err)
	}

	return png, nil
}
