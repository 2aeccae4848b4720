package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
)

// CreatePromotionInput carries the fields for a new promotion.
type CreatePromotionInput struct {
	Name        string
	Description string
	Code        string
	Value       float64
	ValidFrom   time.Time
	ValidTo     time.Time
	ProductIDs  []string
}

// UpdatePromotionInput carries a partial update; nil fields are left unchanged.
type UpdatePromotionInput struct {
	Name        *string
	Description *string
	Code        *string
	Value       *float64
	ValidFrom   *time.Time
	ValidTo     *time.Time
	ProductIDs  []string
}

// PromotionListFilter narrows a promotion listing.
type PromotionListFilter struct {
	Code          string
	AvailableOnly bool
	Limit         int
}

// PromotionUsecase defines the promotion management use cases.
type PromotionUsecase interface {
	Create(ctx context.Context, input *CreatePromotionInput) (*entity.Promotion, error)
	GetByID(ctx context.Context, id string) (*entity.Promotion, error)
	List(ctx context.Context, filter PromotionListFilter) ([]*entity.Promotion, error)
	Update(ctx context.Context, id string, input *UpdatePromotionInput) (*entity.Promotion, error)
	Delete(ctx context.Context, id string) error

	// GenerateQR renders the promotion's share link as a PNG QR code after
	// verifying the promotion exists.
	GenerateQR(ctx context.Context, id string) ([]byte, error)
}
