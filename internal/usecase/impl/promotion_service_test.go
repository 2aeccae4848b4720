package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPromotionService_GenerateQR_ChecksExistenceFirst(t *testing.T) {
	promotionRepo := &mockRepo[entity.Promotion]{}
	qr := &mockQRCode{}
	svc := NewPromotionService(promotionRepo, qr)
	ctx := context.Background()

	promotion := &entity.Promotion{Name: "Launch", Code: "LAUNCH10", Value: 10}
	promotion.ID = "promo-1"

	promotionRepo.On("FindByID", ctx, "promo-1").Return(promotion, nil)
	qr.On("GeneratePromotionQR", "promo-1").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := svc.GenerateQR(ctx, "promo-1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestPromotionService_GenerateQR_NotFound(t *testing.T) {
	promotionRepo := &mockRepo[entity.Promotion]{}
	qr := &mockQRCode{}
	svc := NewPromotionService(promotionRepo, qr)
	ctx := context.Background()

	promotionRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrNotFound)

	_, err := svc.GenerateQR(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrPromotionNotFound)

	qr.AssertNotCalled(t, "GeneratePromotionQR", mock.Anything)
}

func TestPromotionService_List_AvailableOnly(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	promotionRepo := &mockRepo[entity.Promotion]{}
	svc := &promotionService{
		promotionRepo: promotionRepo,
		qrcode:        &mockQRCode{},
		now:           func() time.Time { return now },
	}

	live := &entity.Promotion{Name: "Live", ValidFrom: now.Add(-time.Hour), ValidTo: now.Add(time.Hour)}
	live.ID = "live"
	over := &entity.Promotion{Name: "Over", ValidFrom: now.Add(-3 * time.Hour), ValidTo: now.Add(-2 * time.Hour)}
	over.ID = "over"

	promotionRepo.On("FindAll", context.Background(), repository.ListQuery{}).
		Return([]*entity.Promotion{live, over}, nil)

	got, err := svc.List(context.Background(), usecase.PromotionListFilter{AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "live", got[0].ID)
}
