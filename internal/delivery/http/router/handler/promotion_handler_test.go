package handler

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPromotionUC captures the filter handed to List.
type recordingPromotionUC struct {
	filter usecase.PromotionListFilter
}

func (u *recordingPromotionUC) Create(context.Context, *usecase.CreatePromotionInput) (*entity.Promotion, error) {
	return nil, nil
}

func (u *recordingPromotionUC) GetByID(context.Context, string) (*entity.Promotion, error) {
	return nil, nil
}

func (u *recordingPromotionUC) List(_ context.Context, filter usecase.PromotionListFilter) ([]*entity.Promotion, error) {
	u.filter = filter

	return nil, nil
}

func (u *recordingPromotionUC) Update(context.Context, string, *usecase.UpdatePromotionInput) (*entity.Promotion, error) {
	return nil, nil
}

func (u *recordingPromotionUC) Delete(context.Context, string) error {
	return nil
}

func (u *recordingPromotionUC) GenerateQR(context.Context, string) ([]byte, error) {
	return nil, nil
}

func TestPromotionList_FilterMapping(t *testing.T) {
	t.Run("availableOnly flag reaches the filter", func(t *testing.T) {
		uc := &recordingPromotionUC{}
		h := NewPromotionHandler(PromotionHandlerParams{PromotionUC: uc})
		c, _ := newTestContext(t, "/promotions?availableOnly=true")

		require.NoError(t, h.List(c))
		assert.True(t, uc.filter.AvailableOnly)
	})

	t.Run("flag absent means no window filter", func(t *testing.T) {
		uc := &recordingPromotionUC{}
		h := NewPromotionHandler(PromotionHandlerParams{PromotionUC: uc})
		c, _ := newTestContext(t, "/promotions?code=SUMMER")

		require.NoError(t, h.List(c))
		assert.False(t, uc.filter.AvailableOnly)
		assert.Equal(t, "SUMMER", uc.filter.Code)
	})
}
