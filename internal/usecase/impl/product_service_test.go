package impl

import (
	"context"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo[entity.Product]
	discountRepo *mockRepo[entity.Discount]
	images       *mockImageStorage
}

func createTestProductService(t *testing.T) productServiceFixtures {
	t.Helper()

	productRepo := &mockRepo[entity.Product]{}
	discountRepo := &mockRepo[entity.Discount]{}
	images := &mockImageStorage{}
	service := NewProductService(productRepo, discountRepo, images)

	return productServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		discountRepo: discountRepo,
		images:       images,
	}
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrNotFound)

	_, err := fx.service.GetByID(ctx, "missing", false)
	require.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_GetByID_PopulateSkipsDanglingRefs(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := testProduct("p1", 4.0)
	product.DiscountIDs = []string{"d1", "d-gone"}

	discount := &entity.Discount{Name: "Spring", Type: entity.DiscountTypePercentage, Value: 10}
	discount.ID = "d1"

	fx.productRepo.On("FindByID", mock.Anything, "p1").Return(product, nil)
	fx.discountRepo.On("FindByID", mock.Anything, "d1").Return(discount, nil)
	fx.discountRepo.On("FindByID", mock.Anything, "d-gone").Return(nil, repository.ErrNotFound)

	got, err := fx.service.GetByID(ctx, "p1", true)
	require.NoError(t, err)
	require.Len(t, got.Discounts, 1)
	assert.Equal(t, "d1", got.Discounts[0].ID)
}

func TestProductService_Update_BuildsPartialFieldSet(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := testProduct("p1", 4.0)
	fx.productRepo.On("FindByID", ctx, "p1").Return(product, nil)

	price := 5.5
	fx.productRepo.On("Update", ctx, "p1", map[string]any{"price": 5.5}).Return(nil)

	_, err := fx.service.Update(ctx, "p1", &usecase.UpdateProductInput{Price: &price})
	require.NoError(t, err)

	fx.productRepo.AssertExpectations(t)
}

func TestProductService_UploadImage_RecordsKey(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.On("FindByID", ctx, "p1").Return(testProduct("p1", 4.0), nil)
	fx.images.On("Upload", ctx, "products/p1", "image/png", mock.Anything).Return(nil)
	fx.productRepo.On("Update", ctx, "p1", map[string]any{"imageKey": "products/p1"}).Return(nil)

	err := fx.service.UploadImage(ctx, "p1", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	fx.images.AssertExpectations(t)
	fx.productRepo.AssertExpectations(t)
}

func TestProductService_GetImage_NoneUploaded(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.On("FindByID", ctx, "p1").Return(testProduct("p1", 4.0), nil)

	_, _, err := fx.service.GetImage(ctx, "p1")
	require.ErrorIs(t, err, domainerrors.ErrImageNotFound)
}

func TestProductService_ImageOperationsDisabledWithoutBucket(t *testing.T) {
	productRepo := &mockRepo[entity.Product]{}
	discountRepo := &mockRepo[entity.Discount]{}
	service := NewProductService(productRepo, discountRepo, nil)

	err := service.UploadImage(context.Background(), "p1", "image/png", strings.NewReader("x"))
	require.ErrorIs(t, err, domainerrors.ErrImageStorageDisabled)
}
