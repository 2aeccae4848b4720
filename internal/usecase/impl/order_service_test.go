package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	orderRepo   *mockRepo[entity.Order]
	productRepo *mockRepo[entity.Product]
	publisher   *mockPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	t.Helper()

	orderRepo := &mockRepo[entity.Order]{}
	productRepo := &mockRepo[entity.Product]{}
	publisher := &mockPublisher{}
	service := NewOrderService(orderRepo, productRepo, publisher, newDiscardLogger())

	return orderServiceFixtures{
		service:     service,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

func testProduct(id string, price float64) *entity.Product {
	product := &entity.Product{Name: "Product " + id, Price: price, Unit: "kg"}
	product.ID = id

	return product
}

func TestOrderService_Create_CapturesCatalogPrices(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.productRepo.On("FindByID", mock.Anything, "p1").Return(testProduct("p1", 2.5), nil)
	fx.productRepo.On("FindByID", mock.Anything, "p2").Return(testProduct("p2", 10.0), nil)
	fx.orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Order")).Return("order-1", nil)

	var published *service.OrderEvent
	fx.publisher.On("PublishOrderEvent", mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(args mock.Arguments) {
			published, _ = args.Get(1).(*service.OrderEvent)
		}).
		Return(nil)

	order, err := fx.service.Create(ctx, "u1", &usecase.CreateOrderInput{
		Items: []usecase.OrderLineInput{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "u1", order.UserID)
	assert.InDelta(t, 15.0, order.TotalAmount, 1e-9)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Product p1", order.Items[0].Name)
	assert.InDelta(t, 2.5, order.Items[0].Price, 1e-9)

	require.NotNil(t, published)
	assert.Equal(t, "order.created", published.EventType)
	assert.Equal(t, "u1", published.UserID)
	assert.InDelta(t, 15.0, published.TotalAmount, 1e-9)
}

func TestOrderService_Create_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.productRepo.On("FindByID", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	_, err := fx.service.Create(ctx, "u1", &usecase.CreateOrderInput{
		Items: []usecase.OrderLineInput{{ProductID: "ghost", Quantity: 1}},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())

	fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestOrderService_Create_EmptyOrder(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.Create(context.Background(), "u1", &usecase.CreateOrderInput{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOrderService_Create_PublishFailureDoesNotFailOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.productRepo.On("FindByID", mock.Anything, "p1").Return(testProduct("p1", 3.0), nil)
	fx.orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Order")).Return("order-1", nil)
	fx.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	order, err := fx.service.Create(ctx, "u1", &usecase.CreateOrderInput{
		Items: []usecase.OrderLineInput{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, order.TotalAmount, 1e-9)
}

func TestOrderService_Update_StatusChangePublishesEvent(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	pending := &entity.Order{UserID: "u1", Status: entity.OrderStatusPending}
	pending.ID = "order-1"
	confirmed := &entity.Order{UserID: "u1", Status: entity.OrderStatusConfirmed}
	confirmed.ID = "order-1"

	fx.orderRepo.On("FindByID", ctx, "order-1").Return(pending, nil).Once()
	fx.orderRepo.On("Update", ctx, "order-1", map[string]any{
		"status": entity.OrderStatusConfirmed,
	}).Return(nil)
	fx.orderRepo.On("FindByID", ctx, "order-1").Return(confirmed, nil).Once()

	var published *service.OrderEvent
	fx.publisher.On("PublishOrderEvent", mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(args mock.Arguments) {
			published, _ = args.Get(1).(*service.OrderEvent)
		}).
		Return(nil)

	status := entity.OrderStatusConfirmed
	order, err := fx.service.Update(ctx, "order-1", &usecase.UpdateOrderInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)

	require.NotNil(t, published)
	assert.Equal(t, "order.status_changed", published.EventType)
	assert.Equal(t, "confirmed", published.Status)
}

func TestOrderService_Update_NotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.On("FindByID", ctx, "missing").Return(nil, repository.ErrNotFound)

	status := entity.OrderStatusShipped
	_, err := fx.service.Update(ctx, "missing", &usecase.UpdateOrderInput{Status: &status})
	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
