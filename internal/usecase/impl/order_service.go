package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const (
	eventOrderCreated       = "order.created"
	eventOrderStatusChanged = "order.status_changed"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Create places an order, capturing each line's name and price from the
// catalog so later catalog edits do not rewrite order history.
func (s *orderService) Create(ctx context.Context, userID string, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order must contain at least one item")
	}

	items := make([]entity.OrderItem, len(input.Items))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, line := range input.Items {
		group.Go(func() error {
			product, err := s.productRepo.FindByID(groupCtx, line.ProductID)
			if errors.Is(err, repository.ErrNotFound) {
				return domainerrors.ErrProductNotFound.WithDetails(line.ProductID)
			}
			if err != nil {
				return fmt.Errorf("failed to find product by ID: %w", err)
			}

			items[i] = entity.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Price:     product.Price,
				Quantity:  line.Quantity,
			}

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	order := &entity.Order{
		UserID:      userID,
		Items:       items,
		TotalAmount: total,
		Status:      entity.OrderStatusPending,
		DiscountID:  input.DiscountID,
		PromotionID: input.PromotionID,
	}

	if _, err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.publishEvent(ctx, eventOrderCreated, order)

	return order, nil
}

func (s *orderService) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}

	return order, nil
}

func (s *orderService) List(ctx context.Context, filter usecase.OrderListFilter) ([]*entity.Order, error) {
	query := repository.ListQuery{Limit: filter.Limit}
	if filter.UserID != "" {
		query = query.WithFilter("userId", filter.UserID)
	}
	if filter.Status != "" {
		query = query.WithFilter("status", filter.Status)
	}

	orders, err := s.orderRepo.FindAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (s *orderService) Update(ctx context.Context, id string, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	current, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}

	fields := make(map[string]any)
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status")
		}
		fields["status"] = *input.Status
	}
	if input.DiscountID != nil {
		fields["discountId"] = *input.DiscountID
	}
	if input.PromotionID != nil {
		fields["promotionId"] = *input.PromotionID
	}

	if err := s.orderRepo.Update(ctx, id, fields); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	updated, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}

	if input.Status != nil && *input.Status != current.Status {
		s.publishEvent(ctx, eventOrderStatusChanged, updated)
	}

	return updated, nil
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	if _, err := s.orderRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return fmt.Errorf("failed to find order by ID: %w", err)
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}

// publishEvent emits an order lifecycle event. Publishing is best effort:
// a broker outage must not fail the order mutation that already committed.
func (s *orderService) publishEvent(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		EventType:   eventType,
		OrderID:     order.ID,
		UserID:      order.UserID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		OccurredAt:  time.Now().UTC(),
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		logger.Warn("failed to publish order event",
			slog.String("event_type", eventType),
			slog.String("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}
