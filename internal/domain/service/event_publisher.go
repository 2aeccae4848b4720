package service

import (
	"context"
	"time"
)

// OrderEvent is published whenever an order is created or changes status.
type OrderEvent struct {
	EventType   string    `json:"event_type"` // e.g. "order.created"
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	OccurredAt  time.Time `json:"occurred_at"`
	RequestID   string    `json:"request_id,omitempty"`
}

// EventPublisher publishes order lifecycle events to downstream consumers.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error
	Close() error
}
