package entity

// OrderStatus tracks an order through the fulfillment flow.
type OrderStatus string

const (
	// OrderStatusPending indicates the order was placed, awaiting confirmation.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed indicates the order was accepted.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusShipped indicates the order is out for delivery.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered indicates the customer received the order.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled indicates the order was cancelled before shipping.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// Order is a placed order. Line prices are captured at order time so later
// catalog edits do not rewrite history.
type Order struct {
	Meta
	UserID      string      `firestore:"userId" json:"userId"`
	Items       []OrderItem `firestore:"items" json:"items"`
	TotalAmount float64     `firestore:"totalAmount" json:"totalAmount"`
	Status      OrderStatus `firestore:"status" json:"status"`
	DiscountID  string      `firestore:"discountId" json:"discountId,omitempty"`
	PromotionID string      `firestore:"promotionId" json:"promotionId,omitempty"`
}

// OrderItem is a single order line.
type OrderItem struct {
	ProductID string  `firestore:"productId" json:"productId"`
	Name      string  `firestore:"name" json:"name"`
	Price     float64 `firestore:"price" json:"price"`
	Quantity  int     `firestore:"quantity" json:"quantity"`
}
