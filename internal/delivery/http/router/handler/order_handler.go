package handler

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler holds dependencies for order handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// OrderLineRequest is one requested order line
type OrderLineRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	Items       []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
	DiscountID  string             `json:"discountId"`
	PromotionID string             `json:"promotionId"`
}

// UpdateOrderRequest represents a partial order update
type UpdateOrderRequest struct {
	Status      *entity.OrderStatus `json:"status" validate:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	DiscountID  *string             `json:"discountId"`
	PromotionID *string             `json:"promotionId"`
}

// Create places an order for the authenticated user
func (h *OrderHandler) Create(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	items := make([]usecase.OrderLineInput, len(req.Items))
	for i, line := range req.Items {
		items[i] = usecase.OrderLineInput{ProductID: line.ProductID, Quantity: line.Quantity}
	}

	order, err := h.orderUC.Create(c.Request().Context(), principal.UID, &usecase.CreateOrderInput{
		Items:       items,
		DiscountID:  req.DiscountID,
		PromotionID: req.PromotionID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// Get retrieves one order; customers can only read their own
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orderUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := requireOwnerOrAdmin(c, order.UserID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, order)
}

// List retrieves orders; customers are always scoped to their own
func (h *OrderHandler) List(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return domainerrors.ErrUnauthenticated
	}

	filter := usecase.OrderListFilter{
		UserID: c.QueryParam("userId"),
		Status: entity.OrderStatus(c.QueryParam("status")),
		Limit:  intQuery(c, "limit"),
	}
	if principal.Role != entity.RoleAdmin {
		filter.UserID = principal.UID
	}

	orders, err := h.orderUC.List(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// Update handles partial order updates
func (h *OrderHandler) Update(c echo.Context) error {
	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	order, err := h.orderUC.Update(c.Request().Context(), c.Param("id"), &usecase.UpdateOrderInput{
		Status:      req.Status,
		DiscountID:  req.DiscountID,
		PromotionID: req.PromotionID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Delete handles order removal
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.orderUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")})
}
