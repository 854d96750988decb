package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/enset/dashboard/internal/backend"
	"github.com/enset/dashboard/internal/cart"
	"github.com/enset/dashboard/internal/domain"
	"github.com/enset/dashboard/pkg/errors"
)

// EmptyCartMessage is shown when an order is submitted with no lines
const EmptyCartMessage = "Please select at least one product"

type orderService struct {
	client *backend.Client
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(client *backend.Client, logger *zap.Logger) *orderService {
	return &orderService{
		client: client,
		logger: logger,
	}
}

// ListOrders fetches every order visible to the current user
func (s *orderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.client.ListOrders(ctx)
	if err != nil {
		s.logger.Error("Failed to load orders", zap.Error(err))
		return nil, err
	}
	s.logger.Debug("Loaded orders", zap.Int("count", len(orders)))
	return orders, nil
}

// CreateOrderFromCart submits the cart as a new order. An empty cart fails
// locally with ErrValidation and nothing is sent. The cart is not modified.
func (s *orderService) CreateOrderFromCart(
	ctx context.Context,
	customer domain.Customer,
	c *cart.Cart,
) (*domain.Order, error) {
	if c.IsEmpty() {
		return nil, &errors.ErrValidation{Message: EmptyCartMessage}
	}

	req := backend.CreateOrderRequest{
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		TotalAmount:   c.Total(),
		Items:         c.Items(),
	}

	order, err := s.client.CreateOrder(ctx, req)
	if err != nil {
		s.logger.Error("Failed to create order",
			zap.Int("lines", len(req.Items)),
			zap.Float64("total", req.TotalAmount),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Float64("total", req.TotalAmount),
	)
	return order, nil
}

// UpdateStatus requests a status change. Any admin target is accepted
// regardless of the order's current status.
func (s *orderService) UpdateStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	if !status.IsAdminTarget() {
		return nil, &errors.ErrValidation{Message: fmt.Sprintf("invalid target status %q", status)}
	}

	order, err := s.client.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		s.logger.Error("Failed to update order status",
			zap.Int64("order_id", orderID),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Order status updated",
		zap.Int64("order_id", orderID),
		zap.String("status", string(status)),
	)
	return order, nil
}
