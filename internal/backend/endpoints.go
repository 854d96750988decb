package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/enset/dashboard/internal/domain"
)

const (
	productsPath    = "/products"
	ordersPath      = "/orders"
	orderStatusPath = "/orders/%d/status"
)

// ListProducts fetches the full product catalog
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.Do(ctx, http.MethodGet, productsPath, nil, nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// ListOrders fetches every order visible to the caller. Which orders are
// visible is decided server-side from the token's roles.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.Do(ctx, http.MethodGet, ordersPath, nil, nil, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// CreateOrder submits a new order and returns it with its assigned ID
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	var order domain.Order
	if err := c.Do(ctx, http.MethodPost, ordersPath, nil, req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus requests a status change for an order
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	query := url.Values{}
	query.Set("status", string(status))

	var order domain.Order
	if err := c.Do(ctx, http.MethodPatch, fmt.Sprintf(orderStatusPath, orderID), query, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
