package backend

import (
	"github.com/enset/dashboard/internal/domain"
)

// CreateOrderRequest is the body of POST /orders
type CreateOrderRequest struct {
	CustomerName  string                `json:"customerName"`
	CustomerEmail string                `json:"customerEmail"`
	TotalAmount   float64               `json:"totalAmount"`
	Items         []domain.CartLineItem `json:"items"`
}
