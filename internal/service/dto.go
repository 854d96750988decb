package service

import (
	"time"

	"github.com/enset/dashboard/internal/domain"
)

// OrdersPageSize is the fixed number of rows per order list page
const OrdersPageSize = 10

// StatusFilterAll disables the status filter
const StatusFilterAll = "all"

// OrderQuery describes a derived view over the cached order list
type OrderQuery struct {
	Search string `form:"q"`
	Status string `form:"status"`
	Page   int    `form:"page"`
}

// OrderPage is one page of the filtered order list
type OrderPage struct {
	Orders       []domain.Order `json:"orders"`
	Search       string         `json:"q"`
	Status       string         `json:"status"`
	Page         int            `json:"page"`
	PageSize     int            `json:"page_size"`
	TotalPages   int            `json:"total_pages"`
	TotalMatches int            `json:"total_matches"`
	HasPrev      bool           `json:"has_prev"`
	HasNext      bool           `json:"has_next"`
}

// StatusAction is one entry of the admin status control for an order
type StatusAction struct {
	Status   domain.OrderStatus `json:"status"`
	Disabled bool               `json:"disabled"`
}

// ProductView is a catalog row with its stock classification
type ProductView struct {
	domain.Product
	StockLevel domain.StockLevel `json:"stock_level"`
	CanAdd     bool              `json:"can_add"`
}

// Stats are the dashboard summary figures
type Stats struct {
	TotalProducts int     `json:"total_products"`
	TotalOrders   int     `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	PendingOrders int     `json:"pending_orders"`
}

// DailyRevenue is the revenue of all orders created on one UTC day
type DailyRevenue struct {
	Day     time.Time `json:"day"`
	Revenue float64   `json:"revenue"`
	Orders  int       `json:"orders"`
}
