package domain

// OrderStatus represents the status of a storefront order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid checks if the order status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// AdminTargets returns the statuses an admin may request for any order, in
// display order. The current status of the order is not consulted: ordering
// is enforced (or not) by the order service.
func AdminTargets() []OrderStatus {
	return []OrderStatus{
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// IsAdminTarget reports whether s can be requested through the admin
// status control.
func (s OrderStatus) IsAdminTarget() bool {
	for _, t := range AdminTargets() {
		if s == t {
			return true
		}
	}
	return false
}

// StockLevel classifies a product's available quantity
type StockLevel string

const (
	StockLevelOut StockLevel = "OUT_OF_STOCK"
	StockLevelLow StockLevel = "LOW_STOCK"
	StockLevelIn  StockLevel = "IN_STOCK"
)

// LowStockThreshold is the quantity below which a product is shown as low stock
const LowStockThreshold = 10
