package domain

// Product is a catalog entry owned by the product service
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// StockLevel returns the product's stock classification
func (p Product) StockLevel() StockLevel {
	switch {
	case p.Quantity <= 0:
		return StockLevelOut
	case p.Quantity < LowStockThreshold:
		return StockLevelLow
	default:
		return StockLevelIn
	}
}

// CartLineItem is one product selection in the local cart.
// ProductID is sent as "id" because the order service expects that shape.
type CartLineItem struct {
	ProductID   int64   `json:"id"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"totalPrice"`
}

// Order represents an order as returned by the order service
type Order struct {
	ID            int64           `json:"id"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	TotalAmount   float64         `json:"totalAmount"`
	Status        OrderStatus     `json:"status"`
	CreatedAt     Timestamp       `json:"createdAt"`
	UpdatedAt     Timestamp       `json:"updatedAt"`
	Items         []OrderLineItem `json:"items,omitempty"`
}

// OrderLineItem is a persisted order line. Only populated for detailed or
// owned orders.
type OrderLineItem struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"totalPrice"`
}

// Customer holds the name and email submitted with a new order
type Customer struct {
	Name  string `json:"customerName"`
	Email string `json:"customerEmail"`
}
