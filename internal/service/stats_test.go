package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enset/dashboard/internal/domain"
)

func at(s string) domain.Timestamp {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return domain.Timestamp{Time: t}
}

func TestComputeStats(t *testing.T) {
	products := []domain.Product{{ID: 1}, {ID: 2}}
	orders := []domain.Order{
		{ID: 1, TotalAmount: 10.5, Status: domain.OrderStatusPending},
		{ID: 2, TotalAmount: 4.5, Status: domain.OrderStatusDelivered},
		{ID: 3, TotalAmount: 5, Status: domain.OrderStatusPending},
	}

	stats := ComputeStats(products, orders)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 20.0, stats.TotalRevenue)
	assert.Equal(t, 2, stats.PendingOrders)
}

func TestRevenueByDay(t *testing.T) {
	orders := []domain.Order{
		{TotalAmount: 5, CreatedAt: at("2025-02-03T10:00:00Z")},
		{TotalAmount: 7, CreatedAt: at("2025-02-01T23:59:00Z")},
		{TotalAmount: 3, CreatedAt: at("2025-02-03T18:30:00Z")},
		{TotalAmount: 100},
	}

	days := RevenueByDay(orders)
	require.Len(t, days, 2)
	assert.Equal(t, 1, days[0].Day.Day())
	assert.Equal(t, 7.0, days[0].Revenue)
	assert.Equal(t, 1, days[0].Orders)
	assert.Equal(t, 3, days[1].Day.Day())
	assert.Equal(t, 8.0, days[1].Revenue)
	assert.Equal(t, 2, days[1].Orders)
}

func TestRecentOrders(t *testing.T) {
	var orders []domain.Order
	for i := 0; i < 7; i++ {
		orders = append(orders, domain.Order{
			ID:        int64(i + 1),
			CreatedAt: domain.Timestamp{Time: time.Date(2025, 1, i+1, 0, 0, 0, 0, time.UTC)},
		})
	}

	recent := RecentOrders(orders, RecentOrdersLimit)
	require.Len(t, recent, 5)
	assert.Equal(t, int64(7), recent[0].ID)
	assert.Equal(t, int64(3), recent[4].ID)

	// the input is left untouched
	assert.Equal(t, int64(1), orders[0].ID)
}

func TestProductViewsAndFind(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "Laptop", Description: "Portable computer", Quantity: 0},
		{ID: 2, Name: "Mouse", Description: "Wireless", Quantity: 3},
		{ID: 3, Name: "Monitor", Description: "27 inch display", Quantity: 40},
	}

	views := ProductViews(products)
	require.Len(t, views, 3)
	assert.Equal(t, domain.StockLevelOut, views[0].StockLevel)
	assert.False(t, views[0].CanAdd)
	assert.Equal(t, domain.StockLevelLow, views[1].StockLevel)
	assert.True(t, views[1].CanAdd)
	assert.Equal(t, domain.StockLevelIn, views[2].StockLevel)

	assert.Len(t, FindProducts(products, "mo"), 2)
	assert.Len(t, FindProducts(products, "COMPUTER"), 1)
	assert.Len(t, FindProducts(products, ""), 3)

	p, ok := FindProductByID(products, 2)
	assert.True(t, ok)
	assert.Equal(t, "Mouse", p.Name)
}
