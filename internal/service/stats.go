package service

import (
	"sort"
	"time"

	"github.com/enset/dashboard/internal/domain"
)

// RecentOrdersLimit is the number of orders on the dashboard's recent list
const RecentOrdersLimit = 5

// ComputeStats summarizes the cached read models
func ComputeStats(products []domain.Product, orders []domain.Order) Stats {
	stats := Stats{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
	}
	for _, order := range orders {
		stats.TotalRevenue += order.TotalAmount
		if order.Status == domain.OrderStatusPending {
			stats.PendingOrders++
		}
	}
	return stats
}

// RevenueByDay groups order totals by UTC creation day, oldest first.
// Orders without a creation time are skipped.
func RevenueByDay(orders []domain.Order) []DailyRevenue {
	byDay := make(map[time.Time]*DailyRevenue)
	for _, order := range orders {
		if order.CreatedAt.IsZero() {
			continue
		}
		t := order.CreatedAt.UTC()
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

		entry, ok := byDay[day]
		if !ok {
			entry = &DailyRevenue{Day: day}
			byDay[day] = entry
		}
		entry.Revenue += order.TotalAmount
		entry.Orders++
	}

	out := make([]DailyRevenue, 0, len(byDay))
	for _, entry := range byDay {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day.Before(out[j].Day)
	})
	return out
}

// RecentOrders returns up to limit orders, newest first by createdAt. The
// order service's list order is not relied on.
func RecentOrders(orders []domain.Order, limit int) []domain.Order {
	sorted := make([]domain.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt.Time)
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
