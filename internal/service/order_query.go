package service

import (
	"strconv"
	"strings"

	"github.com/enset/dashboard/internal/domain"
)

// QueryOrders filters and paginates a cached order list. Search is a
// case-insensitive substring match over customer name and email, plus a
// substring match over the decimal order ID. The status filter is an exact
// match unless empty or "all". Pages are 1-based; out of range pages are
// clamped.
func QueryOrders(orders []domain.Order, q OrderQuery) OrderPage {
	status := q.Status
	if status == "" {
		status = StatusFilterAll
	}
	search := strings.ToLower(q.Search)

	filtered := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if matchesSearch(order, search) && matchesStatus(order, status) {
			filtered = append(filtered, order)
		}
	}

	totalPages := (len(filtered) + OrdersPageSize - 1) / OrdersPageSize
	page := q.Page
	if page > totalPages {
		page = totalPages
	}
	// an empty result still reports page 1
	if page < 1 {
		page = 1
	}

	start := (page - 1) * OrdersPageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + OrdersPageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return OrderPage{
		Orders:       filtered[start:end],
		Search:       q.Search,
		Status:       status,
		Page:         page,
		PageSize:     OrdersPageSize,
		TotalPages:   totalPages,
		TotalMatches: len(filtered),
		HasPrev:      page > 1,
		HasNext:      page < totalPages,
	}
}

func matchesSearch(order domain.Order, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(order.CustomerName), search) ||
		strings.Contains(strings.ToLower(order.CustomerEmail), search) ||
		strings.Contains(strconv.FormatInt(order.ID, 10), search)
}

func matchesStatus(order domain.Order, status string) bool {
	return status == StatusFilterAll || string(order.Status) == status
}

// StatusActions lists the admin status targets for an order. A target equal
// to the current status is disabled; no other ordering is imposed.
func StatusActions(order domain.Order) []StatusAction {
	targets := domain.AdminTargets()
	actions := make([]StatusAction, 0, len(targets))
	for _, target := range targets {
		actions = append(actions, StatusAction{
			Status:   target,
			Disabled: order.Status == target,
		})
	}
	return actions
}

// FindOrderByID looks up an order in a cached order list
func FindOrderByID(orders []domain.Order, id int64) (domain.Order, bool) {
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}
