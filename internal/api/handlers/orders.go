package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/enset/dashboard/internal/domain"
	"github.com/enset/dashboard/internal/service"
	"github.com/enset/dashboard/internal/session"
)

// OrderResponse is an order with the admin status control attached
type OrderResponse struct {
	domain.Order
	StatusActions []service.StatusAction `json:"status_actions,omitempty"`
}

// OrderPageResponse is an order page whose rows carry the admin status
// control when the session has the admin role
type OrderPageResponse struct {
	service.OrderPage
	Orders []OrderResponse `json:"orders"`
}

func orderResponse(order domain.Order, admin bool) OrderResponse {
	response := OrderResponse{Order: order}
	if admin {
		response.StatusActions = service.StatusActions(order)
	}
	return response
}

// HandleListOrders handles GET /v1/orders?q=&status=&page=&reload=
func HandleListOrders(sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query service.OrderQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid query",
				"details": err.Error(),
			})
			return
		}
		if query.Status != "" && query.Status != service.StatusFilterAll &&
			!domain.OrderStatus(query.Status).IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}

		if c.Query("reload") == "true" {
			if _, err := sess.LoadOrders(c.Request.Context()); err != nil {
				respondError(c, logger, "failed to load orders", err)
				return
			}
		}

		page := sess.QueryOrders(query)
		admin := sess.IsAdmin()
		rows := make([]OrderResponse, 0, len(page.Orders))
		for _, order := range page.Orders {
			rows = append(rows, orderResponse(order, admin))
		}

		c.JSON(http.StatusOK, OrderPageResponse{OrderPage: page, Orders: rows})
	}
}

// HandleGetOrder handles GET /v1/orders/:id
func HandleGetOrder(sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseID(c, "id")
		if !ok {
			return
		}

		order, err := sess.Order(orderID)
		if err != nil {
			respondError(c, logger, "failed to get order", err)
			return
		}

		c.JSON(http.StatusOK, orderResponse(order, sess.IsAdmin()))
	}
}

// HandleSubmitOrder handles POST /v1/orders. The cart and customer fields
// held by the session are submitted; the request body is ignored.
func HandleSubmitOrder(sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := sess.SubmitOrder(c.Request.Context())
		if err != nil {
			respondError(c, logger, "failed to create order", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"order": order,
			"cart":  sess.Cart(),
		})
	}
}

// HandleStats handles GET /v1/stats
func HandleStats(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"stats":          sess.Stats(),
			"revenue_by_day": sess.RevenueByDay(),
			"recent_orders":  sess.RecentOrders(),
		})
	}
}
