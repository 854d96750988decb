package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/enset/dashboard/internal/domain"
	"github.com/enset/dashboard/internal/session"
)

// HandleUpdateOrderStatus handles PATCH /v1/admin/orders/:id/status?status=
func HandleUpdateOrderStatus(sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseID(c, "id")
		if !ok {
			return
		}

		status := domain.OrderStatus(c.Query("status"))
		if !status.IsAdminTarget() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}

		order, err := sess.UpdateOrderStatus(c.Request.Context(), orderID, status)
		if err != nil {
			respondError(c, logger, "failed to update order status", err)
			return
		}

		logger.Info("Order status updated",
			zap.Int64("order_id", orderID),
			zap.String("status", string(status)),
		)

		c.JSON(http.StatusOK, gin.H{
			"id":     order.ID,
			"status": order.Status,
		})
	}
}
