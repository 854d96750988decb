package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/enset/dashboard/internal/service"
	"github.com/enset/dashboard/internal/session"
)

// HandleListProducts handles GET /v1/products
func HandleListProducts(sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("reload") == "true" {
			if _, err := sess.LoadProducts(c.Request.Context()); err != nil {
				respondError(c, logger, "failed to load products", err)
				return
			}
		}

		products := service.FindProducts(sess.Products(), c.Query("q"))
		c.JSON(http.StatusOK, gin.H{
			"products": service.ProductViews(products),
			"count":    len(products),
		})
	}
}
