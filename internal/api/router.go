package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/enset/dashboard/internal/api/handlers"
	"github.com/enset/dashboard/internal/api/middleware"
	"github.com/enset/dashboard/internal/config"
	"github.com/enset/dashboard/internal/session"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, sess *session.Session, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		v1.GET("/session", handlers.HandleGetSession(sess))
		v1.POST("/session/init", handlers.HandleInitSession(sess, logger))
		v1.POST("/session/logout", handlers.HandleLogout(sess, logger))
		v1.GET("/navigation", handlers.HandleNavigation(sess))
		v1.GET("/notifications", handlers.HandleNotifications(sess))
		v1.DELETE("/notifications/:id", handlers.HandleDismissNotification(sess))

		// Data routes (require an authenticated session)
		dataRoutes := v1.Group("")
		dataRoutes.Use(middleware.RequireAuthenticated(sess, logger))
		{
			dataRoutes.GET("/products", handlers.HandleListProducts(sess, logger))
			dataRoutes.GET("/orders", handlers.HandleListOrders(sess, logger))
			dataRoutes.GET("/orders/:id", handlers.HandleGetOrder(sess, logger))
			dataRoutes.POST("/orders", handlers.HandleSubmitOrder(sess, logger))
			dataRoutes.GET("/cart", handlers.HandleGetCart(sess))
			dataRoutes.POST("/cart/items", handlers.HandleAddCartItem(sess, logger))
			dataRoutes.PUT("/cart/items/:productId", handlers.HandleSetCartItem(sess, logger))
			dataRoutes.DELETE("/cart/items/:productId", handlers.HandleRemoveCartItem(sess, logger))
			dataRoutes.PUT("/cart/customer", handlers.HandleSetCustomer(sess))
			dataRoutes.GET("/stats", handlers.HandleStats(sess))
		}

		// Admin routes
		adminRoutes := v1.Group("/admin")
		adminRoutes.Use(middleware.RequireAuthenticated(sess, logger))
		adminRoutes.Use(middleware.RequireAdmin(sess, logger))
		{
			adminRoutes.PATCH("/orders/:id/status", handlers.HandleUpdateOrderStatus(sess, logger))
		}
	}

	return router
}
