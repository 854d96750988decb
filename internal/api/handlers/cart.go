package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/enset/dashboard/internal/domain"
	"github.com/enset/dashboard/internal/session"
)

// AddCartItemRequest adds one unit of a product to the cart
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required,min=1"`
}

// SetCartItemRequest sets a line's quantity; zero or less removes the line
type SetCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// SetCustomerRequest carries the order form fields
type SetCustomerRequest struct {
	Name  string `json:"customerName"`
	Email string `json:"customerEmail"`
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sess.Cart())
	}
}

// HandleAddCartItem handles POST /v1/cart/items
func HandleAddCartItem(sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		line, err := sess.AddToCart(req.ProductID)
		if err != nil {
			respondError(c, logger, "failed to add to cart", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"item": line,
			"cart": sess.Cart(),
		})
	}
}

// HandleSetCartItem handles PUT /v1/cart/items/:productId
func HandleSetCartItem(sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseID(c, "productId")
		if !ok {
			return
		}

		var req SetCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		if err := sess.SetCartQuantity(productID, *req.Quantity); err != nil {
			respondError(c, logger, "failed to update cart", err)
			return
		}
		c.JSON(http.StatusOK, sess.Cart())
	}
}

// HandleRemoveCartItem handles DELETE /v1/cart/items/:productId
func HandleRemoveCartItem(sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := parseID(c, "productId")
		if !ok {
			return
		}

		if err := sess.SetCartQuantity(productID, 0); err != nil {
			respondError(c, logger, "failed to update cart", err)
			return
		}
		c.JSON(http.StatusOK, sess.Cart())
	}
}

// HandleSetCustomer handles PUT /v1/cart/customer
func HandleSetCustomer(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetCustomerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		sess.SetCustomer(domain.Customer{Name: req.Name, Email: req.Email})
		c.JSON(http.StatusOK, sess.Cart())
	}
}
