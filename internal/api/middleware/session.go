package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/enset/dashboard/internal/session"
)

// RequireAuthenticated rejects requests until the session has resolved an
// authenticated identity.
func RequireAuthenticated(sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := sess.State()
		if state != session.StateAuthenticated {
			logger.Debug("Rejected request on unauthenticated session",
				zap.String("path", c.Request.URL.Path),
				zap.String("state", string(state)),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized",
				"state": state,
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests from sessions without the admin role claim
func RequireAdmin(sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sess.IsAdmin() {
			logger.Warn("Rejected admin request",
				zap.String("path", c.Request.URL.Path),
				zap.String("username", sess.Identity().Username),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}

// RequestLogger logs each HTTP request
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
