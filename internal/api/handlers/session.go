package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/enset/dashboard/internal/auth"
	"github.com/enset/dashboard/internal/session"
)

// SessionResponse describes the session to the dashboard shell
type SessionResponse struct {
	ID         string            `json:"id"`
	State      session.State     `json:"state"`
	Identity   *auth.Identity    `json:"identity,omitempty"`
	Admin      bool              `json:"admin"`
	Navigation []session.NavItem `json:"navigation"`
}

func sessionResponse(sess *session.Session) SessionResponse {
	resp := SessionResponse{
		ID:         sess.ID(),
		State:      sess.State(),
		Admin:      sess.IsAdmin(),
		Navigation: sess.Navigation(),
	}
	if resp.State == session.StateAuthenticated {
		identity := sess.Identity()
		resp.Identity = &identity
	}
	return resp
}

// HandleGetSession handles GET /v1/session
func HandleGetSession(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sessionResponse(sess))
	}
}

// HandleInitSession handles POST /v1/session/init. It retries the identity
// provider exchange after a failed or signed out session.
func HandleInitSession(sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sess.Init(c.Request.Context()); err != nil {
			respondError(c, logger, "authentication failed", err)
			return
		}
		c.JSON(http.StatusOK, sessionResponse(sess))
	}
}

// HandleLogout handles POST /v1/session/logout
func HandleLogout(sess *session.Session, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sess.Logout(c.Request.Context()); err != nil {
			// local state is gone either way
			logger.Warn("Logout did not reach the identity provider", zap.Error(err))
		}
		c.JSON(http.StatusOK, sessionResponse(sess))
	}
}

// HandleNavigation handles GET /v1/navigation
func HandleNavigation(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": sess.Navigation()})
	}
}

// HandleNotifications handles GET /v1/notifications
func HandleNotifications(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"notifications": sess.Notifications()})
	}
}

// HandleDismissNotification handles DELETE /v1/notifications/:id
func HandleDismissNotification(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sess.DismissNotification(c.Param("id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
