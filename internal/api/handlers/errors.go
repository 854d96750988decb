package handlers

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/enset/dashboard/pkg/errors"
)

// respondError maps session and storefront errors to HTTP responses
func respondError(c *gin.Context, logger *zap.Logger, msg string, err error) {
	var (
		validationErr *errors.ErrValidation
		notFoundErr   *errors.ErrNotFound
		forbiddenErr  *errors.ErrForbidden
		notAuthErr    *errors.ErrNotAuthenticated
		refreshErr    *errors.ErrTokenRefresh
		authInitErr   *errors.ErrAuthInit
		apiErr        *errors.ErrAPI
	)

	switch {
	case stderrors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationErr.Message})
	case stderrors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case stderrors.As(err, &forbiddenErr):
		c.JSON(http.StatusForbidden, gin.H{"error": forbiddenErr.Error()})
	case stderrors.As(err, &notAuthErr), stderrors.As(err, &refreshErr), stderrors.As(err, &authInitErr):
		logger.Warn(msg, zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case stderrors.As(err, &apiErr):
		logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error":           msg,
			"upstream_status": apiErr.StatusCode,
		})
	default:
		logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return id, true
}
