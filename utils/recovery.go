package utils

import (
	"net/http"
	"strings"

	"hotelhub-backend/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a handler panic into a response. API callers get a 500 JSON
// body; pages send the admin back to the login screen with a flash message.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.FromGin(c).Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)

		if IsAPIRequest(c) {
			RespondWithError(c, http.StatusInternalServerError, "Internal server error")
			return
		}
		SetFlash(c, "Something went wrong")
		c.Redirect(http.StatusFound, "/admin")
		c.Abort()
	})
}

// IsAPIRequest reports whether the request targets a JSON endpoint.
func IsAPIRequest(c *gin.Context) bool {
	path := c.Request.URL.Path
	return strings.HasPrefix(path, "/admin/api/") || strings.HasPrefix(path, "/api/")
}
