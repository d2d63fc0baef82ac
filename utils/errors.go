package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body of every API error
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Message: message,
		Error:   httpStatusText(status),
	})
}

func httpStatusText(status int) string {
	switch {
	case status >= 500:
		return "internal_error"
	case status == 401:
		return "unauthorized"
	case status == 404:
		return "not_found"
	case status == 409:
		return "conflict"
	default:
		return "bad_request"
	}
}
