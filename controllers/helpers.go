package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"hotelhub-backend/logger"
	"hotelhub-backend/services"
	"hotelhub-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// tenantID reads the tenant from the session set by RequireSession.
func tenantID(c *gin.Context) (uint, bool) {
	session, ok := utils.CurrentSession(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return 0, false
	}
	return session.TenantID, true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps service errors to status codes. Unexpected errors
// are logged and reported with the generic message.
func respondServiceError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrRoomUnavailable), errors.Is(err, services.ErrConflict):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		logger.FromGin(c).Error(message, zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, message)
	}
}
