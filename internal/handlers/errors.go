package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wrdo/hunt/internal/middleware"
	"github.com/wrdo/hunt/internal/models"
	"github.com/wrdo/hunt/internal/services"
)

// respondError maps service sentinel errors onto HTTP status codes. Every
// handler funnels its service errors through here so the mapping stays in one
// place.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error:   "forbidden",
			Message: "you do not own this resource",
		})
	case errors.Is(err, services.ErrWatchlistNotFound),
		errors.Is(err, services.ErrSymbolNotFound),
		errors.Is(err, services.ErrEntryNotFound),
		errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrBacktestNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrSymbolUnknown):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "unknown symbol",
		})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "conflict",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidConfig):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_config",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

// requireUser pulls the authenticated user out of the request, writing a 401
// when none is present.
func requireUser(c *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "unauthorized",
			Message: "authentication required",
		})
	}
	return userID, ok
}
