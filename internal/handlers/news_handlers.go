package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wrdo/hunt/internal/services"
)

const (
	defaultNewsLimit      = 20
	defaultEarningsWindow = 14
)

// NewsHandler handles headline and earnings-calendar endpoints
type NewsHandler struct {
	newsSvc *services.NewsService
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(newsSvc *services.NewsService) *NewsHandler {
	return &NewsHandler{
		newsSvc: newsSvc,
	}
}

// GetNews handles GET /api/news
// @Summary Get market headlines
// @Description Returns recent headlines; degraded is true when the upstream feed was unavailable and generated headlines were served
// @Tags news
// @Produce json
// @Param limit query int false "Maximum headlines (default 20)"
// @Success 200 {object} models.GetNewsResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/news [get]
func (h *NewsHandler) GetNews(c *gin.Context) {
	limit := defaultNewsLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	c.JSON(http.StatusOK, h.newsSvc.GetNews(c.Request.Context(), limit))
}

// GetEarnings handles GET /api/earnings
// @Summary Get the upcoming earnings calendar
// @Tags news
// @Produce json
// @Param days query int false "Horizon in days (default 14)"
// @Success 200 {array} models.EarningsEvent
// @Failure 400 {object} models.ErrorResponse
// @Router /api/earnings [get]
func (h *NewsHandler) GetEarnings(c *gin.Context) {
	days := defaultEarningsWindow
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 92 {
			badRequest(c, "days must be an integer between 1 and 92")
			return
		}
		days = parsed
	}

	c.JSON(http.StatusOK, h.newsSvc.Earnings(days))
}
