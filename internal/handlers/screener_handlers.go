package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wrdo/hunt/internal/services"
)

// ScreenerHandler handles the ETF grid endpoint
type ScreenerHandler struct {
	screenerSvc *services.ScreenerService
}

// NewScreenerHandler creates a new ScreenerHandler
func NewScreenerHandler(screenerSvc *services.ScreenerService) *ScreenerHandler {
	return &ScreenerHandler{
		screenerSvc: screenerSvc,
	}
}

// GetGrid handles GET /api/etf/grid
// @Summary Get the ETF screener grid
// @Description Returns the spreadsheet-style ETF grid with technical columns, sorted and filtered per the query
// @Tags screener
// @Produce json
// @Param sort query string false "Column key to sort by (default rs_score)"
// @Param dir query string false "asc or desc (default desc)"
// @Param filter query string false "Case-insensitive substring filter across all cells"
// @Param columns query string false "Comma-separated visible column keys"
// @Success 200 {object} services.GridPage
// @Router /api/etf/grid [get]
func (h *ScreenerHandler) GetGrid(c *gin.Context) {
	q := services.GridQuery{
		SortKey:   c.DefaultQuery("sort", "rs_score"),
		Direction: c.DefaultQuery("dir", "desc"),
		Filter:    c.Query("filter"),
	}
	if raw := c.Query("columns"); raw != "" {
		for _, key := range strings.Split(raw, ",") {
			if key = strings.TrimSpace(key); key != "" {
				q.Columns = append(q.Columns, key)
			}
		}
	}

	c.JSON(http.StatusOK, h.screenerSvc.ETFGrid(q))
}
