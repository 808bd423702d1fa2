package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wrdo/hunt/internal/services"
)

const (
	defaultAggregateDays = 90
	maxAggregateDays     = 2000
	defaultMoversLimit   = 5
)

// MarketHandler handles session, quote and candle endpoints
type MarketHandler struct {
	marketSvc *services.MarketService
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(marketSvc *services.MarketService) *MarketHandler {
	return &MarketHandler{
		marketSvc: marketSvc,
	}
}

// GetSession handles GET /api/market/session
// @Summary Get the exchange session status
// @Description Returns whether the exchange is open, the countdown to the next transition, and holiday context
// @Tags market
// @Produce json
// @Success 200 {object} marketsession.Status
// @Router /api/market/session [get]
func (h *MarketHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.marketSvc.SessionStatus())
}

// GetQuotes handles GET /api/market/quotes
// @Summary Get quotes for a set of symbols
// @Description Returns current quotes; unknown symbols are skipped
// @Tags market
// @Produce json
// @Param symbols query string true "Comma-separated ticker symbols"
// @Success 200 {array} models.Quote
// @Failure 400 {object} models.ErrorResponse
// @Router /api/market/quotes [get]
func (h *MarketHandler) GetQuotes(c *gin.Context) {
	symbols := splitSymbols(c.Query("symbols"))
	if len(symbols) == 0 {
		badRequest(c, "symbols query parameter is required")
		return
	}

	c.JSON(http.StatusOK, h.marketSvc.GetQuotes(symbols))
}

// GetAggregates handles GET /api/market/aggregates/:symbol
// @Summary Get daily candles for a symbol
// @Description Returns up to days daily OHLCV bars ending at the most recent trading day
// @Tags market
// @Produce json
// @Param symbol path string true "Ticker symbol"
// @Param days query int false "Number of trading days (default 90)"
// @Success 200 {object} models.GetAggregatesResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/market/aggregates/{symbol} [get]
func (h *MarketHandler) GetAggregates(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))

	days := defaultAggregateDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxAggregateDays {
			badRequest(c, "days must be an integer between 1 and "+strconv.Itoa(maxAggregateDays))
			return
		}
		days = parsed
	}

	resp, err := h.marketSvc.GetAggregates(symbol, days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMovers handles GET /api/market/movers
// @Summary Get the day's top movers
// @Description Returns the universe ranked by percent change
// @Tags market
// @Produce json
// @Param direction query string false "gainers or losers (default gainers)"
// @Param limit query int false "Maximum rows (default 5)"
// @Success 200 {array} models.Mover
// @Failure 400 {object} models.ErrorResponse
// @Router /api/market/movers [get]
func (h *MarketHandler) GetMovers(c *gin.Context) {
	direction := c.DefaultQuery("direction", "gainers")
	if direction != "gainers" && direction != "losers" {
		badRequest(c, "direction must be 'gainers' or 'losers'")
		return
	}

	limit := defaultMoversLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	c.JSON(http.StatusOK, h.marketSvc.GetMovers(direction == "gainers", limit))
}

// splitSymbols parses a comma-separated symbol list, uppercasing and dropping
// empty entries.
func splitSymbols(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
