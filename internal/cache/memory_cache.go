package cache

import (
	"strconv"
	"sync"
	"time"

	"github.com/wrdo/hunt/internal/models"
)

// MemoryCache provides an in-memory L1 cache for quotes, candle series and
// the ETF grid, so the per-second WebSocket tickers and grid refreshes do not
// recompute full series on every hit.
type MemoryCache struct {
	quotes   map[string]quoteEntry
	candles  map[string]candleEntry
	grid     []models.ETFRow
	gridAt   time.Time
	quoteTTL time.Duration
	gridTTL  time.Duration
	quoteMu  sync.RWMutex
	candleMu sync.RWMutex
	gridMu   sync.RWMutex
}

type quoteEntry struct {
	quote     models.Quote
	fetchedAt time.Time
}

type candleEntry struct {
	data      []models.Candle
	fetchedAt time.Time
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache(quoteTTL, gridTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		quotes:   make(map[string]quoteEntry),
		candles:  make(map[string]candleEntry),
		quoteTTL: quoteTTL,
		gridTTL:  gridTTL,
	}
}

// candleCacheKey generates a cache key for a candle series request
func candleCacheKey(symbol string, days int, date time.Time) string {
	return symbol + "|" + date.Format("2006-01-02") + "|" + strconv.Itoa(days)
}

// GetQuote retrieves a cached quote if fresh
func (c *MemoryCache) GetQuote(symbol string) (models.Quote, bool) {
	c.quoteMu.RLock()
	defer c.quoteMu.RUnlock()

	entry, exists := c.quotes[symbol]
	if !exists || time.Since(entry.fetchedAt) > c.quoteTTL {
		return models.Quote{}, false
	}
	return entry.quote, true
}

// SetQuote caches a quote
func (c *MemoryCache) SetQuote(symbol string, quote models.Quote) {
	c.quoteMu.Lock()
	defer c.quoteMu.Unlock()

	c.quotes[symbol] = quoteEntry{quote: quote, fetchedAt: time.Now()}
}

// GetCandles retrieves a cached candle series for a symbol/window/day triple.
// Series only change when the trading day rolls over, so the date is part of
// the key and entries never need an explicit TTL.
func (c *MemoryCache) GetCandles(symbol string, days int, date time.Time) ([]models.Candle, bool) {
	c.candleMu.RLock()
	defer c.candleMu.RUnlock()

	entry, exists := c.candles[candleCacheKey(symbol, days, date)]
	if !exists {
		return nil, false
	}
	return entry.data, true
}

// SetCandles caches a candle series
func (c *MemoryCache) SetCandles(symbol string, days int, date time.Time, data []models.Candle) {
	c.candleMu.Lock()
	defer c.candleMu.Unlock()

	c.candles[candleCacheKey(symbol, days, date)] = candleEntry{data: data, fetchedAt: time.Now()}
}

// GetGrid retrieves the cached ETF grid if fresh
func (c *MemoryCache) GetGrid() ([]models.ETFRow, bool) {
	c.gridMu.RLock()
	defer c.gridMu.RUnlock()

	if c.grid == nil || time.Since(c.gridAt) > c.gridTTL {
		return nil, false
	}
	return c.grid, true
}

// SetGrid caches the ETF grid
func (c *MemoryCache) SetGrid(rows []models.ETFRow) {
	c.gridMu.Lock()
	defer c.gridMu.Unlock()

	c.grid = rows
	c.gridAt = time.Now()
}

// Clear removes all cached data
func (c *MemoryCache) Clear() {
	c.quoteMu.Lock()
	c.quotes = make(map[string]quoteEntry)
	c.quoteMu.Unlock()

	c.candleMu.Lock()
	c.candles = make(map[string]candleEntry)
	c.candleMu.Unlock()

	c.gridMu.Lock()
	c.grid = nil
	c.gridMu.Unlock()
}
