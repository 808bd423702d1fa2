package services

import (
	"time"

	"github.com/wrdo/hunt/internal/cache"
	"github.com/wrdo/hunt/internal/marketsession"
	"github.com/wrdo/hunt/internal/mockdata"
	"github.com/wrdo/hunt/internal/models"
)

// MarketService serves session status, quotes and candle aggregates from the
// deterministic generator, with an in-memory cache in front so the
// per-second WebSocket ticker does not regenerate series on every tick.
type MarketService struct {
	gen      *mockdata.Generator
	memCache *cache.MemoryCache

	// Now is the clock; overridable in tests.
	Now func() time.Time
}

// NewMarketService creates a new MarketService
func NewMarketService(gen *mockdata.Generator, memCache *cache.MemoryCache) *MarketService {
	return &MarketService{
		gen:      gen,
		memCache: memCache,
		Now:      time.Now,
	}
}

// SessionStatus classifies the current exchange session.
func (s *MarketService) SessionStatus() marketsession.Status {
	return marketsession.Resolve(s.Now())
}

// GetQuote returns the current quote for one symbol.
func (s *MarketService) GetQuote(symbol string) (models.Quote, error) {
	if q, ok := s.memCache.GetQuote(symbol); ok {
		return q, nil
	}

	q, ok := s.gen.Quote(symbol, s.Now())
	if !ok {
		return models.Quote{}, ErrSymbolUnknown
	}
	s.memCache.SetQuote(symbol, q)
	return q, nil
}

// GetQuotes returns quotes for the requested symbols. Unknown symbols are
// silently skipped so one bad ticker does not fail the whole board.
func (s *MarketService) GetQuotes(symbols []string) []models.Quote {
	quotes := make([]models.Quote, 0, len(symbols))
	for _, sym := range symbols {
		q, err := s.GetQuote(sym)
		if err != nil {
			continue
		}
		quotes = append(quotes, q)
	}
	return quotes
}

// GetAggregates returns up to days daily candles for a symbol.
func (s *MarketService) GetAggregates(symbol string, days int) (*models.GetAggregatesResponse, error) {
	defer TrackTime("GetAggregates", time.Now())

	now := s.Now()
	day := now.UTC().Truncate(24 * time.Hour)

	candles, ok := s.memCache.GetCandles(symbol, days, day)
	if !ok {
		candles = s.gen.Candles(symbol, days, now)
		if candles == nil {
			return nil, ErrSymbolUnknown
		}
		s.memCache.SetCandles(symbol, days, day, candles)
	}

	return &models.GetAggregatesResponse{
		Symbol:     symbol,
		Days:       days,
		DataPoints: len(candles),
		Candles:    candles,
	}, nil
}

// GetMovers returns the universe ranked by percent change.
func (s *MarketService) GetMovers(gainers bool, limit int) []models.Mover {
	return s.gen.Movers(s.Now(), gainers, limit)
}

// Universe exposes the simulated symbol table.
func (s *MarketService) Universe() []mockdata.Symbol {
	return mockdata.Universe()
}
