package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrdo/hunt/internal/cache"
	"github.com/wrdo/hunt/internal/mockdata"
	"github.com/wrdo/hunt/internal/services"
)

// A Friday evening after the close; every generated series is settled.
var testNow = time.Date(2024, 6, 28, 21, 0, 0, 0, time.UTC)

func newMarketService() *services.MarketService {
	svc := services.NewMarketService(mockdata.New(42), cache.NewMemoryCache(time.Minute, time.Minute))
	svc.Now = func() time.Time { return testNow }
	return svc
}

func TestGetQuote(t *testing.T) {
	svc := newMarketService()

	q, err := svc.GetQuote("HUNT")
	require.NoError(t, err)
	assert.Equal(t, "HUNT", q.Symbol)
	assert.Positive(t, q.Price)

	// Second read comes from cache and must match.
	again, err := svc.GetQuote("HUNT")
	require.NoError(t, err)
	assert.Equal(t, q, again)

	_, err = svc.GetQuote("NOPE")
	assert.ErrorIs(t, err, services.ErrSymbolUnknown)
}

func TestGetQuotesSkipsUnknown(t *testing.T) {
	svc := newMarketService()

	quotes := svc.GetQuotes([]string{"HUNT", "NOPE", "WTEC"})
	require.Len(t, quotes, 2)
	assert.Equal(t, "HUNT", quotes[0].Symbol)
	assert.Equal(t, "WTEC", quotes[1].Symbol)
}

func TestGetAggregates(t *testing.T) {
	svc := newMarketService()

	resp, err := svc.GetAggregates("HUNT", 30)
	require.NoError(t, err)
	assert.Equal(t, "HUNT", resp.Symbol)
	assert.Equal(t, 30, resp.Days)
	assert.Equal(t, 30, resp.DataPoints)
	assert.Len(t, resp.Candles, 30)

	cached, err := svc.GetAggregates("HUNT", 30)
	require.NoError(t, err)
	assert.Equal(t, resp.Candles, cached.Candles)

	_, err = svc.GetAggregates("NOPE", 30)
	assert.ErrorIs(t, err, services.ErrSymbolUnknown)
}

func TestSessionStatusUsesClock(t *testing.T) {
	svc := newMarketService()

	// 15:00 UTC on a trading Friday is 11:00 ET, mid-session.
	svc.Now = func() time.Time { return time.Date(2024, 6, 28, 15, 0, 0, 0, time.UTC) }
	assert.Equal(t, "open", string(svc.SessionStatus().State))

	svc.Now = func() time.Time { return testNow }
	assert.Equal(t, "closed", string(svc.SessionStatus().State))
}
