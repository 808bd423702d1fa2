package mockdata_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrdo/hunt/internal/mockdata"
)

var asOf = time.Date(2024, 6, 28, 20, 0, 0, 0, time.UTC) // a Friday

func TestCandlesDeterministic(t *testing.T) {
	a := mockdata.New(42).Candles("HUNT", 30, asOf)
	b := mockdata.New(42).Candles("HUNT", 30, asOf)
	c := mockdata.New(7).Candles("HUNT", 30, asOf)

	require.Len(t, a, 30)
	assert.Equal(t, a, b, "same seed must reproduce the identical series")
	assert.NotEqual(t, a, c, "different seeds should diverge")
}

func TestCandlesWindowsAgree(t *testing.T) {
	g := mockdata.New(42)
	long := g.Candles("WTEC", 200, asOf)
	short := g.Candles("WTEC", 30, asOf)

	require.Len(t, long, 200)
	require.Len(t, short, 30)
	assert.Equal(t, long[len(long)-30:], short, "overlapping windows must agree bar for bar")
}

func TestCandleInvariants(t *testing.T) {
	candles := mockdata.New(42).Candles("NVAX", 120, asOf)
	require.NotEmpty(t, candles)

	for i, c := range candles {
		assert.GreaterOrEqual(t, c.High, c.Open, "bar %d", i)
		assert.GreaterOrEqual(t, c.High, c.Close, "bar %d", i)
		assert.LessOrEqual(t, c.Low, c.Open, "bar %d", i)
		assert.LessOrEqual(t, c.Low, c.Close, "bar %d", i)
		assert.Positive(t, c.Volume, "bar %d", i)

		wd := c.Date.Weekday()
		assert.NotEqual(t, time.Saturday, wd, "bar %d on a weekend", i)
		assert.NotEqual(t, time.Sunday, wd, "bar %d on a weekend", i)
		if i > 0 {
			assert.True(t, c.Date.After(candles[i-1].Date), "dates must ascend")
		}
	}

	// July 4 2024 is a holiday: no bar may land on it.
	july4 := time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)
	for _, c := range mockdata.New(42).Candles("NVAX", 10, july4.AddDate(0, 0, 3)) {
		assert.False(t, c.Date.Equal(july4), "generated a bar on Independence Day")
	}
}

func TestCandlesUnknownTicker(t *testing.T) {
	assert.Nil(t, mockdata.New(42).Candles("NOPE", 30, asOf))
}

func TestQuoteChangeAgainstPriorClose(t *testing.T) {
	g := mockdata.New(42)
	// Saturday: market closed, so the quote is exactly Friday's close.
	closed := time.Date(2024, 6, 29, 15, 0, 0, 0, time.UTC)
	q, ok := g.Quote("HUNT", closed)
	require.True(t, ok)

	candles := g.Candles("HUNT", 2, closed)
	require.Len(t, candles, 2)
	assert.Equal(t, candles[1].Close, q.Price)
	assert.InDelta(t, candles[1].Close-candles[0].Close, q.Change, 0.011)

	_, ok = g.Quote("NOPE", closed)
	assert.False(t, ok)
}

func TestEarningsWithinHorizon(t *testing.T) {
	events := mockdata.New(42).Earnings(asOf, 30)

	for _, e := range events {
		assert.False(t, e.ReportDate.Before(asOf.Truncate(24*time.Hour)), "%s reported in the past", e.Symbol)
		assert.LessOrEqual(t, e.ReportDate.Sub(asOf).Hours()/24, 31.0, "%s outside horizon", e.Symbol)
		assert.Contains(t, []string{"before_open", "after_close"}, e.Session)
	}
}

func TestUniverseLookups(t *testing.T) {
	assert.Len(t, mockdata.Universe(), 20)
	assert.Len(t, mockdata.ETFs(), 10)

	byTicker := mockdata.ByTicker()
	hunt, ok := byTicker["HUNT"]
	require.True(t, ok)
	assert.Equal(t, "Hunt Capital Holdings", hunt.Name)
}
