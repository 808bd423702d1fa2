package mockdata_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrdo/hunt/internal/mockdata"
)

func TestComputeIndicatorsFlatSeries(t *testing.T) {
	closes := make([]float64, 100)
	for i := range closes {
		closes[i] = 50
	}
	ind := mockdata.ComputeIndicators(closes)

	assert.Equal(t, 50.0, ind.SMA20)
	assert.Equal(t, 50.0, ind.SMA50)
	assert.Equal(t, 0.0, ind.Return63)
	assert.Equal(t, 0.0, ind.Return21)
}

func TestComputeIndicatorsTrendingSeries(t *testing.T) {
	closes := make([]float64, 100)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	ind := mockdata.ComputeIndicators(closes)

	// A monotonically rising series pins RSI at 100 and the SMA below price.
	assert.InDelta(t, 100.0, ind.RSI14, 0.01)
	assert.Less(t, ind.SMA20, closes[len(closes)-1])
	assert.Positive(t, ind.Return63)
	assert.Positive(t, ind.Return21)
}

func TestComputeIndicatorsShortSeries(t *testing.T) {
	ind := mockdata.ComputeIndicators([]float64{10, 11, 12})

	assert.Zero(t, ind.SMA20)
	assert.Zero(t, ind.SMA50)
	assert.Zero(t, ind.RSI14)
	assert.Zero(t, ind.Return63)
}

func TestPercentileRanks(t *testing.T) {
	ranks := mockdata.PercentileRanks([]float64{3, 1, 2, 4})
	assert.Equal(t, []float64{66.67, 0, 33.33, 100}, ranks)

	assert.Equal(t, []float64{100}, mockdata.PercentileRanks([]float64{5}))
	assert.Nil(t, mockdata.PercentileRanks(nil))
}

func TestGridRows(t *testing.T) {
	asOf := time.Date(2024, 6, 28, 20, 0, 0, 0, time.UTC)
	rows := mockdata.New(42).GridRows(asOf)
	require.Len(t, rows, 10)

	sawTop := false
	for _, row := range rows {
		assert.True(t, row.RSScore >= 0 && row.RSScore <= 100, "%s rs score out of range", row.Symbol)
		assert.True(t, row.AccelScore >= 0 && row.AccelScore <= 100, "%s accel score out of range", row.Symbol)
		assert.Positive(t, row.Price, "%s missing quote", row.Symbol)
		assert.Positive(t, row.SMA20, "%s missing sma", row.Symbol)
		if row.RSScore == 100 {
			sawTop = true
		}
	}
	assert.True(t, sawTop, "percentile ranking should pin the strongest ETF at 100")
}

func TestMoversSorted(t *testing.T) {
	asOf := time.Date(2024, 6, 28, 20, 0, 0, 0, time.UTC)
	g := mockdata.New(42)

	gainers := g.Movers(asOf, true, 5)
	require.Len(t, gainers, 5)
	for i := 1; i < len(gainers); i++ {
		assert.GreaterOrEqual(t, gainers[i-1].ChangePercent, gainers[i].ChangePercent)
	}

	losers := g.Movers(asOf, false, 5)
	require.Len(t, losers, 5)
	for i := 1; i < len(losers); i++ {
		assert.LessOrEqual(t, losers[i-1].ChangePercent, losers[i].ChangePercent)
	}
}
