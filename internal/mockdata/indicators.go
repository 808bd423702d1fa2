package mockdata

import (
	"math"
	"sort"
	"time"

	"github.com/markcheno/go-talib"
	"github.com/wrdo/hunt/internal/models"
)

// Lookbacks for the derived columns. Relative strength ranks the 3-month
// return; acceleration ranks how much the recent month outpaces that trend.
const (
	rsLookback    = 63
	accelLookback = 21
	historyDays   = 260
)

// Indicators holds the derived technicals for one symbol's close series.
type Indicators struct {
	SMA20    float64
	SMA50    float64
	RSI14    float64
	Return63 float64
	Return21 float64
}

// ComputeIndicators derives SMA/RSI/returns from a close series. Series
// shorter than the longest lookback yield zero values for the affected
// fields rather than an error; the grid renders them blank.
func ComputeIndicators(closes []float64) Indicators {
	var ind Indicators

	if len(closes) >= 20 {
		sma := talib.Sma(closes, 20)
		ind.SMA20 = round2(sma[len(sma)-1])
	}
	if len(closes) >= 50 {
		sma := talib.Sma(closes, 50)
		ind.SMA50 = round2(sma[len(sma)-1])
	}
	if len(closes) >= 15 {
		rsi := talib.Rsi(closes, 14)
		last := rsi[len(rsi)-1]
		if !math.IsNaN(last) {
			ind.RSI14 = round2(last)
		}
	}
	ind.Return63 = trailingReturn(closes, rsLookback)
	ind.Return21 = trailingReturn(closes, accelLookback)
	return ind
}

// trailingReturn is the fractional return over the past n bars.
func trailingReturn(closes []float64, n int) float64 {
	if len(closes) <= n {
		return 0
	}
	base := closes[len(closes)-1-n]
	if base == 0 {
		return 0
	}
	return (closes[len(closes)-1] - base) / base
}

// PercentileRanks maps each value to its percentile rank (0-100) within the
// slice. Ties share the rank of their first occurrence in sorted order.
func PercentileRanks(values []float64) []float64 {
	n := len(values)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []float64{100}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	ranks := make([]float64, n)
	for i, v := range values {
		below := sort.SearchFloat64s(sorted, v)
		ranks[i] = round2(float64(below) / float64(n-1) * 100)
	}
	return ranks
}

// GridRows builds the ETF grid as of an instant: one row per ETF with price,
// change, SMA/RSI columns and cross-sectional RS/acceleration scores.
func (g *Generator) GridRows(asOf time.Time) []models.ETFRow {
	etfs := ETFs()
	rows := make([]models.ETFRow, 0, len(etfs))
	rsRaw := make([]float64, 0, len(etfs))
	accelRaw := make([]float64, 0, len(etfs))

	for _, sym := range etfs {
		candles := g.Candles(sym.Ticker, historyDays, asOf)
		closes := make([]float64, len(candles))
		for i, c := range candles {
			closes[i] = c.Close
		}
		ind := ComputeIndicators(closes)

		row := models.ETFRow{
			Symbol: sym.Ticker,
			Name:   sym.Name,
			Sector: sym.Sector,
			SMA20:  ind.SMA20,
			SMA50:  ind.SMA50,
			RSI14:  ind.RSI14,
		}
		if q, ok := g.Quote(sym.Ticker, asOf); ok {
			row.Price = q.Price
			row.ChangePercent = q.ChangePercent
			row.Volume = q.Volume
		}
		rows = append(rows, row)
		rsRaw = append(rsRaw, ind.Return63)
		accelRaw = append(accelRaw, ind.Return21-ind.Return63/3)
	}

	rsRanks := PercentileRanks(rsRaw)
	accelRanks := PercentileRanks(accelRaw)
	for i := range rows {
		rows[i].RSScore = rsRanks[i]
		rows[i].AccelScore = accelRanks[i]
	}
	return rows
}

// Movers returns the universe sorted by percent change, gainers first when
// gainers is true.
func (g *Generator) Movers(asOf time.Time, gainers bool, limit int) []models.Mover {
	var movers []models.Mover
	for _, sym := range Universe() {
		q, ok := g.Quote(sym.Ticker, asOf)
		if !ok {
			continue
		}
		movers = append(movers, models.Mover{
			Symbol:        sym.Ticker,
			Name:          sym.Name,
			Price:         q.Price,
			ChangePercent: q.ChangePercent,
		})
	}

	sort.SliceStable(movers, func(i, j int) bool {
		if gainers {
			return movers[i].ChangePercent > movers[j].ChangePercent
		}
		return movers[i].ChangePercent < movers[j].ChangePercent
	})

	if limit > 0 && len(movers) > limit {
		movers = movers[:limit]
	}
	return movers
}
