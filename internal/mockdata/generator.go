package mockdata

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"github.com/wrdo/hunt/internal/marketsession"
	"github.com/wrdo/hunt/internal/models"
)

// seriesEpoch anchors every generated series. Day returns are a pure function
// of (seed, ticker, days-since-epoch), so overlapping windows always agree and
// a fixed seed reproduces the exact same history.
var seriesEpoch = time.Date(2022, time.January, 3, 0, 0, 0, 0, time.UTC)

const (
	dailyDrift = 0.0004
	dailySigma = 0.013
)

// Generator produces deterministic pseudo-random market data for the
// simulated universe.
type Generator struct {
	seed int64
}

// New creates a Generator. The same seed always yields identical data.
func New(seed int64) *Generator {
	return &Generator{seed: seed}
}

// daySeed mixes the generator seed, ticker and day index into one PRNG seed.
func (g *Generator) daySeed(ticker string, day int) int64 {
	h := fnv.New64a()
	h.Write([]byte(ticker))
	return g.seed ^ int64(h.Sum64()) ^ int64(uint64(day)*0x9E3779B97F4A7C15)
}

// dayReturn is the fractional close-to-close return for one trading day.
func (g *Generator) dayReturn(sym Symbol, day int) float64 {
	rng := rand.New(rand.NewSource(g.daySeed(sym.Ticker, day)))
	return dailyDrift + dailySigma*sym.Volatility*rng.NormFloat64()
}

// Candles returns up to days daily bars for a ticker, ending on the most
// recent trading day on or before asOf. Unknown tickers return nil.
func (g *Generator) Candles(ticker string, days int, asOf time.Time) []models.Candle {
	sym, ok := ByTicker()[ticker]
	if !ok || days <= 0 {
		return nil
	}

	dates := tradingDaysEnding(asOf, days)
	if len(dates) == 0 {
		return nil
	}

	// Walk the whole series from the epoch so every window agrees.
	lastIdx := dayIndex(dates[len(dates)-1])
	closes := make([]float64, lastIdx+1)
	price := sym.BasePrice
	for d := 0; d <= lastIdx; d++ {
		price *= 1 + g.dayReturn(sym, d)
		closes[d] = price
	}

	candles := make([]models.Candle, 0, len(dates))
	for _, date := range dates {
		d := dayIndex(date)
		c := closes[d]
		o := sym.BasePrice
		if d > 0 {
			o = closes[d-1]
		}

		rng := rand.New(rand.NewSource(g.daySeed(sym.Ticker, d) + 1))
		span := math.Abs(c-o) + c*0.002*sym.Volatility
		high := math.Max(o, c) + rng.Float64()*span*0.5
		low := math.Min(o, c) - rng.Float64()*span*0.5
		volume := int64(500_000 + rng.Intn(4_500_000))

		candles = append(candles, models.Candle{
			Date:   date,
			Open:   round2(o),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(c),
			Volume: volume,
		})
	}
	return candles
}

// Quote returns the current snapshot for a ticker. During a session the price
// oscillates deterministically around the day's close path; change fields are
// relative to the prior close.
func (g *Generator) Quote(ticker string, at time.Time) (models.Quote, bool) {
	candles := g.Candles(ticker, 2, at)
	if len(candles) == 0 {
		return models.Quote{}, false
	}

	last := candles[len(candles)-1]
	prevClose := last.Open
	if len(candles) == 2 {
		prevClose = candles[0].Close
	}

	price := last.Close
	if marketsession.Resolve(at).State == marketsession.StateOpen {
		// Small intraday wiggle, stepped every five seconds.
		tick := at.Unix() / 5
		rng := rand.New(rand.NewSource(g.daySeed(ticker, int(tick))))
		price = round2(last.Close * (1 + (rng.Float64()-0.5)*0.004))
	}

	change := round2(price - prevClose)
	changePct := 0.0
	if prevClose != 0 {
		changePct = round2(change / prevClose * 100)
	}

	return models.Quote{
		Symbol:        ticker,
		Price:         price,
		Change:        change,
		ChangePercent: changePct,
		Volume:        last.Volume,
		UpdatedAt:     at,
	}, true
}

// Earnings returns the upcoming earnings events within the next horizon days.
// Each symbol reports on a fixed 91-day cycle offset by its ticker hash.
func (g *Generator) Earnings(asOf time.Time, horizonDays int) []models.EarningsEvent {
	var events []models.EarningsEvent
	today := dayIndex(asOf.UTC().Truncate(24 * time.Hour))

	for _, sym := range Universe() {
		if sym.IsETF {
			continue
		}
		h := fnv.New64a()
		h.Write([]byte(sym.Ticker))
		offset := int(h.Sum64() % 91)

		// Next report day index on or after today.
		next := today + ((offset-today)%91+91)%91
		reportDate := seriesEpoch.AddDate(0, 0, next)
		if int(reportDate.Sub(asOf).Hours()/24) > horizonDays {
			continue
		}

		session := "before_open"
		if offset%2 == 1 {
			session = "after_close"
		}
		rng := rand.New(rand.NewSource(g.daySeed(sym.Ticker, next)))
		events = append(events, models.EarningsEvent{
			Symbol:      sym.Ticker,
			Name:        sym.Name,
			ReportDate:  reportDate,
			Session:     session,
			EPSEstimate: round2(0.5 + rng.Float64()*4),
		})
	}
	return events
}

// dayIndex counts calendar days since the series epoch.
func dayIndex(date time.Time) int {
	return int(date.UTC().Truncate(24*time.Hour).Sub(seriesEpoch).Hours() / 24)
}

// tradingDaysEnding lists the n trading days ending on the most recent
// trading day on or before asOf, oldest first.
func tradingDaysEnding(asOf time.Time, n int) []time.Time {
	day := time.Date(asOf.UTC().Year(), asOf.UTC().Month(), asOf.UTC().Day(), 0, 0, 0, 0, time.UTC)

	out := make([]time.Time, 0, n)
	for len(out) < n && !day.Before(seriesEpoch) {
		if marketsession.IsTradingDate(day.Year(), day.Month(), day.Day()) {
			out = append(out, day)
		}
		day = day.AddDate(0, 0, -1)
	}

	// Reverse to oldest-first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
