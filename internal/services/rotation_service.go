package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/markcheno/go-talib"
	log "github.com/sirupsen/logrus"
	"github.com/wrdo/hunt/internal/mockdata"
	"github.com/wrdo/hunt/internal/models"
	"github.com/wrdo/hunt/internal/repository"
)

// Parameter bounds for a rotation config. The lookback cap keeps a single
// backtest under a few thousand generated bars per ETF.
const (
	minSMAPeriod    = 2
	maxSMAPeriod    = 200
	minLookbackDays = 30
	maxLookbackDays = 2000
)

// RotationService owns the rotation lab: per-user strategy parameters and
// SMA-crossover backtests over the ETF universe.
type RotationService struct {
	rotationRepo *repository.RotationRepository
	gen          *mockdata.Generator

	// Now is the clock; overridable in tests.
	Now func() time.Time
}

// NewRotationService creates a new RotationService
func NewRotationService(rotationRepo *repository.RotationRepository, gen *mockdata.Generator) *RotationService {
	return &RotationService{
		rotationRepo: rotationRepo,
		gen:          gen,
		Now:          time.Now,
	}
}

// GetConfig returns the user's saved parameters, or the defaults if they
// never saved any.
func (s *RotationService) GetConfig(ctx context.Context, ownerID int64) (*models.RotationConfig, error) {
	cfg, err := s.rotationRepo.GetConfig(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return models.DefaultRotationConfig(ownerID), nil
	}
	return cfg, nil
}

// SaveConfig validates and persists the user's parameters.
func (s *RotationService) SaveConfig(ctx context.Context, ownerID int64, req *models.UpdateRotationConfigRequest) (*models.RotationConfig, error) {
	cfg := &models.RotationConfig{
		OwnerID:      ownerID,
		FastSMA:      req.FastSMA,
		SlowSMA:      req.SlowSMA,
		TopN:         req.TopN,
		LookbackDays: req.LookbackDays,
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := s.rotationRepo.UpsertConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save rotation config: %w", err)
	}
	return cfg, nil
}

func validateConfig(cfg *models.RotationConfig) error {
	switch {
	case cfg.FastSMA < minSMAPeriod || cfg.FastSMA > maxSMAPeriod:
		return fmt.Errorf("%w: fast_sma must be between %d and %d", ErrInvalidConfig, minSMAPeriod, maxSMAPeriod)
	case cfg.SlowSMA <= cfg.FastSMA || cfg.SlowSMA > maxSMAPeriod:
		return fmt.Errorf("%w: slow_sma must be greater than fast_sma and at most %d", ErrInvalidConfig, maxSMAPeriod)
	case cfg.TopN < 1 || cfg.TopN > len(mockdata.ETFs()):
		return fmt.Errorf("%w: top_n must be between 1 and %d", ErrInvalidConfig, len(mockdata.ETFs()))
	case cfg.LookbackDays < minLookbackDays || cfg.LookbackDays > maxLookbackDays:
		return fmt.Errorf("%w: lookback_days must be between %d and %d", ErrInvalidConfig, minLookbackDays, maxLookbackDays)
	}
	return nil
}

// RunBacktest executes the crossover rotation over the ETF universe and
// persists the result. Each day the strategy holds, equal weighted, the top-N
// ETFs whose fast SMA sits furthest above their slow SMA; ETFs below the
// crossover are excluded entirely, so the book can hold fewer than N names.
func (s *RotationService) RunBacktest(ctx context.Context, ownerID int64, req *models.UpdateRotationConfigRequest) (*models.BacktestResult, error) {
	defer TrackTime("RunBacktest", time.Now())

	cfg := &models.RotationConfig{
		OwnerID:      ownerID,
		FastSMA:      req.FastSMA,
		SlowSMA:      req.SlowSMA,
		TopN:         req.TopN,
		LookbackDays: req.LookbackDays,
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &models.BacktestResult{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Config:  *cfg,
		Status:  models.BacktestStatusCompleted,
	}

	if err := s.simulate(cfg, result); err != nil {
		log.WithError(err).WithField("owner", ownerID).Error("Backtest simulation failed")
		result.Status = models.BacktestStatusFailed
		result.EquityCurve = nil
	}

	if err := s.rotationRepo.CreateBacktest(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to persist backtest: %w", err)
	}
	return result, nil
}

// GetBacktest retrieves one backtest run with its equity curve.
func (s *RotationService) GetBacktest(ctx context.Context, id string, ownerID int64) (*models.BacktestResult, error) {
	b, err := s.rotationRepo.GetBacktest(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}
	return b, nil
}

// ListBacktests retrieves a user's backtest history without equity curves.
func (s *RotationService) ListBacktests(ctx context.Context, ownerID int64) ([]models.BacktestResult, error) {
	return s.rotationRepo.GetBacktestsByOwner(ctx, ownerID)
}

// etfSeries is one ETF's candle history warmed up past the slow SMA.
type etfSeries struct {
	symbol  string
	dates   []time.Time
	fastSMA []float64
	slowSMA []float64
	returns []float64
}

func (s *RotationService) simulate(cfg *models.RotationConfig, result *models.BacktestResult) error {
	// Warm up one extra slow period so the first scored day has full SMAs.
	need := cfg.LookbackDays + cfg.SlowSMA
	asOf := s.Now()

	etfs := mockdata.ETFs()
	series := make([]etfSeries, 0, len(etfs))
	for _, sym := range etfs {
		candles := s.gen.Candles(sym.Ticker, need, asOf)
		if len(candles) < cfg.SlowSMA+2 {
			return fmt.Errorf("insufficient history for %s: %d bars", sym.Ticker, len(candles))
		}

		closes := make([]float64, len(candles))
		dates := make([]time.Time, len(candles))
		for i, c := range candles {
			closes[i] = c.Close
			dates[i] = c.Date
		}

		rets := make([]float64, len(closes))
		for i := 1; i < len(closes); i++ {
			rets[i] = closes[i]/closes[i-1] - 1
		}

		series = append(series, etfSeries{
			symbol:  sym.Ticker,
			dates:   dates,
			fastSMA: talib.Sma(closes, cfg.FastSMA),
			slowSMA: talib.Sma(closes, cfg.SlowSMA),
			returns: rets,
		})
	}

	// All series are generated against the same trading calendar, so bars
	// align by index.
	bars := len(series[0].dates)
	start := cfg.SlowSMA
	if bars-start > cfg.LookbackDays {
		start = bars - cfg.LookbackDays
	}

	equity := 100.0
	peak := equity
	var maxDrawdown float64
	var trades int
	held := map[string]bool{}
	curve := make([]models.DailyValue, 0, bars-start)

	for day := start; day < bars; day++ {
		// Select on the prior bar's signal, earn this bar's return.
		next := selectHoldings(series, day-1, cfg.TopN)

		for sym := range next {
			if !held[sym] {
				trades++
			}
		}
		held = next

		if len(held) > 0 {
			var dayReturn float64
			for _, es := range series {
				if held[es.symbol] {
					dayReturn += es.returns[day]
				}
			}
			equity *= 1 + dayReturn/float64(len(held))
		}

		if equity > peak {
			peak = equity
		}
		if dd := (peak - equity) / peak; dd > maxDrawdown {
			maxDrawdown = dd
		}

		curve = append(curve, models.DailyValue{
			Date:  series[0].dates[day].Format("2006-01-02"),
			Value: round4(equity),
		})
	}

	result.TotalReturn = round4(equity/100 - 1)
	result.MaxDrawdown = round4(maxDrawdown)
	result.Trades = trades
	result.EquityCurve = curve
	return nil
}

// selectHoldings picks the top-N ETFs by SMA spread at a bar, skipping any
// whose fast SMA has not crossed above the slow.
func selectHoldings(series []etfSeries, day, topN int) map[string]bool {
	type scored struct {
		symbol string
		spread float64
	}
	var candidates []scored
	for _, es := range series {
		fast, slow := es.fastSMA[day], es.slowSMA[day]
		if slow <= 0 || fast <= slow {
			continue
		}
		candidates = append(candidates, scored{es.symbol, (fast - slow) / slow})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].spread > candidates[j].spread
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	held := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		held[c.symbol] = true
	}
	return held
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
