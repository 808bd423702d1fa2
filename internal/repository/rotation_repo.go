package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wrdo/hunt/internal/models"
)

var ErrBacktestNotFound = errors.New("backtest not found")

// RotationRepository handles database operations for rotation-lab config and
// backtest results
type RotationRepository struct {
	pool *pgxpool.Pool
}

// NewRotationRepository creates a new RotationRepository
func NewRotationRepository(pool *pgxpool.Pool) *RotationRepository {
	return &RotationRepository{pool: pool}
}

// GetConfig retrieves a user's rotation config, or nil if never saved
func (r *RotationRepository) GetConfig(ctx context.Context, ownerID int64) (*models.RotationConfig, error) {
	query := `
		SELECT owner, fast_sma, slow_sma, top_n, lookback_days, updated
		FROM rotation_config
		WHERE owner = $1
	`
	c := &models.RotationConfig{}
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&c.OwnerID, &c.FastSMA, &c.SlowSMA, &c.TopN, &c.LookbackDays, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rotation config: %w", err)
	}
	return c, nil
}

// UpsertConfig saves a user's rotation config
func (r *RotationRepository) UpsertConfig(ctx context.Context, c *models.RotationConfig) error {
	query := `
		INSERT INTO rotation_config (owner, fast_sma, slow_sma, top_n, lookback_days, updated)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (owner) DO UPDATE
		SET fast_sma = $2, slow_sma = $3, top_n = $4, lookback_days = $5, updated = NOW()
		RETURNING updated
	`
	return r.pool.QueryRow(ctx, query, c.OwnerID, c.FastSMA, c.SlowSMA, c.TopN, c.LookbackDays).
		Scan(&c.UpdatedAt)
}

// CreateBacktest persists a completed backtest run
func (r *RotationRepository) CreateBacktest(ctx context.Context, b *models.BacktestResult) error {
	curve, err := json.Marshal(b.EquityCurve)
	if err != nil {
		return fmt.Errorf("failed to marshal equity curve: %w", err)
	}

	query := `
		INSERT INTO rotation_backtest
			(id, owner, fast_sma, slow_sma, top_n, lookback_days, status,
			 total_return, max_drawdown, trades, equity_curve, created)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING created
	`
	return r.pool.QueryRow(ctx, query,
		b.ID, b.OwnerID, b.Config.FastSMA, b.Config.SlowSMA, b.Config.TopN, b.Config.LookbackDays,
		b.Status, b.TotalReturn, b.MaxDrawdown, b.Trades, curve,
	).Scan(&b.CreatedAt)
}

// GetBacktestsByOwner retrieves a user's backtest runs, newest first. The
// equity curves are omitted; fetch a single run for the full series.
func (r *RotationRepository) GetBacktestsByOwner(ctx context.Context, ownerID int64) ([]models.BacktestResult, error) {
	query := `
		SELECT id, owner, fast_sma, slow_sma, top_n, lookback_days, status,
		       total_return, max_drawdown, trades, created
		FROM rotation_backtest
		WHERE owner = $1
		ORDER BY created DESC
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list backtests: %w", err)
	}
	defer rows.Close()

	var runs []models.BacktestResult
	for rows.Next() {
		var b models.BacktestResult
		err := rows.Scan(
			&b.ID, &b.OwnerID, &b.Config.FastSMA, &b.Config.SlowSMA, &b.Config.TopN,
			&b.Config.LookbackDays, &b.Status, &b.TotalReturn, &b.MaxDrawdown, &b.Trades, &b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan backtest: %w", err)
		}
		b.Config.OwnerID = b.OwnerID
		runs = append(runs, b)
	}
	return runs, rows.Err()
}

// GetBacktest retrieves a backtest run by ID
func (r *RotationRepository) GetBacktest(ctx context.Context, id string) (*models.BacktestResult, error) {
	query := `
		SELECT id, owner, fast_sma, slow_sma, top_n, lookback_days, status,
		       total_return, max_drawdown, trades, equity_curve, created
		FROM rotation_backtest
		WHERE id = $1
	`
	b := &models.BacktestResult{}
	var curve []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.OwnerID, &b.Config.FastSMA, &b.Config.SlowSMA, &b.Config.TopN, &b.Config.LookbackDays,
		&b.Status, &b.TotalReturn, &b.MaxDrawdown, &b.Trades, &curve, &b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBacktestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get backtest: %w", err)
	}
	b.Config.OwnerID = b.OwnerID

	if len(curve) > 0 {
		if err := json.Unmarshal(curve, &b.EquityCurve); err != nil {
			return nil, fmt.Errorf("failed to unmarshal equity curve: %w", err)
		}
	}
	return b, nil
}
