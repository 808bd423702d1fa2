package models

import "time"

// RotationConfig holds the rotation-lab screener parameters for a user.
type RotationConfig struct {
	OwnerID      int64     `json:"owner_id"`
	FastSMA      int       `json:"fast_sma"`
	SlowSMA      int       `json:"slow_sma"`
	TopN         int       `json:"top_n"`
	LookbackDays int       `json:"lookback_days"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultRotationConfig returns the parameters used before a user saves any.
func DefaultRotationConfig(ownerID int64) *RotationConfig {
	return &RotationConfig{
		OwnerID:      ownerID,
		FastSMA:      20,
		SlowSMA:      50,
		TopN:         5,
		LookbackDays: 252,
	}
}

// UpdateRotationConfigRequest represents the request body for saving config
type UpdateRotationConfigRequest struct {
	FastSMA      int `json:"fast_sma" binding:"required"`
	SlowSMA      int `json:"slow_sma" binding:"required"`
	TopN         int `json:"top_n" binding:"required"`
	LookbackDays int `json:"lookback_days" binding:"required"`
}

// BacktestStatus tracks the lifecycle of a rotation backtest run.
type BacktestStatus string

const (
	BacktestStatusCompleted BacktestStatus = "completed"
	BacktestStatusFailed    BacktestStatus = "failed"
)

// BacktestResult is a persisted rotation backtest run.
type BacktestResult struct {
	ID          string         `json:"id"`
	OwnerID     int64          `json:"owner_id"`
	Config      RotationConfig `json:"config"`
	Status      BacktestStatus `json:"status"`
	TotalReturn float64        `json:"total_return"`
	MaxDrawdown float64        `json:"max_drawdown"`
	Trades      int            `json:"trades"`
	EquityCurve []DailyValue   `json:"equity_curve,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// DailyValue represents an equity-curve point on a specific date
type DailyValue struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
