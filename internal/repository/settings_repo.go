package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wrdo/hunt/internal/models"
)

// SettingsRepository handles database operations for user settings
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Get retrieves a user's settings, or nil if never saved
func (r *SettingsRepository) Get(ctx context.Context, ownerID int64) (*models.Settings, error) {
	query := `
		SELECT owner, theme, default_symbol, grid_columns, updated
		FROM user_settings
		WHERE owner = $1
	`
	s := &models.Settings{}
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&s.OwnerID, &s.Theme, &s.DefaultSymbol, &s.GridColumns, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return s, nil
}

// Upsert saves a user's settings
func (r *SettingsRepository) Upsert(ctx context.Context, s *models.Settings) error {
	query := `
		INSERT INTO user_settings (owner, theme, default_symbol, grid_columns, updated)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (owner) DO UPDATE
		SET theme = $2, default_symbol = $3, grid_columns = $4, updated = NOW()
		RETURNING updated
	`
	return r.pool.QueryRow(ctx, query, s.OwnerID, s.Theme, s.DefaultSymbol, s.GridColumns).
		Scan(&s.UpdatedAt)
}
