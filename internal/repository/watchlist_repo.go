package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wrdo/hunt/internal/models"
)

var (
	ErrWatchlistNotFound = errors.New("watchlist not found")
	ErrWatchlistConflict = errors.New("watchlist with same name already exists for this user")
	ErrSymbolNotFound    = errors.New("symbol not in watchlist")
)

// WatchlistRepository handles database operations for watchlists
type WatchlistRepository struct {
	pool *pgxpool.Pool
}

// NewWatchlistRepository creates a new WatchlistRepository
func NewWatchlistRepository(pool *pgxpool.Pool) *WatchlistRepository {
	return &WatchlistRepository{pool: pool}
}

// Create creates a new watchlist
func (r *WatchlistRepository) Create(ctx context.Context, tx pgx.Tx, w *models.Watchlist) error {
	query := `
		INSERT INTO watchlist (owner, name, created, updated)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created, updated
	`
	return tx.QueryRow(ctx, query, w.OwnerID, w.Name).
		Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
}

// GetByID retrieves a watchlist by ID
func (r *WatchlistRepository) GetByID(ctx context.Context, id int64) (*models.Watchlist, error) {
	query := `
		SELECT id, owner, name, created, updated
		FROM watchlist
		WHERE id = $1
	`
	w := &models.Watchlist{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.OwnerID, &w.Name, &w.CreatedAt, &w.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWatchlistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get watchlist: %w", err)
	}
	return w, nil
}

// GetByName checks if a watchlist with the same name exists for a user
func (r *WatchlistRepository) GetByName(ctx context.Context, ownerID int64, name string) (*models.Watchlist, error) {
	query := `
		SELECT id, owner, name, created, updated
		FROM watchlist
		WHERE owner = $1 AND name = $2
	`
	w := &models.Watchlist{}
	err := r.pool.QueryRow(ctx, query, ownerID, name).Scan(
		&w.ID, &w.OwnerID, &w.Name, &w.CreatedAt, &w.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check watchlist: %w", err)
	}
	return w, nil
}

// GetByOwner retrieves all watchlists for a user
func (r *WatchlistRepository) GetByOwner(ctx context.Context, ownerID int64) ([]models.Watchlist, error) {
	query := `
		SELECT id, owner, name, created, updated
		FROM watchlist
		WHERE owner = $1
		ORDER BY created DESC
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlists: %w", err)
	}
	defer rows.Close()

	var watchlists []models.Watchlist
	for rows.Next() {
		var w models.Watchlist
		if err := rows.Scan(&w.ID, &w.OwnerID, &w.Name, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist: %w", err)
		}
		watchlists = append(watchlists, w)
	}
	return watchlists, rows.Err()
}

// Update renames a watchlist
func (r *WatchlistRepository) Update(ctx context.Context, w *models.Watchlist) error {
	query := `
		UPDATE watchlist
		SET name = $1, updated = NOW()
		WHERE id = $2
		RETURNING updated
	`
	err := r.pool.QueryRow(ctx, query, w.Name, w.ID).Scan(&w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrWatchlistNotFound
	}
	return err
}

// Delete deletes a watchlist and its symbols
func (r *WatchlistRepository) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM watchlist_symbol WHERE watchlist_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete watchlist symbols: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM watchlist WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete watchlist: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrWatchlistNotFound
	}
	return nil
}

// AddSymbol appends a symbol at the end of a watchlist. Re-adding an existing
// symbol is a no-op thanks to the composite primary key.
func (r *WatchlistRepository) AddSymbol(ctx context.Context, watchlistID int64, symbol string) (*models.WatchlistSymbol, error) {
	query := `
		INSERT INTO watchlist_symbol (watchlist_id, symbol, position, added)
		VALUES ($1, $2,
			(SELECT COALESCE(MAX(position), -1) + 1 FROM watchlist_symbol WHERE watchlist_id = $1),
			NOW())
		ON CONFLICT (watchlist_id, symbol) DO UPDATE SET symbol = EXCLUDED.symbol
		RETURNING watchlist_id, symbol, position, added
	`
	s := &models.WatchlistSymbol{}
	err := r.pool.QueryRow(ctx, query, watchlistID, symbol).
		Scan(&s.WatchlistID, &s.Symbol, &s.Position, &s.AddedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add symbol: %w", err)
	}
	return s, nil
}

// RemoveSymbol removes a symbol from a watchlist
func (r *WatchlistRepository) RemoveSymbol(ctx context.Context, watchlistID int64, symbol string) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM watchlist_symbol WHERE watchlist_id = $1 AND symbol = $2`,
		watchlistID, symbol)
	if err != nil {
		return fmt.Errorf("failed to remove symbol: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrSymbolNotFound
	}
	return nil
}

// GetSymbols retrieves all symbols in a watchlist, in display order
func (r *WatchlistRepository) GetSymbols(ctx context.Context, watchlistID int64) ([]models.WatchlistSymbol, error) {
	query := `
		SELECT watchlist_id, symbol, position, added
		FROM watchlist_symbol
		WHERE watchlist_id = $1
		ORDER BY position
	`
	rows, err := r.pool.Query(ctx, query, watchlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	var symbols []models.WatchlistSymbol
	for rows.Next() {
		var s models.WatchlistSymbol
		if err := rows.Scan(&s.WatchlistID, &s.Symbol, &s.Position, &s.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		symbols = append(symbols, s)
	}
	return symbols, rows.Err()
}

// BeginTx starts a new transaction
func (r *WatchlistRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}
