package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wrdo/hunt/internal/models"
)

var ErrEntryNotFound = errors.New("journal entry not found")

// JournalRepository handles database operations for journal entries
type JournalRepository struct {
	pool *pgxpool.Pool
}

// NewJournalRepository creates a new JournalRepository
func NewJournalRepository(pool *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{pool: pool}
}

// Create creates a new journal entry
func (r *JournalRepository) Create(ctx context.Context, e *models.JournalEntry) error {
	query := `
		INSERT INTO journal_entry (owner, entry_date, symbol, title, body, created, updated)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created, updated
	`
	return r.pool.QueryRow(ctx, query, e.OwnerID, e.EntryDate, e.Symbol, e.Title, e.Body).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// GetByID retrieves a journal entry by ID
func (r *JournalRepository) GetByID(ctx context.Context, id int64) (*models.JournalEntry, error) {
	query := `
		SELECT id, owner, entry_date, symbol, title, body, created, updated
		FROM journal_entry
		WHERE id = $1
	`
	e := &models.JournalEntry{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.OwnerID, &e.EntryDate, &e.Symbol, &e.Title, &e.Body, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}
	return e, nil
}

// GetByOwner retrieves a user's journal entries, most recent entry date first
func (r *JournalRepository) GetByOwner(ctx context.Context, ownerID int64) ([]models.JournalEntry, error) {
	query := `
		SELECT id, owner, entry_date, symbol, title, body, created, updated
		FROM journal_entry
		WHERE owner = $1
		ORDER BY entry_date DESC, id DESC
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.EntryDate, &e.Symbol, &e.Title, &e.Body, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Update updates a journal entry
func (r *JournalRepository) Update(ctx context.Context, e *models.JournalEntry) error {
	query := `
		UPDATE journal_entry
		SET entry_date = $1, symbol = $2, title = $3, body = $4, updated = NOW()
		WHERE id = $5
		RETURNING updated
	`
	err := r.pool.QueryRow(ctx, query, e.EntryDate, e.Symbol, e.Title, e.Body, e.ID).Scan(&e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrEntryNotFound
	}
	return err
}

// Delete deletes a journal entry
func (r *JournalRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM journal_entry WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrEntryNotFound
	}
	return nil
}
