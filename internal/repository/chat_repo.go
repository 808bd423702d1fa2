package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wrdo/hunt/internal/models"
)

var ErrSessionNotFound = errors.New("chat session not found")

// ChatRepository handles database operations for AI chat sessions and messages
type ChatRepository struct {
	pool *pgxpool.Pool
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(pool *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{pool: pool}
}

// CreateSession creates a new chat session with a caller-assigned ID
func (r *ChatRepository) CreateSession(ctx context.Context, s *models.ChatSession) error {
	query := `
		INSERT INTO chat_session (id, owner, title, created, updated)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created, updated
	`
	return r.pool.QueryRow(ctx, query, s.ID, s.OwnerID, s.Title).
		Scan(&s.CreatedAt, &s.UpdatedAt)
}

// GetSession retrieves a chat session by ID
func (r *ChatRepository) GetSession(ctx context.Context, id string) (*models.ChatSession, error) {
	query := `
		SELECT id, owner, title, created, updated
		FROM chat_session
		WHERE id = $1
	`
	s := &models.ChatSession{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.OwnerID, &s.Title, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}
	return s, nil
}

// GetSessionsByOwner retrieves a user's chat sessions, most recent first
func (r *ChatRepository) GetSessionsByOwner(ctx context.Context, ownerID int64) ([]models.ChatSession, error) {
	query := `
		SELECT id, owner, title, created, updated
		FROM chat_session
		WHERE owner = $1
		ORDER BY updated DESC
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.ChatSession
	for rows.Next() {
		var s models.ChatSession
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Title, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// DeleteSession deletes a session and its messages
func (r *ChatRepository) DeleteSession(ctx context.Context, tx pgx.Tx, id string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM chat_message WHERE session_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete chat messages: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM chat_session WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete chat session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// AddMessage appends a message to a session and bumps the session timestamp
func (r *ChatRepository) AddMessage(ctx context.Context, m *models.ChatMessage) error {
	query := `
		INSERT INTO chat_message (session_id, role, content, created)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created
	`
	if err := r.pool.QueryRow(ctx, query, m.SessionID, m.Role, m.Content).Scan(&m.ID, &m.CreatedAt); err != nil {
		return fmt.Errorf("failed to add chat message: %w", err)
	}

	_, err := r.pool.Exec(ctx, `UPDATE chat_session SET updated = NOW() WHERE id = $1`, m.SessionID)
	return err
}

// GetMessages retrieves a session's messages in order
func (r *ChatRepository) GetMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	query := `
		SELECT id, session_id, role, content, created
		FROM chat_message
		WHERE session_id = $1
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat messages: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// BeginTx starts a new transaction
func (r *ChatRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}
