package models

import "time"

// JournalEntry is a dated trading-journal note, optionally tied to a symbol.
type JournalEntry struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	EntryDate time.Time `json:"entry_date"`
	Symbol    *string   `json:"symbol,omitempty"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateJournalRequest represents the request body for creating a journal entry
type CreateJournalRequest struct {
	EntryDate FlexibleDate `json:"entry_date" binding:"required"`
	Symbol    *string      `json:"symbol"`
	Title     string       `json:"title" binding:"required"`
	Body      string       `json:"body"`
}

// UpdateJournalRequest represents the request body for updating a journal entry
type UpdateJournalRequest struct {
	EntryDate *FlexibleDate `json:"entry_date"`
	Symbol    *string       `json:"symbol"`
	Title     *string       `json:"title"`
	Body      *string       `json:"body"`
}
