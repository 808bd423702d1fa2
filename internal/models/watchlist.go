package models

import "time"

// Watchlist represents a user's named list of tracked symbols.
type Watchlist struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WatchlistSymbol is a single entry in a watchlist.
// Composite primary key (watchlist_id, symbol) - no separate ID field.
type WatchlistSymbol struct {
	WatchlistID int64     `json:"watchlist_id"`
	Symbol      string    `json:"symbol"`
	Position    int       `json:"position"`
	AddedAt     time.Time `json:"added_at"`
}

// WatchlistWithSymbols combines a watchlist with its entries, each decorated
// with a current quote when one is available.
type WatchlistWithSymbols struct {
	Watchlist Watchlist         `json:"watchlist"`
	Symbols   []WatchlistSymbol `json:"symbols"`
	Quotes    []Quote           `json:"quotes,omitempty"`
}

// CreateWatchlistRequest represents the request body for creating a watchlist
type CreateWatchlistRequest struct {
	Name    string   `json:"name" binding:"required"`
	Symbols []string `json:"symbols"`
}

// UpdateWatchlistRequest represents the request body for renaming a watchlist
type UpdateWatchlistRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddSymbolRequest represents the request body for adding a symbol
type AddSymbolRequest struct {
	Symbol string `json:"symbol" binding:"required"`
}
