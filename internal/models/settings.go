package models

import "time"

// Settings holds per-user dashboard preferences.
type Settings struct {
	OwnerID       int64     `json:"owner_id"`
	Theme         string    `json:"theme"`
	DefaultSymbol string    `json:"default_symbol"`
	GridColumns   []string  `json:"grid_columns"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DefaultSettings returns the preferences used before a user saves any.
func DefaultSettings(ownerID int64) *Settings {
	return &Settings{
		OwnerID:       ownerID,
		Theme:         "dark",
		DefaultSymbol: "HUNT",
		GridColumns:   []string{"symbol", "price", "change_percent", "rsi_14", "rs_score"},
	}
}

// UpdateSettingsRequest represents the request body for saving settings
type UpdateSettingsRequest struct {
	Theme         *string  `json:"theme"`
	DefaultSymbol *string  `json:"default_symbol"`
	GridColumns   []string `json:"grid_columns"`
}
