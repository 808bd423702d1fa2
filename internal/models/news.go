package models

import "time"

// NewsItem is a single market headline.
type NewsItem struct {
	ID          string    `json:"id"`
	Headline    string    `json:"headline"`
	Summary     string    `json:"summary,omitempty"`
	Source      string    `json:"source"`
	URL         string    `json:"url,omitempty"`
	Symbols     []string  `json:"symbols,omitempty"`
	PublishedAt time.Time `json:"published_at"`
}

// EarningsEvent is an upcoming earnings report.
type EarningsEvent struct {
	Symbol      string    `json:"symbol"`
	Name        string    `json:"name"`
	ReportDate  time.Time `json:"report_date"`
	Session     string    `json:"session"` // "before_open" or "after_close"
	EPSEstimate float64   `json:"eps_estimate"`
}

// GetNewsResponse wraps a headline list with a staleness flag so the UI can
// render an "unavailable" fallback when the upstream feed failed.
type GetNewsResponse struct {
	Items    []NewsItem `json:"items"`
	Degraded bool       `json:"degraded"`
}
