package newsfeed

import "time"

// HeadlinesResponse represents the upstream feed's article list
type HeadlinesResponse struct {
	Articles []Article `json:"articles"`
}

// Article represents a single upstream article
type Article struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Source      string   `json:"source"`
	URL         string   `json:"url"`
	Tickers     []string `json:"tickers"`
	PublishedAt string   `json:"published_at"`
}

// ParsedHeadline represents a parsed headline ready for use
type ParsedHeadline struct {
	ID          string
	Headline    string
	Summary     string
	Source      string
	URL         string
	Symbols     []string
	PublishedAt time.Time
}
