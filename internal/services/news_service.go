package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/wrdo/hunt/internal/mockdata"
	"github.com/wrdo/hunt/internal/models"
	"github.com/wrdo/hunt/internal/newsfeed"
)

// NewsService serves market headlines and the earnings calendar. Headlines
// come from the upstream feed when one is configured; any failure logs and
// falls back to generated headlines with the response flagged degraded, so
// the dashboard can render its "unavailable" banner without a hard error.
type NewsService struct {
	client *newsfeed.Client // nil when no feed is configured
	gen    *mockdata.Generator

	mu       sync.RWMutex
	cached   []models.NewsItem
	degraded bool
	fetched  time.Time

	// Now is the clock; overridable in tests.
	Now func() time.Time
}

const newsTTL = 5 * time.Minute

// NewNewsService creates a new NewsService
func NewNewsService(client *newsfeed.Client, gen *mockdata.Generator) *NewsService {
	return &NewsService{
		client: client,
		gen:    gen,
		Now:    time.Now,
	}
}

// GetNews returns up to limit headlines, refreshing the cache when stale.
func (s *NewsService) GetNews(ctx context.Context, limit int) *models.GetNewsResponse {
	s.mu.RLock()
	fresh := s.cached != nil && s.Now().Sub(s.fetched) < newsTTL
	items, degraded := s.cached, s.degraded
	s.mu.RUnlock()

	if !fresh {
		items, degraded = s.Refresh(ctx)
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return &models.GetNewsResponse{Items: items, Degraded: degraded}
}

// Refresh fetches headlines from the upstream feed, falling back to generated
// ones. Also called by the scheduled job so WebSocket clients get pushes.
func (s *NewsService) Refresh(ctx context.Context) ([]models.NewsItem, bool) {
	items, degraded := s.fetch(ctx)

	s.mu.Lock()
	s.cached = items
	s.degraded = degraded
	s.fetched = s.Now()
	s.mu.Unlock()

	return items, degraded
}

func (s *NewsService) fetch(ctx context.Context) ([]models.NewsItem, bool) {
	if s.client == nil {
		return s.generatedHeadlines(), true
	}

	headlines, err := s.client.GetHeadlines(ctx, 50)
	if err != nil {
		log.Errorf("news feed fetch failed, serving generated headlines: %v", err)
		return s.generatedHeadlines(), true
	}

	items := make([]models.NewsItem, 0, len(headlines))
	for _, h := range headlines {
		items = append(items, models.NewsItem{
			ID:          h.ID,
			Headline:    h.Headline,
			Summary:     h.Summary,
			Source:      h.Source,
			URL:         h.URL,
			Symbols:     h.Symbols,
			PublishedAt: h.PublishedAt,
		})
	}
	return items, false
}

// generatedHeadlines builds deterministic placeholder headlines from the
// day's biggest movers, so the dashboard is never empty in demo mode.
func (s *NewsService) generatedHeadlines() []models.NewsItem {
	now := s.Now()
	day := now.UTC().Format("2006-01-02")

	var items []models.NewsItem
	for i, m := range s.gen.Movers(now, true, 3) {
		items = append(items, models.NewsItem{
			ID:          fmt.Sprintf("gen-%s-up-%d", day, i),
			Headline:    fmt.Sprintf("%s leads gainers, up %.2f%%", m.Symbol, m.ChangePercent),
			Summary:     fmt.Sprintf("%s (%s) trades at %.2f.", m.Name, m.Symbol, m.Price),
			Source:      "HUNT Wire",
			Symbols:     []string{m.Symbol},
			PublishedAt: now,
		})
	}
	for i, m := range s.gen.Movers(now, false, 3) {
		items = append(items, models.NewsItem{
			ID:          fmt.Sprintf("gen-%s-down-%d", day, i),
			Headline:    fmt.Sprintf("%s slides %.2f%% on the session", m.Symbol, -m.ChangePercent),
			Summary:     fmt.Sprintf("%s (%s) trades at %.2f.", m.Name, m.Symbol, m.Price),
			Source:      "HUNT Wire",
			Symbols:     []string{m.Symbol},
			PublishedAt: now,
		})
	}
	return items
}

// Earnings returns the upcoming earnings calendar.
func (s *NewsService) Earnings(horizonDays int) []models.EarningsEvent {
	return s.gen.Earnings(s.Now(), horizonDays)
}
