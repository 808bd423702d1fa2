package ws

import (
	"context"
	"time"

	"github.com/wrdo/hunt/internal/services"
)

const (
	quoteInterval   = 5 * time.Second
	sessionInterval = time.Second
)

// Streamer drives the hub's push feeds: periodic quote ticks for watched
// symbols and session-state transition notifications.
type Streamer struct {
	hub       *Hub
	marketSvc *services.MarketService
}

// NewStreamer creates a new Streamer
func NewStreamer(hub *Hub, marketSvc *services.MarketService) *Streamer {
	return &Streamer{
		hub:       hub,
		marketSvc: marketSvc,
	}
}

// Run pushes quotes and session transitions until the context is cancelled.
func (s *Streamer) Run(ctx context.Context) error {
	quotes := time.NewTicker(quoteInterval)
	defer quotes.Stop()
	session := time.NewTicker(sessionInterval)
	defer session.Stop()

	lastState := s.marketSvc.SessionStatus().State

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-quotes.C:
			s.pushQuotes()

		case <-session.C:
			status := s.marketSvc.SessionStatus()
			if status.State != lastState {
				lastState = status.State
				s.hub.Publish(TopicNotifications, "session", status)
			}
		}
	}
}

// pushQuotes publishes a tick for every symbol some client is watching. A
// client with no filter pulls the whole universe into the tick.
func (s *Streamer) pushQuotes() {
	watched, filtered := s.hub.WatchedSymbols()
	if filtered && len(watched) == 0 {
		return
	}

	if !filtered {
		watched = make(map[string]bool)
		for _, sym := range s.marketSvc.Universe() {
			watched[sym.Ticker] = true
		}
	}

	for sym := range watched {
		q, err := s.marketSvc.GetQuote(sym)
		if err != nil {
			continue
		}
		s.hub.PublishQuote(q)
	}
}
