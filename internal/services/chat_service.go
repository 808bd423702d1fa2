package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wrdo/hunt/internal/mockdata"
	"github.com/wrdo/hunt/internal/models"
	"github.com/wrdo/hunt/internal/repository"
)

// ChatService handles AI-chat sessions. Replies come from a deterministic
// in-process analyst over the generated market data; the hosted LLM backend
// is a separate collaborator this service does not call.
type ChatService struct {
	chatRepo  *repository.ChatRepository
	marketSvc *MarketService
}

// NewChatService creates a new ChatService
func NewChatService(chatRepo *repository.ChatRepository, marketSvc *MarketService) *ChatService {
	return &ChatService{
		chatRepo:  chatRepo,
		marketSvc: marketSvc,
	}
}

// CreateSession starts a new chat session
func (s *ChatService) CreateSession(ctx context.Context, ownerID int64, title string) (*models.ChatSession, error) {
	if strings.TrimSpace(title) == "" {
		title = "New chat"
	}

	session := &models.ChatSession{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Title:   title,
	}
	if err := s.chatRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// GetSession retrieves one session
func (s *ChatService) GetSession(ctx context.Context, id string, ownerID int64) (*models.ChatSession, error) {
	session, err := s.chatRepo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}
	return session, nil
}

// ListSessions retrieves a user's sessions
func (s *ChatService) ListSessions(ctx context.Context, ownerID int64) ([]models.ChatSession, error) {
	return s.chatRepo.GetSessionsByOwner(ctx, ownerID)
}

// DeleteSession deletes a session and its messages
func (s *ChatService) DeleteSession(ctx context.Context, id string, ownerID int64) error {
	if _, err := s.GetSession(ctx, id, ownerID); err != nil {
		return err
	}

	tx, err := s.chatRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.chatRepo.DeleteSession(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetMessages retrieves a session's messages
func (s *ChatService) GetMessages(ctx context.Context, id string, ownerID int64) ([]models.ChatMessage, error) {
	if _, err := s.GetSession(ctx, id, ownerID); err != nil {
		return nil, err
	}
	return s.chatRepo.GetMessages(ctx, id)
}

// PostMessage stores a user message and the analyst's reply
func (s *ChatService) PostMessage(ctx context.Context, id string, ownerID int64, content string) (*models.PostChatMessageResponse, error) {
	if _, err := s.GetSession(ctx, id, ownerID); err != nil {
		return nil, err
	}

	userMsg := &models.ChatMessage{
		SessionID: id,
		Role:      models.ChatRoleUser,
		Content:   content,
	}
	if err := s.chatRepo.AddMessage(ctx, userMsg); err != nil {
		return nil, err
	}

	reply := &models.ChatMessage{
		SessionID: id,
		Role:      models.ChatRoleAssistant,
		Content:   s.Compose(content),
	}
	if err := s.chatRepo.AddMessage(ctx, reply); err != nil {
		return nil, err
	}

	return &models.PostChatMessageResponse{Message: *userMsg, Reply: *reply}, nil
}

// Compose builds the analyst reply for a prompt. Exported so the reply logic
// is testable without a database.
func (s *ChatService) Compose(prompt string) string {
	upper := strings.ToUpper(prompt)

	// Symbol questions get a quote plus indicator readout.
	for _, sym := range mockdata.Universe() {
		if !strings.Contains(upper, sym.Ticker) {
			continue
		}

		quote, err := s.marketSvc.GetQuote(sym.Ticker)
		if err != nil {
			break
		}

		var ind mockdata.Indicators
		if agg, err := s.marketSvc.GetAggregates(sym.Ticker, 260); err == nil {
			closes := make([]float64, len(agg.Candles))
			for i, c := range agg.Candles {
				closes[i] = c.Close
			}
			ind = mockdata.ComputeIndicators(closes)
		}

		trend := "above"
		if quote.Price < ind.SMA50 {
			trend = "below"
		}
		return fmt.Sprintf(
			"%s (%s) is trading at %.2f, %+.2f%% on the day. "+
				"Price is %s the 50-day average (%.2f) with a 14-day RSI of %.1f.",
			sym.Name, sym.Ticker, quote.Price, quote.ChangePercent, trend, ind.SMA50, ind.RSI14)
	}

	// Everything else gets a market summary.
	status := s.marketSvc.SessionStatus()
	state := "closed"
	if status.State == "open" {
		state = "open"
	}
	summary := fmt.Sprintf("The market is currently %s (%s %s).", state,
		strings.ToLower(status.Label), status.Countdown)

	if movers := s.marketSvc.GetMovers(true, 1); len(movers) > 0 {
		summary += fmt.Sprintf(" Today's strongest name is %s at %+.2f%%.",
			movers[0].Symbol, movers[0].ChangePercent)
	}
	return summary
}
