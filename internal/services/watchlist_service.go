package services

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/wrdo/hunt/internal/models"
	"github.com/wrdo/hunt/internal/repository"
)

// WatchlistService handles watchlist CRUD and quote decoration
type WatchlistService struct {
	watchRepo *repository.WatchlistRepository
	marketSvc *MarketService
}

// NewWatchlistService creates a new WatchlistService
func NewWatchlistService(watchRepo *repository.WatchlistRepository, marketSvc *MarketService) *WatchlistService {
	return &WatchlistService{
		watchRepo: watchRepo,
		marketSvc: marketSvc,
	}
}

// CreateWatchlist creates a watchlist with an optional initial symbol set
func (s *WatchlistService) CreateWatchlist(ctx context.Context, ownerID int64, req *models.CreateWatchlistRequest) (*models.WatchlistWithSymbols, error) {
	existing, err := s.watchRepo.GetByName(ctx, ownerID, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrConflict
	}

	tx, err := s.watchRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	w := &models.Watchlist{OwnerID: ownerID, Name: req.Name}
	if err := s.watchRepo.Create(ctx, tx, w); err != nil {
		return nil, fmt.Errorf("failed to create watchlist: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	for _, sym := range req.Symbols {
		if _, err := s.watchRepo.AddSymbol(ctx, w.ID, normalizeSymbol(sym)); err != nil {
			log.Errorf("failed to add initial symbol %s: %v", sym, err)
		}
	}

	return s.GetWatchlist(ctx, w.ID, ownerID)
}

// GetWatchlist returns a watchlist with its symbols and current quotes
func (s *WatchlistService) GetWatchlist(ctx context.Context, id, ownerID int64) (*models.WatchlistWithSymbols, error) {
	w, err := s.watchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}

	symbols, err := s.watchRepo.GetSymbols(ctx, id)
	if err != nil {
		return nil, err
	}

	tickers := make([]string, len(symbols))
	for i, sym := range symbols {
		tickers[i] = sym.Symbol
	}

	return &models.WatchlistWithSymbols{
		Watchlist: *w,
		Symbols:   symbols,
		Quotes:    s.marketSvc.GetQuotes(tickers),
	}, nil
}

// ListWatchlists returns a user's watchlists (metadata only)
func (s *WatchlistService) ListWatchlists(ctx context.Context, ownerID int64) ([]models.Watchlist, error) {
	return s.watchRepo.GetByOwner(ctx, ownerID)
}

// RenameWatchlist renames a watchlist
func (s *WatchlistService) RenameWatchlist(ctx context.Context, id, ownerID int64, name string) (*models.Watchlist, error) {
	w, err := s.watchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}

	w.Name = name
	if err := s.watchRepo.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// DeleteWatchlist deletes a watchlist and its symbols
func (s *WatchlistService) DeleteWatchlist(ctx context.Context, id, ownerID int64) error {
	w, err := s.watchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if w.OwnerID != ownerID {
		return ErrUnauthorized
	}

	tx, err := s.watchRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.watchRepo.Delete(ctx, tx, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// AddSymbol adds a symbol to a watchlist
func (s *WatchlistService) AddSymbol(ctx context.Context, id, ownerID int64, symbol string) (*models.WatchlistSymbol, error) {
	w, err := s.watchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}

	return s.watchRepo.AddSymbol(ctx, id, normalizeSymbol(symbol))
}

// RemoveSymbol removes a symbol from a watchlist
func (s *WatchlistService) RemoveSymbol(ctx context.Context, id, ownerID int64, symbol string) error {
	w, err := s.watchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if w.OwnerID != ownerID {
		return ErrUnauthorized
	}

	return s.watchRepo.RemoveSymbol(ctx, id, normalizeSymbol(symbol))
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
