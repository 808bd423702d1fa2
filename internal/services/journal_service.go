package services

import (
	"context"

	"github.com/wrdo/hunt/internal/models"
	"github.com/wrdo/hunt/internal/repository"
)

// JournalService handles trading-journal CRUD with ownership checks
type JournalService struct {
	journalRepo *repository.JournalRepository
}

// NewJournalService creates a new JournalService
func NewJournalService(journalRepo *repository.JournalRepository) *JournalService {
	return &JournalService{journalRepo: journalRepo}
}

// CreateEntry creates a journal entry for a user
func (s *JournalService) CreateEntry(ctx context.Context, ownerID int64, req *models.CreateJournalRequest) (*models.JournalEntry, error) {
	e := &models.JournalEntry{
		OwnerID:   ownerID,
		EntryDate: req.EntryDate.Time,
		Symbol:    req.Symbol,
		Title:     req.Title,
		Body:      req.Body,
	}
	if err := s.journalRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetEntry retrieves one journal entry
func (s *JournalService) GetEntry(ctx context.Context, id, ownerID int64) (*models.JournalEntry, error) {
	e, err := s.journalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}
	return e, nil
}

// ListEntries retrieves a user's journal entries
func (s *JournalService) ListEntries(ctx context.Context, ownerID int64) ([]models.JournalEntry, error) {
	return s.journalRepo.GetByOwner(ctx, ownerID)
}

// UpdateEntry applies a partial update to a journal entry
func (s *JournalService) UpdateEntry(ctx context.Context, id, ownerID int64, req *models.UpdateJournalRequest) (*models.JournalEntry, error) {
	e, err := s.GetEntry(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.EntryDate != nil {
		e.EntryDate = req.EntryDate.Time
	}
	if req.Symbol != nil {
		e.Symbol = req.Symbol
	}
	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Body != nil {
		e.Body = *req.Body
	}

	if err := s.journalRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DeleteEntry deletes a journal entry
func (s *JournalService) DeleteEntry(ctx context.Context, id, ownerID int64) error {
	if _, err := s.GetEntry(ctx, id, ownerID); err != nil {
		return err
	}
	return s.journalRepo.Delete(ctx, id)
}
