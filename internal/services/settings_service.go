package services

import (
	"context"

	"github.com/wrdo/hunt/internal/models"
	"github.com/wrdo/hunt/internal/repository"
)

// SettingsService handles per-user dashboard preferences
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns a user's settings, falling back to defaults when the
// user never saved any.
func (s *SettingsService) GetSettings(ctx context.Context, ownerID int64) (*models.Settings, error) {
	saved, err := s.settingsRepo.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return models.DefaultSettings(ownerID), nil
	}
	return saved, nil
}

// UpdateSettings applies a partial update on top of the current settings
func (s *SettingsService) UpdateSettings(ctx context.Context, ownerID int64, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	current, err := s.GetSettings(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Theme != nil {
		current.Theme = *req.Theme
	}
	if req.DefaultSymbol != nil {
		current.DefaultSymbol = *req.DefaultSymbol
	}
	if req.GridColumns != nil {
		current.GridColumns = req.GridColumns
	}

	if err := s.settingsRepo.Upsert(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
