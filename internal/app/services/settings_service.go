package services

import (
	"context"
	"fmt"
	"time"

	"github.com/almokadam/backoffice/internal/app/models"
	"github.com/almokadam/backoffice/internal/app/models/dto"
	"github.com/almokadam/backoffice/internal/app/repositories"
	"github.com/almokadam/backoffice/internal/pkg/rates"
)

// SettingsService handles site settings and the exchange-rate lookup
type SettingsService struct {
	settingsRepo *repositories.SettingsRepository
	ratesClient  *rates.Client
}

// NewSettingsService creates a new settings service instance
func NewSettingsService(settingsRepo *repositories.SettingsRepository, ratesClient *rates.Client) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		ratesClient:  ratesClient,
	}
}

// GetSettings retrieves the site settings
func (s *SettingsService) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettings merges the request over the stored settings. Empty fields
// keep their stored value.
func (s *SettingsService) UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest) (*models.SiteSettings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.Phone != "" {
		current.Phone = req.Phone
	}
	if req.Email != "" {
		current.Email = req.Email
	}
	if req.Address != "" {
		current.Address = req.Address
	}
	if req.Whatsapp != "" {
		current.Whatsapp = req.Whatsapp
	}
	if req.Facebook != "" {
		current.Facebook = req.Facebook
	}
	if req.Instagram != "" {
		current.Instagram = req.Instagram
	}

	if err := s.settingsRepo.Upsert(ctx, current); err != nil {
		return nil, fmt.Errorf("error saving settings: %w", err)
	}
	return current, nil
}

// GetRates returns the cached exchange-rate table
func (s *SettingsService) GetRates(ctx context.Context) (*dto.RatesResponse, error) {
	table, err := s.ratesClient.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.RatesResponse{
		Base:      table.Base,
		Rates:     table.Rates,
		FetchedAt: table.FetchedAt.Format(time.RFC3339),
		Stale:     table.Stale,
	}, nil
}
