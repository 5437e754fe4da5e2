package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/almokadam/backoffice/internal/app/models"
)

// SettingsRepository handles database operations for the singleton
// site settings row. The row lives at a fixed id of 1.
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{
		db: db,
	}
}

// Get retrieves the site settings. A missing row yields empty settings
// rather than an error.
func (r *SettingsRepository) Get(ctx context.Context) (*models.SiteSettings, error) {
	var s models.SiteSettings
	err := r.db.QueryRow(ctx, `
		SELECT phone, email, address, whatsapp, facebook, instagram
		FROM site_settings WHERE id = 1`,
	).Scan(&s.Phone, &s.Email, &s.Address, &s.Whatsapp, &s.Facebook, &s.Instagram)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &models.SiteSettings{}, nil
		}
		return nil, fmt.Errorf("error retrieving settings: %w", err)
	}

	return &s, nil
}

// Upsert writes the settings row, creating it on first save
func (r *SettingsRepository) Upsert(ctx context.Context, s *models.SiteSettings) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO site_settings (id, phone, email, address, whatsapp, facebook, instagram)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			address = EXCLUDED.address,
			whatsapp = EXCLUDED.whatsapp,
			facebook = EXCLUDED.facebook,
			instagram = EXCLUDED.instagram`,
		s.Phone, s.Email, s.Address, s.Whatsapp, s.Facebook, s.Instagram,
	)
	if err != nil {
		return fmt.Errorf("error saving settings: %w", err)
	}

	return nil
}
