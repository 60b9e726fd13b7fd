package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aureliabotanicals/storefront-platform/internal/models"
	"github.com/aureliabotanicals/storefront-platform/internal/utils"
)

type SettingsRepository interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpsertSettings(ctx context.Context, settings *models.Settings) error
}

// One settings row exists; writes go through an upsert keyed on a fixed
// singleton flag.
type settingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepo(db *sql.DB) SettingsRepository {
	return &settingsRepository{DB: db}
}

func (r *settingsRepository) GetSettings(ctx context.Context) (*models.Settings, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	settings := &models.Settings{}

	var socialLinksJSON []byte

	query := `SELECT id, store_name, contact_email, contact_phone, address, currency, social_links, updated_at
			  FROM settings
			  WHERE singleton`

	err := r.DB.QueryRowContext(dbCtx, query).Scan(
		&settings.ID, &settings.StoreName, &settings.ContactEmail, &settings.ContactPhone,
		&settings.Address, &settings.Currency, &socialLinksJSON, &settings.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(socialLinksJSON) > 0 {
		if err := json.Unmarshal(socialLinksJSON, &settings.SocialLinks); err != nil {
			return nil, fmt.Errorf("failed to unmarshal social links: %w", err)
		}
	}

	return settings, nil
}

func (r *settingsRepository) UpsertSettings(ctx context.Context, settings *models.Settings) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	socialLinks, err := json.Marshal(settings.SocialLinks)
	if err != nil {
		return fmt.Errorf("failed to marshal social links: %w", err)
	}

	query := `INSERT INTO settings (store_name, contact_email, contact_phone, address, currency, social_links, singleton)
			  VALUES ($1, $2, $3, $4, $5, $6, TRUE)
			  ON CONFLICT (singleton) DO UPDATE
			  SET store_name = EXCLUDED.store_name,
				  contact_email = EXCLUDED.contact_email,
				  contact_phone = EXCLUDED.contact_phone,
				  address = EXCLUDED.address,
				  currency = EXCLUDED.currency,
				  social_links = EXCLUDED.social_links,
				  updated_at = NOW()
			  RETURNING id, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		settings.StoreName, settings.ContactEmail, settings.ContactPhone,
		settings.Address, settings.Currency, socialLinks,
	).Scan(&settings.ID, &settings.UpdatedAt)
}
