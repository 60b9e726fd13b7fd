package service

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/aureliabotanicals/storefront-platform/internal/errors"
	"github.com/aureliabotanicals/storefront-platform/internal/models"
	repository "github.com/aureliabotanicals/storefront-platform/internal/repositories"
)

type SettingsService interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpsertSettings(ctx context.Context, req *models.UpsertSettingsRequest) (*models.Settings, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) GetSettings(ctx context.Context) (*models.Settings, error) {

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Store settings are not configured yet").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch settings").WithError(err)
	}

	return settings, nil
}

// UpsertSettings replaces the single settings document wholesale.
func (s *settingsService) UpsertSettings(ctx context.Context, req *models.UpsertSettingsRequest) (*models.Settings, error) {

	settings := &models.Settings{
		StoreName:    req.StoreName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		Currency:     req.Currency,
		SocialLinks:  req.SocialLinks,
	}

	if err := s.repo.UpsertSettings(ctx, settings); err != nil {
		return nil, errors.DatabaseError("Failed to save settings").WithError(err)
	}

	return settings, nil
}
