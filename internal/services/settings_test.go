package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	appErrors "github.com/aureliabotanicals/storefront-platform/internal/errors"
	"github.com/aureliabotanicals/storefront-platform/internal/models"
	"github.com/aureliabotanicals/storefront-platform/internal/repositories/mocks"
	service "github.com/aureliabotanicals/storefront-platform/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		settingsRepo := new(mocks.SettingsRepository)
		settingsService := service.NewSettingsService(settingsRepo)

		settingsRepo.On("GetSettings", mock.Anything).
			Return(&models.Settings{StoreName: "Aurelia Botanicals", Currency: "USD"}, nil).Once()

		settings, err := settingsService.GetSettings(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Aurelia Botanicals", settings.StoreName)
		settingsRepo.AssertExpectations(t)
	})

	t.Run("Failure - not configured yet", func(t *testing.T) {
		settingsRepo := new(mocks.SettingsRepository)
		settingsService := service.NewSettingsService(settingsRepo)

		settingsRepo.On("GetSettings", mock.Anything).Return(nil, sql.ErrNoRows).Once()

		settings, err := settingsService.GetSettings(ctx)

		require.Error(t, err)
		assert.Nil(t, settings)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestUpsertSettings(t *testing.T) {
	ctx := context.Background()

	req := &models.UpsertSettingsRequest{
		StoreName:    "Aurelia Botanicals",
		ContactEmail: "hello@aureliabotanicals.com",
		Currency:     "USD",
		SocialLinks:  map[string]string{"instagram": "https://instagram.com/aureliabotanicals"},
	}

	t.Run("Success - replaces the document wholesale", func(t *testing.T) {
		settingsRepo := new(mocks.SettingsRepository)
		settingsService := service.NewSettingsService(settingsRepo)

		settingsRepo.On("UpsertSettings", mock.Anything, mock.MatchedBy(func(s *models.Settings) bool {
			return s.StoreName == req.StoreName &&
				s.Currency == "USD" &&
				s.ContactPhone == "" // omitted fields reset, not merged
		})).Return(nil).Once()

		settings, err := settingsService.UpsertSettings(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, req.StoreName, settings.StoreName)
		settingsRepo.AssertExpectations(t)
	})

	t.Run("Failure - database error", func(t *testing.T) {
		settingsRepo := new(mocks.SettingsRepository)
		settingsService := service.NewSettingsService(settingsRepo)

		settingsRepo.On("UpsertSettings", mock.Anything, mock.Anything).
			Return(errors.New("connection lost")).Once()

		settings, err := settingsService.UpsertSettings(ctx, req)

		require.Error(t, err)
		assert.Nil(t, settings)
	})
}
