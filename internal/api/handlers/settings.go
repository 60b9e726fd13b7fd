package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aureliabotanicals/storefront-platform/internal/api/middleware"
	"github.com/aureliabotanicals/storefront-platform/internal/models"
	service "github.com/aureliabotanicals/storefront-platform/internal/services"
	"github.com/aureliabotanicals/storefront-platform/internal/utils"
	"github.com/aureliabotanicals/storefront-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type SettingsHandler struct {
	settingsService service.SettingsService
	validator       *validator.Validate
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, validator: validator.New()}
}

func (h *SettingsHandler) GetSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		settings, err := h.settingsService.GetSettings(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, settings)
	}
}

func (h *SettingsHandler) UpsertSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpsertSettingsRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid settings input")
			return
		}

		settings, err := h.settingsService.UpsertSettings(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to save settings", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Settings saved", slog.String("storeName", settings.StoreName))
		response.Success(w, http.StatusOK, settings)
	}
}
