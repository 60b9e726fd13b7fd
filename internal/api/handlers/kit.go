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

// KitHandler serves both bundle kits and gift boxes; the router mounts one
// instance per collection. kind shows up in log lines to tell them apart.
type KitHandler struct {
	kitService service.KitService
	validator  *validator.Validate
	kind       string
}

func NewBundleKitHandler(kitService service.KitService) *KitHandler {
	return &KitHandler{kitService: kitService, validator: validator.New(), kind: "bundleKit"}
}

func NewGiftBoxHandler(kitService service.KitService) *KitHandler {
	return &KitHandler{kitService: kitService, validator: validator.New(), kind: "giftBox"}
}

func (h *KitHandler) CreateKit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("kind", h.kind))

		var req models.CreateKitRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create kit input")
			return
		}

		kit, err := h.kitService.CreateKit(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create kit",
				slog.String("slug", req.Slug),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Kit created", slog.String("kitId", kit.ID.String()))
		response.Success(w, http.StatusCreated, kit)
	}
}

func (h *KitHandler) GetKit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("kind", h.kind))

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid kit id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		kit, err := h.kitService.GetKitByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, kit)
	}
}

func (h *KitHandler) GetKitBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		kit, err := h.kitService.GetKitBySlug(r.Context(), r.PathValue("slug"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, kit)
	}
}

func (h *KitHandler) UpdateKit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("kind", h.kind))

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid kit id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateKitRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update kit input", slog.String("kitId", id.String()))
			return
		}

		kit, err := h.kitService.UpdateKit(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update kit",
				slog.String("kitId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Kit updated", slog.String("kitId", kit.ID.String()))
		response.Success(w, http.StatusOK, kit)
	}
}

func (h *KitHandler) DeleteKit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("kind", h.kind))

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid kit id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.kitService.DeleteKit(r.Context(), id); err != nil {
			logger.Error("Failed to delete kit",
				slog.String("kitId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Kit deleted", slog.String("kitId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"message": "Kit deleted"})
	}
}

func (h *KitHandler) ListKits() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context()).With(slog.String("kind", h.kind))

		kits, err := h.kitService.ListKits(r.Context())
		if err != nil {
			logger.Error("Failed to fetch kits", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, kits)
	}
}
