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

type OfferHandler struct {
	offerService service.OfferService
	validator    *validator.Validate
}

func NewOfferHandler(offerService service.OfferService) *OfferHandler {
	return &OfferHandler{offerService: offerService, validator: validator.New()}
}

func (h *OfferHandler) CreateOffer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateOfferRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create offer input")
			return
		}

		offer, err := h.offerService.CreateOffer(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create offer",
				slog.String("productId", req.ProductID.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Offer created",
			slog.String("offerId", offer.ID.String()),
			slog.String("productId", offer.ProductID.String()))
		response.Success(w, http.StatusCreated, offer)
	}
}

func (h *OfferHandler) GetOffer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid offer id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		offer, err := h.offerService.GetOfferByID(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get offer",
				slog.String("offerId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, offer)
	}
}

func (h *OfferHandler) ListOffers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		offers, err := h.offerService.ListOffers(r.Context())
		if err != nil {
			logger.Error("Failed to list offers", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, offers)
	}
}

func (h *OfferHandler) UpdateOffer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid offer id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateOfferRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update offer input", slog.String("offerId", id.String()))
			return
		}

		offer, err := h.offerService.UpdateOffer(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update offer",
				slog.String("offerId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Offer updated",
			slog.String("offerId", offer.ID.String()),
			slog.String("status", string(offer.Status)))
		response.Success(w, http.StatusOK, offer)
	}
}

func (h *OfferHandler) DeleteOffer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid offer id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.offerService.DeleteOffer(r.Context(), id); err != nil {
			logger.Error("Failed to delete offer",
				slog.String("offerId", id.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Offer deleted", slog.String("offerId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"message": "Offer deleted"})
	}
}

// ListActiveOffers is the public storefront listing: offers whose window
// contains today, joined with product display fields.
func (h *OfferHandler) ListActiveOffers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		offers, err := h.offerService.ListActiveOffers(r.Context())
		if err != nil {
			logger.Error("Failed to list active offers", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, offers)
	}
}

func (h *OfferHandler) GetActiveOfferByProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID, err := utils.ParseID(r, "productId")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		offer, err := h.offerService.GetActiveOfferByProduct(r.Context(), productID)
		if err != nil {
			logger.Warn("No active offer for product",
				slog.String("productId", productID.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, offer)
	}
}
