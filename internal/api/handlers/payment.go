package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/aureliabotanicals/storefront-platform/internal/api/middleware"
	"github.com/aureliabotanicals/storefront-platform/internal/errors"
	"github.com/aureliabotanicals/storefront-platform/internal/models"
	service "github.com/aureliabotanicals/storefront-platform/internal/services"
	"github.com/aureliabotanicals/storefront-platform/internal/utils"
	"github.com/aureliabotanicals/storefront-platform/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	validator      *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, validator: validator.New()}
}

func (h *PaymentHandler) CreatePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreatePaymentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create payment input")
			return
		}

		payment, err := h.paymentService.CreatePayment(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to initiate payment",
				slog.String("orderId", req.OrderID.String()),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Payment initiated",
			slog.String("orderId", payment.OrderID.String()),
			slog.String("paymentIntentId", payment.PaymentIntentID))
		response.Success(w, http.StatusCreated, payment)
	}
}

// HandleStripeWebhook is unauthenticated; the payload is trusted only after
// its signature verifies against the webhook secret.
func (h *PaymentHandler) HandleStripeWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		const maxBodyBytes = 65536

		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			logger.Warn("Failed to read webhook payload", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Failed to read request body").WithError(err))
			return
		}

		event, err := h.paymentService.ProcessWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature"))
		if err != nil {
			logger.Error("Webhook processing failed",
				slog.String("eventType", string(event.Type)),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Webhook processed", slog.String("eventType", string(event.Type)))
		response.Success(w, http.StatusOK, map[string]string{"received": "true"})
	}
}
