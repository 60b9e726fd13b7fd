package service

import (
	"context"
	"fmt"
	"math"

	"github.com/aureliabotanicals/storefront-platform/internal/errors"
	"github.com/aureliabotanicals/storefront-platform/internal/models"
	repository "github.com/aureliabotanicals/storefront-platform/internal/repositories"
	"github.com/aureliabotanicals/storefront-platform/pkg/stripe"
)

// PaymentService charges orders. Payment state lives on the order row; there is
// no separate payments ledger.
type PaymentService interface {
	CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentResponse, error)
	ProcessWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error)
}

type paymentService struct {
	orderRepo    repository.OrderRepository
	stripeClient stripe.Client
}

func NewPaymentService(orderRepo repository.OrderRepository, stripeClient stripe.Client) PaymentService {
	return &paymentService{orderRepo: orderRepo, stripeClient: stripeClient}
}

// CreatePayment implements PaymentService.
func (s *paymentService) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if order.PaymentStatus == models.PaymentStatusPaid {
		return nil, errors.ConflictError("Order is already paid")
	}

	// Stripe wants the amount in the currency's smallest unit.
	amount := int64(math.Round(order.TotalAmount * 100))

	paymentIntent, err := s.stripeClient.CreatePaymentIntent(
		amount, req.Currency, fmt.Sprintf("Order %s", order.ID), order.ID.String())
	if err != nil {
		return nil, errors.ThirdPartyError("Failed to create payment intent").WithError(err)
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, order.ID, models.PaymentStatusPending, paymentIntent.ID); err != nil {
		return nil, errors.DatabaseError("Failed to record payment intent").WithError(err)
	}

	return &models.PaymentResponse{
		OrderID:         order.ID,
		PaymentIntentID: paymentIntent.ID,
		ClientSecret:    paymentIntent.ClientSecret,
		PaymentStatus:   models.PaymentStatusPending,
	}, nil
}

// ProcessWebhook implements PaymentService.
func (s *paymentService) ProcessWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error) {

	event, err := s.stripeClient.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return stripe.Event{}, errors.ThirdPartyError("Webhook signature verification failed").WithError(err)
	}

	switch event.Type {
	case "payment_intent.succeeded":
		return event, s.markOrder(ctx, event.Data.Object, "id", models.PaymentStatusPaid)

	case "payment_intent.payment_failed":
		return event, s.markOrder(ctx, event.Data.Object, "id", models.PaymentStatusFailed)

	case "charge.refunded":
		return event, s.markOrder(ctx, event.Data.Object, "payment_intent", models.PaymentStatusRefunded)
	}

	return event, nil
}

// markOrder resolves the order behind the webhook's payment intent and moves
// its payment status.
func (s *paymentService) markOrder(ctx context.Context, object map[string]any, idField string, status models.PaymentStatus) error {

	paymentIntentID, ok := object[idField].(string)
	if !ok || paymentIntentID == "" {
		return errors.ThirdPartyError("Missing payment intent ID in webhook")
	}

	order, err := s.orderRepo.GetOrderByPaymentIntent(ctx, paymentIntentID)
	if err != nil {
		return errors.NotFoundError("No order for payment intent").WithError(err)
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, order.ID, status, paymentIntentID); err != nil {
		return errors.DatabaseError("Failed to update payment status").WithError(err)
	}

	return nil
}
