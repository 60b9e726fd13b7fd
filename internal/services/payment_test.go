package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	appErrors "github.com/aureliabotanicals/storefront-platform/internal/errors"
	"github.com/aureliabotanicals/storefront-platform/internal/models"
	repoMocks "github.com/aureliabotanicals/storefront-platform/internal/repositories/mocks"
	service "github.com/aureliabotanicals/storefront-platform/internal/services"
	pkgstripe "github.com/aureliabotanicals/storefront-platform/pkg/stripe"
	stripeMocks "github.com/aureliabotanicals/storefront-platform/pkg/stripe/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
)

func newPaymentServiceWithMocks() (service.PaymentService, *repoMocks.OrderRepository, *stripeMocks.Client) {
	orderRepo := new(repoMocks.OrderRepository)
	stripeClient := new(stripeMocks.Client)

	return service.NewPaymentService(orderRepo, stripeClient), orderRepo, stripeClient
}

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()

	req := &models.CreatePaymentRequest{OrderID: orderID, Currency: "usd"}

	t.Run("Success - amount is converted to the smallest unit", func(t *testing.T) {
		// Arrange
		paymentService, orderRepo, stripeClient := newPaymentServiceWithMocks()

		order := &models.Order{ID: orderID, TotalAmount: 1600, PaymentStatus: models.PaymentStatusPending}
		intent := &stripe.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret_abc"}

		orderRepo.On("GetOrderByID", mock.Anything, orderID).Return(order, nil).Once()
		stripeClient.On("CreatePaymentIntent", int64(160000), "usd", mock.Anything, orderID.String()).
			Return(intent, nil).Once()
		orderRepo.On("UpdatePaymentStatus", mock.Anything, orderID, models.PaymentStatusPending, "pi_123").
			Return(nil).Once()

		// Act
		resp, err := paymentService.CreatePayment(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, orderID, resp.OrderID)
		assert.Equal(t, "pi_123", resp.PaymentIntentID)
		assert.Equal(t, "pi_123_secret_abc", resp.ClientSecret)
		assert.Equal(t, models.PaymentStatusPending, resp.PaymentStatus)
		orderRepo.AssertExpectations(t)
		stripeClient.AssertExpectations(t)
	})

	t.Run("Failure - order already paid", func(t *testing.T) {
		// Arrange
		paymentService, orderRepo, stripeClient := newPaymentServiceWithMocks()

		order := &models.Order{ID: orderID, TotalAmount: 1600, PaymentStatus: models.PaymentStatusPaid}
		orderRepo.On("GetOrderByID", mock.Anything, orderID).Return(order, nil).Once()

		// Act
		resp, err := paymentService.CreatePayment(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, resp)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeConflict, appErr.Code)
		stripeClient.AssertNotCalled(t, "CreatePaymentIntent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - order not found", func(t *testing.T) {
		// Arrange
		paymentService, orderRepo, _ := newPaymentServiceWithMocks()

		orderRepo.On("GetOrderByID", mock.Anything, orderID).Return(nil, sql.ErrNoRows).Once()

		// Act
		resp, err := paymentService.CreatePayment(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, resp)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Failure - stripe error", func(t *testing.T) {
		// Arrange
		paymentService, orderRepo, stripeClient := newPaymentServiceWithMocks()

		order := &models.Order{ID: orderID, TotalAmount: 1600}
		orderRepo.On("GetOrderByID", mock.Anything, orderID).Return(order, nil).Once()
		stripeClient.On("CreatePaymentIntent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("stripe unavailable")).Once()

		// Act
		resp, err := paymentService.CreatePayment(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, resp)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
	})
}

func TestProcessWebhook(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	payload := []byte(`{}`)
	signature := "t=123,v1=abc"

	webhookEvent := func(eventType string, object map[string]any) pkgstripe.Event {
		return pkgstripe.Event{
			Type: stripe.EventType(eventType),
			Data: &stripe.EventData{Object: object},
		}
	}

	t.Run("payment_intent.succeeded marks the order paid", func(t *testing.T) {
		// Arrange
		paymentService, orderRepo, stripeClient := newPaymentServiceWithMocks()

		event := webhookEvent("payment_intent.succeeded", map[string]any{"id": "pi_123"})
		stripeClient.On("VerifyWebhookSignature", payload, signature).Return(event, nil).Once()
		orderRepo.On("GetOrderByPaymentIntent", mock.Anything, "pi_123").
			Return(&models.Order{ID: orderID}, nil).Once()
		orderRepo.On("UpdatePaymentStatus", mock.Anything, orderID, models.PaymentStatusPaid, "pi_123").
			Return(nil).Once()

		// Act
		_, err := paymentService.ProcessWebhook(ctx, payload, signature)

		// Assert
		require.NoError(t, err)
		orderRepo.AssertExpectations(t)
		stripeClient.AssertExpectations(t)
	})

	t.Run("payment_intent.payment_failed marks the order failed", func(t *testing.T) {
		// Arrange
		paymentService, orderRepo, stripeClient := newPaymentServiceWithMocks()

		event := webhookEvent("payment_intent.payment_failed", map[string]any{"id": "pi_123"})
		stripeClient.On("VerifyWebhookSignature", payload, signature).Return(event, nil).Once()
		orderRepo.On("GetOrderByPaymentIntent", mock.Anything, "pi_123").
			Return(&models.Order{ID: orderID}, nil).Once()
		orderRepo.On("UpdatePaymentStatus", mock.Anything, orderID, models.PaymentStatusFailed, "pi_123").
			Return(nil).Once()

		// Act
		_, err := paymentService.ProcessWebhook(ctx, payload, signature)

		// Assert
		require.NoError(t, err)
		orderRepo.AssertExpectations(t)
	})

	t.Run("charge.refunded resolves the intent from the charge object", func(t *testing.T) {
		// Arrange
		paymentService, orderRepo, stripeClient := newPaymentServiceWithMocks()

		event := webhookEvent("charge.refunded", map[string]any{"payment_intent": "pi_123"})
		stripeClient.On("VerifyWebhookSignature", payload, signature).Return(event, nil).Once()
		orderRepo.On("GetOrderByPaymentIntent", mock.Anything, "pi_123").
			Return(&models.Order{ID: orderID}, nil).Once()
		orderRepo.On("UpdatePaymentStatus", mock.Anything, orderID, models.PaymentStatusRefunded, "pi_123").
			Return(nil).Once()

		// Act
		_, err := paymentService.ProcessWebhook(ctx, payload, signature)

		// Assert
		require.NoError(t, err)
		orderRepo.AssertExpectations(t)
	})

	t.Run("unhandled event types are acknowledged without action", func(t *testing.T) {
		// Arrange
		paymentService, orderRepo, stripeClient := newPaymentServiceWithMocks()

		event := webhookEvent("customer.created", map[string]any{"id": "cus_123"})
		stripeClient.On("VerifyWebhookSignature", payload, signature).Return(event, nil).Once()

		// Act
		_, err := paymentService.ProcessWebhook(ctx, payload, signature)

		// Assert
		require.NoError(t, err)
		orderRepo.AssertNotCalled(t, "GetOrderByPaymentIntent", mock.Anything, mock.Anything)
	})

	t.Run("Failure - invalid signature", func(t *testing.T) {
		// Arrange
		paymentService, orderRepo, stripeClient := newPaymentServiceWithMocks()

		stripeClient.On("VerifyWebhookSignature", payload, signature).
			Return(pkgstripe.Event{}, errors.New("signature mismatch")).Once()

		// Act
		_, err := paymentService.ProcessWebhook(ctx, payload, signature)

		// Assert
		require.Error(t, err)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeThirdPartyError, appErr.Code)
		orderRepo.AssertNotCalled(t, "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - no order for the payment intent", func(t *testing.T) {
		// Arrange
		paymentService, orderRepo, stripeClient := newPaymentServiceWithMocks()

		event := webhookEvent("payment_intent.succeeded", map[string]any{"id": "pi_unknown"})
		stripeClient.On("VerifyWebhookSignature", payload, signature).Return(event, nil).Once()
		orderRepo.On("GetOrderByPaymentIntent", mock.Anything, "pi_unknown").
			Return(nil, sql.ErrNoRows).Once()

		// Act
		_, err := paymentService.ProcessWebhook(ctx, payload, signature)

		// Assert
		require.Error(t, err)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}
