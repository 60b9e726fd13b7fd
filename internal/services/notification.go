package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aureliabotanicals/storefront-platform/internal/models"
	"github.com/aureliabotanicals/storefront-platform/pkg/sendgrid"
)

// NotificationService sends transactional email to customers. Delivery is best
// effort: callers log failures and carry on.
type NotificationService interface {
	SendOrderConfirmation(ctx context.Context, order *models.Order) error
}

type notificationService struct {
	emailService sendgrid.EmailService
	storeName    string
}

func NewNotificationService(emailService sendgrid.EmailService, storeName string) NotificationService {
	return &notificationService{emailService: emailService, storeName: storeName}
}

// SendOrderConfirmation implements NotificationService.
func (n *notificationService) SendOrderConfirmation(ctx context.Context, order *models.Order) error {

	var lines strings.Builder

	fmt.Fprintf(&lines, "Hi %s,\n\nThanks for your order! Here is what you bought:\n\n", order.CustomerName)

	for _, item := range order.Items {
		fmt.Fprintf(&lines, "  %d x %s @ %.2f\n", item.Quantity, item.ProductName, item.UnitPrice)
	}

	fmt.Fprintf(&lines, "\nTotal: %.2f\n\nWe will let you know as soon as it ships.\n\n%s", order.TotalAmount, n.storeName)

	msg := &sendgrid.Message{
		To:      order.CustomerEmail,
		Subject: fmt.Sprintf("Your %s order %s", n.storeName, order.ID),
		Content: lines.String(),
	}

	if err := n.emailService.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send order confirmation: %w", err)
	}

	return nil
}
