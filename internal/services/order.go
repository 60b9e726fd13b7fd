package service

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/aureliabotanicals/storefront-platform/internal/errors"
	"github.com/aureliabotanicals/storefront-platform/internal/models"
	repository "github.com/aureliabotanicals/storefront-platform/internal/repositories"
	"github.com/google/uuid"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, page, pageSize int) ([]models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	notification NotificationService
}

func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, notification NotificationService) OrderService {
	return &orderService{orderRepo: orderRepo, productRepo: productRepo, notification: notification}
}

func (s *orderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {

	// Resolve each line against the catalog. The charged unit price is the
	// product's discounted price while an active offer has one, otherwise the
	// list price.
	var (
		items []models.OrderItem
		total float64
	)

	for _, input := range req.Items {
		product, err := s.productRepo.GetProductByID(ctx, input.ProductID)
		if err != nil {
			return nil, errors.NotFoundError("Product not found: " + input.ProductID.String()).WithError(err)
		}

		if product.Status != models.ProductStatusActive {
			return nil, errors.BadRequestError("Product is not available: " + product.Name)
		}

		if product.Stock < input.Quantity {
			return nil, errors.BadRequestError("Insufficient stock for product: " + product.Name)
		}

		unitPrice := product.Price
		if product.DiscountedPrice != nil {
			unitPrice = *product.DiscountedPrice
		}

		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    input.Quantity,
			UnitPrice:   unitPrice,
		})

		total += unitPrice * float64(input.Quantity)
	}

	order := &models.Order{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Status:          models.OrderStatusPending,
		TotalAmount:     total,
		PaymentStatus:   models.PaymentStatusPending,
		ShippingAddress: &req.ShippingAddress,
		Items:           items,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to create order").WithError(err)
	}

	for _, item := range order.Items {
		product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, errors.DatabaseError("Failed to update inventory").WithError(err)
		}

		product.Stock -= item.Quantity

		if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
			return nil, errors.DatabaseError("Failed to update inventory").WithError(err)
		}
	}

	if err := s.notification.SendOrderConfirmation(ctx, order); err != nil {
		slog.Warn("order confirmation email failed",
			slog.String("orderId", order.ID.String()),
			slog.String("error", err.Error()))
	}

	return order, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, page, pageSize int) ([]models.Order, int, error) {

	orders, total, err := s.orderRepo.ListOrders(ctx, page, pageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, total, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}

	if !validTransition(order.Status, status) {
		return nil, errors.BadRequestError(fmt.Sprintf("Cannot move order from %s to %s", order.Status, status))
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, id, status); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("Order not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to update order status").WithError(err)
	}

	order.Status = status

	return order, nil
}

// validTransition enforces the forward-only fulfilment flow; cancellation is
// allowed from any state that has not shipped.
func validTransition(from, to models.OrderStatus) bool {
	switch from {
	case models.OrderStatusPending:
		return to == models.OrderStatusConfirmed || to == models.OrderStatusCancelled
	case models.OrderStatusConfirmed:
		return to == models.OrderStatusShipping || to == models.OrderStatusCancelled
	case models.OrderStatusShipping:
		return to == models.OrderStatusDelivered
	default:
		return false
	}
}
