package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kisahtegar/foodly-app-sub000/models"
	"github.com/kisahtegar/foodly-app-sub000/repository"
)

var validate = validator.New()

type OrderService struct {
	orders     repository.OrderRepository
	dispatcher *Dispatcher
}

func NewOrderService(orders repository.OrderRepository, dispatcher *Dispatcher) *OrderService {
	return &OrderService{orders: orders, dispatcher: dispatcher}
}

// PlaceOrder persists a new order for the authenticated user. Totals are
// taken from the client as-is; ownership, ids, timestamps and the
// Placed/Pending defaults are set here regardless of what the body carried.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, order *models.Order) (*models.Order, error) {
	order.ID = primitive.NewObjectID()
	order.OrderID = order.ID.Hex()
	order.UserID = userID
	order.DriverID = nil
	order.OrderStatus = models.StatusPlaced
	order.PaymentStatus = models.PaymentPending
	order.Rating = nil
	order.FeedBack = ""

	now := time.Now()
	order.OrderDate = now
	order.CreatedAt = now
	order.UpdatedAt = now

	for i := range order.OrderItems {
		order.OrderItems[i].Additives = normalizeAdditives(order.OrderItems[i].Additives)
	}

	if err := validate.Struct(order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"orderId":      order.OrderID,
		"userId":       order.UserID,
		"restaurantId": order.RestaurantID,
		"grandTotal":   *order.GrandTotal,
	}).Info("Order placed")

	s.dispatcher.PublishEvent(NewOrderEvent(EventOrderPlaced, order))
	s.dispatcher.Broadcast("newOrder", order)
	return order, nil
}

// normalizeAdditives trims each additive to the {id, title, price} shape and
// guarantees a non-nil list so re-reads reproduce the stored value exactly.
func normalizeAdditives(additives []models.Additive) []models.Additive {
	normalized := make([]models.Additive, 0, len(additives))
	for _, additive := range additives {
		normalized = append(normalized, models.Additive{
			ID:    additive.ID,
			Title: additive.Title,
			Price: additive.Price,
		})
	}
	return normalized
}

func (s *OrderService) GetOrderDetails(ctx context.Context, orderID string) (*models.OrderWithDetails, error) {
	return s.orders.FindDetailsByID(ctx, orderID)
}

func (s *OrderService) GetUserOrders(ctx context.Context, userID string) ([]models.OrderWithDetails, error) {
	return s.orders.FindByUser(ctx, userID)
}

// DeleteOrder is unguarded by design: it backs admin tooling and performs no
// ownership or status checks.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID string) error {
	return s.orders.Delete(ctx, orderID)
}

func (s *OrderService) RateOrder(ctx context.Context, orderID string, rating int, feedback string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return s.orders.SetRating(ctx, orderID, rating, feedback)
}

// ProcessOrder applies a validated status transition and returns the order
// with its related records populated. The consumer is notified best-effort
// after the write commits.
func (s *OrderService) ProcessOrder(ctx context.Context, orderID string, statusKeyword string) (*models.OrderWithDetails, error) {
	newStatus, err := ParseStatusKeyword(statusKeyword)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(order.OrderStatus, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.OrderStatus, newStatus)
	}

	if err := s.orders.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return nil, err
	}

	details, err := s.orders.FindDetailsByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"orderId": orderID,
		"from":    order.OrderStatus,
		"to":      newStatus,
	}).Info("Order status changed")

	s.dispatcher.NotifyUser(details.UserID, "Order update",
		fmt.Sprintf("Your order is now %s", newStatus), map[string]string{
			"orderId":     orderID,
			"orderStatus": string(newStatus),
		})
	s.dispatcher.PublishEvent(NewOrderEvent(EventOrderStatusChanged, &details.Order))
	s.dispatcher.Broadcast("orderStatus", details)
	return details, nil
}

// UpdateOrderStatus writes the status directly, enforcing only enum
// membership. Vendor tooling uses it to repair stuck orders; the state
// machine path is ProcessOrder.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, status string) error {
	orderStatus := models.OrderStatus(status)
	if !orderStatus.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.orders.UpdateStatus(ctx, orderID, orderStatus)
}

func (s *OrderService) UpdatePaymentStatus(ctx context.Context, orderID string, status string) error {
	paymentStatus := models.PaymentStatus(status)
	if !paymentStatus.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, status)
	}
	return s.orders.UpdatePaymentStatus(ctx, orderID, paymentStatus)
}
