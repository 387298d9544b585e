package repository

import (
	"context"
	"errors"

	"github.com/kisahtegar/foodly-app-sub000/models"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderTaken         = errors.New("order already assigned to a driver")
	ErrOrderNotPickedUp   = errors.New("order is not out for delivery")
	ErrOrderNotDelivered  = errors.New("order is not delivered yet")
	ErrOrderAlreadyRated  = errors.New("order already rated")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrDriverNotFound     = errors.New("driver not found")
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, orderID string) (*models.Order, error)
	FindDetailsByID(ctx context.Context, orderID string) (*models.OrderWithDetails, error)
	FindByUser(ctx context.Context, userID string) ([]models.OrderWithDetails, error)
	Delete(ctx context.Context, orderID string) error
	UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, orderID string, status models.PaymentStatus) error
	SetRating(ctx context.Context, orderID string, rating int, feedback string) error

	// Assign claims the order for a driver: it sets driverId and moves the
	// order to Out_for_Delivery in a single conditional update that only
	// matches while driverId is still unset. The losing caller of a race gets
	// ErrOrderTaken.
	Assign(ctx context.Context, orderID string, driverID string) error

	// MarkDelivered commits Out_for_Delivery -> Delivered as a conditional
	// update. It reports settled=true only when this call performed the
	// transition; an order that is already Delivered returns settled=false
	// with no error, so settlement is never run twice.
	MarkDelivered(ctx context.Context, orderID string) (settled bool, err error)

	FindByRestaurant(ctx context.Context, restaurantID string, status models.OrderStatus) ([]models.OrderWithDetails, error)
	FindByDriver(ctx context.Context, driverID string, status models.OrderStatus) ([]models.OrderWithDetails, error)
	FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.OrderWithDetails, error)
}

type RestaurantRepository interface {
	FindByID(ctx context.Context, restaurantID string) (*models.Restaurant, error)

	// AddEarnings credits the restaurant with a single atomic $inc, never a
	// read-modify-write, so concurrent deliveries cannot lose updates.
	AddEarnings(ctx context.Context, restaurantID string, amount float64) error
}

type DriverRepository interface {
	FindByID(ctx context.Context, driverID string) (*models.Driver, error)
	FindByUser(ctx context.Context, userID string) (*models.Driver, error)

	// RecordDelivery looks the driver up by its owning user id and atomically
	// increments totalDeliveries and totalEarnings. Returns found=false when
	// no driver record exists for the user.
	RecordDelivery(ctx context.Context, userID string, fee float64) (found bool, err error)

	SetAvailability(ctx context.Context, driverID string, available bool) error
	UpdateLocation(ctx context.Context, driverID string, coords models.Coords) error
}
