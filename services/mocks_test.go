package services

import (
	"context"
	"sync"
	"time"

	"github.com/kisahtegar/foodly-app-sub000/models"
	"github.com/kisahtegar/foodly-app-sub000/repository"
)

// memOrderRepo is an in-memory repository.OrderRepository with the same
// conditional-update semantics as the Mongo implementation, so assignment
// and settlement races behave the way the store would.
type memOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*models.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*models.Order)}
}

func (r *memOrderRepo) Create(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *order
	r.orders[order.OrderID] = &stored
	return nil
}

func (r *memOrderRepo) FindByID(_ context.Context, orderID string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *memOrderRepo) FindDetailsByID(ctx context.Context, orderID string) (*models.OrderWithDetails, error) {
	order, err := r.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &models.OrderWithDetails{Order: *order}, nil
}

func (r *memOrderRepo) FindByUser(_ context.Context, userID string) ([]models.OrderWithDetails, error) {
	return r.filter(func(o *models.Order) bool { return o.UserID == userID }), nil
}

func (r *memOrderRepo) Delete(_ context.Context, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[orderID]; !ok {
		return repository.ErrOrderNotFound
	}
	delete(r.orders, orderID)
	return nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, orderID string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.OrderStatus = status
	order.UpdatedAt = time.Now()
	return nil
}

func (r *memOrderRepo) UpdatePaymentStatus(_ context.Context, orderID string, status models.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.PaymentStatus = status
	return nil
}

func (r *memOrderRepo) SetRating(_ context.Context, orderID string, rating int, feedback string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return repository.ErrOrderNotFound
	}
	if order.OrderStatus != models.StatusDelivered {
		return repository.ErrOrderNotDelivered
	}
	if order.Rating != nil {
		return repository.ErrOrderAlreadyRated
	}
	order.Rating = &rating
	order.FeedBack = feedback
	return nil
}

func (r *memOrderRepo) Assign(_ context.Context, orderID string, driverID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return repository.ErrOrderNotFound
	}
	if order.DriverID != nil {
		return repository.ErrOrderTaken
	}
	order.DriverID = &driverID
	order.OrderStatus = models.StatusOutForDelivery
	return nil
}

func (r *memOrderRepo) MarkDelivered(_ context.Context, orderID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return false, repository.ErrOrderNotFound
	}
	if order.OrderStatus == models.StatusOutForDelivery {
		order.OrderStatus = models.StatusDelivered
		return true, nil
	}
	if order.OrderStatus == models.StatusDelivered {
		return false, nil
	}
	return false, repository.ErrOrderNotPickedUp
}

func (r *memOrderRepo) FindByRestaurant(_ context.Context, restaurantID string, status models.OrderStatus) ([]models.OrderWithDetails, error) {
	return r.filter(func(o *models.Order) bool {
		return o.RestaurantID == restaurantID &&
			o.OrderStatus == status &&
			(o.PaymentStatus == models.PaymentCompleted || o.PaymentStatus == models.PaymentPending)
	}), nil
}

func (r *memOrderRepo) FindByDriver(_ context.Context, driverID string, status models.OrderStatus) ([]models.OrderWithDetails, error) {
	return r.filter(func(o *models.Order) bool {
		return o.DriverID != nil && *o.DriverID == driverID && o.OrderStatus == status
	}), nil
}

func (r *memOrderRepo) FindByStatus(_ context.Context, status models.OrderStatus) ([]models.OrderWithDetails, error) {
	return r.filter(func(o *models.Order) bool {
		return o.OrderStatus == status && o.PaymentStatus == models.PaymentCompleted
	}), nil
}

func (r *memOrderRepo) filter(keep func(*models.Order) bool) []models.OrderWithDetails {
	r.mu.Lock()
	defer r.mu.Unlock()
	var results []models.OrderWithDetails
	for _, order := range r.orders {
		if keep(order) {
			copied := *order
			results = append(results, models.OrderWithDetails{Order: copied})
		}
	}
	return results
}

type memRestaurantRepo struct {
	mu       sync.Mutex
	earnings map[string]float64
}

func newMemRestaurantRepo() *memRestaurantRepo {
	return &memRestaurantRepo{earnings: make(map[string]float64)}
}

func (r *memRestaurantRepo) FindByID(_ context.Context, restaurantID string) (*models.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &models.Restaurant{RestaurantID: restaurantID, Earnings: r.earnings[restaurantID]}, nil
}

func (r *memRestaurantRepo) AddEarnings(_ context.Context, restaurantID string, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.earnings[restaurantID] += amount
	return nil
}

type memDriverRepo struct {
	mu      sync.Mutex
	drivers map[string]*models.Driver // keyed by driverId
}

func newMemDriverRepo(drivers ...*models.Driver) *memDriverRepo {
	repo := &memDriverRepo{drivers: make(map[string]*models.Driver)}
	for _, driver := range drivers {
		repo.drivers[driver.DriverID] = driver
	}
	return repo
}

func (r *memDriverRepo) FindByID(_ context.Context, driverID string) (*models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	driver, ok := r.drivers[driverID]
	if !ok {
		return nil, repository.ErrDriverNotFound
	}
	copied := *driver
	return &copied, nil
}

func (r *memDriverRepo) FindByUser(_ context.Context, userID string) (*models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, driver := range r.drivers {
		if driver.UserID == userID {
			copied := *driver
			return &copied, nil
		}
	}
	return nil, repository.ErrDriverNotFound
}

func (r *memDriverRepo) RecordDelivery(_ context.Context, userID string, fee float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, driver := range r.drivers {
		if driver.UserID == userID {
			driver.TotalDeliveries++
			driver.TotalEarnings += fee
			return true, nil
		}
	}
	return false, nil
}

func (r *memDriverRepo) SetAvailability(_ context.Context, driverID string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	driver, ok := r.drivers[driverID]
	if !ok {
		return repository.ErrDriverNotFound
	}
	driver.IsAvailable = available
	return nil
}

func (r *memDriverRepo) UpdateLocation(_ context.Context, driverID string, coords models.Coords) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	driver, ok := r.drivers[driverID]
	if !ok {
		return repository.ErrDriverNotFound
	}
	driver.CurrentLocation = &coords
	return nil
}

// chanNotifier records pushed titles on a channel so tests can wait for the
// fire-and-forget dispatch.
type chanNotifier struct {
	titles chan string
}

func newChanNotifier() *chanNotifier {
	return &chanNotifier{titles: make(chan string, 10)}
}

func (n *chanNotifier) NotifyUser(_ context.Context, _ string, title string, _ string, _ map[string]string) error {
	n.titles <- title
	return nil
}

type recordingPublisher struct {
	events chan OrderEvent
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{events: make(chan OrderEvent, 10)}
}

func (p *recordingPublisher) Publish(event OrderEvent) error {
	p.events <- event
	return nil
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(s string) *string { return &s }
