package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisahtegar/foodly-app-sub000/models"
	"github.com/kisahtegar/foodly-app-sub000/repository"
)

type settlementFixture struct {
	orders      *OrderService
	assignment  *AssignmentService
	settlement  *SettlementService
	orderRepo   *memOrderRepo
	restaurants *memRestaurantRepo
	drivers     *memDriverRepo
}

func newSettlementFixture(t *testing.T) *settlementFixture {
	t.Helper()
	orderRepo := newMemOrderRepo()
	restaurants := newMemRestaurantRepo()
	drivers := newMemDriverRepo(
		&models.Driver{DriverID: "driver-1", UserID: "duser-1", IsAvailable: true},
	)
	return &settlementFixture{
		orders:      NewOrderService(orderRepo, nil),
		assignment:  NewAssignmentService(orderRepo, drivers, nil, nil),
		settlement:  NewSettlementService(orderRepo, restaurants, drivers, nil, nil),
		orderRepo:   orderRepo,
		restaurants: restaurants,
		drivers:     drivers,
	}
}

// placePicked walks an order through the happy path up to pickup:
// Placed -> Preparing -> Ready, then claimed by driver-1.
func (f *settlementFixture) placePicked(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	created, err := f.orders.PlaceOrder(ctx, "user-1", newTestOrder())
	require.NoError(t, err)

	_, err = f.orders.ProcessOrder(ctx, created.OrderID, "preparing")
	require.NoError(t, err)
	_, err = f.orders.ProcessOrder(ctx, created.OrderID, "ready")
	require.NoError(t, err)
	_, err = f.assignment.AddDriver(ctx, created.OrderID, "driver-1")
	require.NoError(t, err)
	return created.OrderID
}

func TestMarkAsDelivered_CreditsRestaurantAndDriver(t *testing.T) {
	f := newSettlementFixture(t)
	orderID := f.placePicked(t)
	ctx := context.Background()

	details, err := f.settlement.MarkAsDelivered(ctx, orderID, "duser-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, details.OrderStatus)

	restaurant, err := f.restaurants.FindByID(ctx, "rest-1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, restaurant.Earnings)

	driver, err := f.drivers.FindByID(ctx, "driver-1")
	require.NoError(t, err)
	assert.Equal(t, 1, driver.TotalDeliveries)
	assert.Equal(t, 2.0, driver.TotalEarnings)
	assert.True(t, driver.IsAvailable)
}

func TestMarkAsDelivered_RetryDoesNotDoubleCredit(t *testing.T) {
	f := newSettlementFixture(t)
	orderID := f.placePicked(t)
	ctx := context.Background()

	_, err := f.settlement.MarkAsDelivered(ctx, orderID, "duser-1")
	require.NoError(t, err)

	details, err := f.settlement.MarkAsDelivered(ctx, orderID, "duser-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, details.OrderStatus)

	restaurant, err := f.restaurants.FindByID(ctx, "rest-1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, restaurant.Earnings)

	driver, err := f.drivers.FindByID(ctx, "driver-1")
	require.NoError(t, err)
	assert.Equal(t, 1, driver.TotalDeliveries)
	assert.Equal(t, 2.0, driver.TotalEarnings)
}

func TestMarkAsDelivered_RequiresPickup(t *testing.T) {
	f := newSettlementFixture(t)
	ctx := context.Background()

	created, err := f.orders.PlaceOrder(ctx, "user-1", newTestOrder())
	require.NoError(t, err)

	_, err = f.settlement.MarkAsDelivered(ctx, created.OrderID, "duser-1")
	assert.ErrorIs(t, err, repository.ErrOrderNotPickedUp)

	restaurant, err := f.restaurants.FindByID(ctx, "rest-1")
	require.NoError(t, err)
	assert.Zero(t, restaurant.Earnings)
}

func TestMarkAsDelivered_OrderNotFound(t *testing.T) {
	f := newSettlementFixture(t)
	_, err := f.settlement.MarkAsDelivered(context.Background(), "no-such-order", "duser-1")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestMarkAsDelivered_UnknownDriverUserStillDelivers(t *testing.T) {
	f := newSettlementFixture(t)
	orderID := f.placePicked(t)
	ctx := context.Background()

	// The order still settles when no driver record matches the delivering
	// user; only the driver credit is skipped.
	details, err := f.settlement.MarkAsDelivered(ctx, orderID, "not-a-driver-user")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, details.OrderStatus)

	restaurant, err := f.restaurants.FindByID(ctx, "rest-1")
	require.NoError(t, err)
	assert.Equal(t, 20.0, restaurant.Earnings)

	driver, err := f.drivers.FindByID(ctx, "driver-1")
	require.NoError(t, err)
	assert.Zero(t, driver.TotalDeliveries)
	assert.Zero(t, driver.TotalEarnings)
}
