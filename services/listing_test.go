package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisahtegar/foodly-app-sub000/models"
)

func TestGetRestaurantOrders(t *testing.T) {
	ctx := context.Background()
	repo := newMemOrderRepo()
	orders := NewOrderService(repo, nil)
	listing := NewListingService(repo)

	placed, err := orders.PlaceOrder(ctx, "user-1", newTestOrder())
	require.NoError(t, err)

	other := newTestOrder()
	other.RestaurantID = "rest-2"
	_, err = orders.PlaceOrder(ctx, "user-2", other)
	require.NoError(t, err)

	results, err := listing.GetRestaurantOrders(ctx, "rest-1", "placed")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, placed.OrderID, results[0].OrderID)

	// Status filter matches the parsed keyword, not everything.
	empty, err := listing.GetRestaurantOrders(ctx, "rest-1", "ready")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGetRestaurantOrders_ExcludesFailedPayments(t *testing.T) {
	ctx := context.Background()
	repo := newMemOrderRepo()
	orders := NewOrderService(repo, nil)
	listing := NewListingService(repo)

	placed, err := orders.PlaceOrder(ctx, "user-1", newTestOrder())
	require.NoError(t, err)
	require.NoError(t, repo.UpdatePaymentStatus(ctx, placed.OrderID, models.PaymentFailed))

	results, err := listing.GetRestaurantOrders(ctx, "rest-1", "placed")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGetRestaurantOrders_RejectsUnknownStatus(t *testing.T) {
	listing := NewListingService(newMemOrderRepo())
	_, err := listing.GetRestaurantOrders(context.Background(), "rest-1", "cooking")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetNearbyOrders(t *testing.T) {
	ctx := context.Background()
	repo := newMemOrderRepo()
	orders := NewOrderService(repo, nil)
	listing := NewListingService(repo)

	paid, err := orders.PlaceOrder(ctx, "user-1", newTestOrder())
	require.NoError(t, err)
	require.NoError(t, repo.UpdatePaymentStatus(ctx, paid.OrderID, models.PaymentCompleted))
	require.NoError(t, repo.UpdateStatus(ctx, paid.OrderID, models.StatusReady))

	// Unpaid order stays invisible to drivers.
	unpaid, err := orders.PlaceOrder(ctx, "user-2", newTestOrder())
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(ctx, unpaid.OrderID, models.StatusReady))

	results, err := listing.GetNearbyOrders(ctx, "ready")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, paid.OrderID, results[0].OrderID)
}

func TestGetNearbyOrders_RejectsUnknownStatus(t *testing.T) {
	listing := NewListingService(newMemOrderRepo())
	_, err := listing.GetNearbyOrders(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
