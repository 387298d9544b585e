package services

import (
	"context"

	"github.com/kisahtegar/foodly-app-sub000/models"
	"github.com/kisahtegar/foodly-app-sub000/repository"
)

type ListingService struct {
	orders repository.OrderRepository
}

func NewListingService(orders repository.OrderRepository) *ListingService {
	return &ListingService{orders: orders}
}

// GetRestaurantOrders lists a restaurant's queue for a status keyword,
// restricted to orders whose payment is Pending or Completed.
func (s *ListingService) GetRestaurantOrders(ctx context.Context, restaurantID string, statusKeyword string) ([]models.OrderWithDetails, error) {
	status, err := ParseStatusKeyword(statusKeyword)
	if err != nil {
		return nil, err
	}
	return s.orders.FindByRestaurant(ctx, restaurantID, status)
}

// GetNearbyOrders lists paid orders in the given status for driver pickup.
// Despite the name there is no radius filter: distance and ETA are computed
// client-side against the maps provider.
func (s *ListingService) GetNearbyOrders(ctx context.Context, statusKeyword string) ([]models.OrderWithDetails, error) {
	status, err := ParseStatusKeyword(statusKeyword)
	if err != nil {
		return nil, err
	}
	return s.orders.FindByStatus(ctx, status)
}
