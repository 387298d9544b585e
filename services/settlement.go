package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/kisahtegar/foodly-app-sub000/models"
	"github.com/kisahtegar/foodly-app-sub000/repository"
)

type SettlementService struct {
	orders      repository.OrderRepository
	restaurants repository.RestaurantRepository
	drivers     repository.DriverRepository
	locations   *LocationStore
	dispatcher  *Dispatcher
}

func NewSettlementService(orders repository.OrderRepository, restaurants repository.RestaurantRepository, drivers repository.DriverRepository, locations *LocationStore, dispatcher *Dispatcher) *SettlementService {
	return &SettlementService{
		orders:      orders,
		restaurants: restaurants,
		drivers:     drivers,
		locations:   locations,
		dispatcher:  dispatcher,
	}
}

// MarkAsDelivered completes a delivery: the order transition commits first,
// then the restaurant is credited with the order total and the driver record
// owned by driverUserID gets its delivery counter and fee earnings. All
// credits are atomic increments. A retry of an already delivered order
// returns the order without crediting anything again.
func (s *SettlementService) MarkAsDelivered(ctx context.Context, orderID string, driverUserID string) (*models.OrderWithDetails, error) {
	settled, err := s.orders.MarkDelivered(ctx, orderID)
	if err != nil {
		return nil, err
	}

	details, err := s.orders.FindDetailsByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !settled {
		log.WithFields(log.Fields{"orderId": orderID}).Info("Delivery already settled, skipping credits")
		return details, nil
	}

	orderTotal := 0.0
	if details.OrderTotal != nil {
		orderTotal = *details.OrderTotal
	}
	deliveryFee := 0.0
	if details.DeliveryFee != nil {
		deliveryFee = *details.DeliveryFee
	}

	if err := s.restaurants.AddEarnings(ctx, details.RestaurantID, orderTotal); err != nil {
		// The order is already Delivered at this point; surface the failure
		// so the missing credit can be reconciled.
		log.WithFields(log.Fields{
			"orderId":      orderID,
			"restaurantId": details.RestaurantID,
			"amount":       orderTotal,
		}).WithError(err).Error("Restaurant credit failed after delivery commit")
		return nil, err
	}

	found, err := s.drivers.RecordDelivery(ctx, driverUserID, deliveryFee)
	if err != nil {
		log.WithFields(log.Fields{
			"orderId": orderID,
			"userId":  driverUserID,
			"fee":     deliveryFee,
		}).WithError(err).Error("Driver credit failed after delivery commit")
		return nil, err
	}
	if !found {
		log.WithFields(log.Fields{"userId": driverUserID}).Warn("No driver record for delivering user, skipping driver credit")
	}

	if details.DriverID != nil {
		if err := s.drivers.SetAvailability(ctx, *details.DriverID, true); err != nil {
			log.WithFields(log.Fields{"driverId": *details.DriverID}).WithError(err).Warn("Could not mark driver available")
		}
		if s.locations != nil {
			if err := s.locations.SetAvailable(ctx, *details.DriverID, true); err != nil {
				log.WithFields(log.Fields{"driverId": *details.DriverID}).WithError(err).Warn("Could not update live availability")
			}
		}
	}

	log.WithFields(log.Fields{
		"orderId":      orderID,
		"restaurantId": details.RestaurantID,
		"orderTotal":   orderTotal,
		"deliveryFee":  deliveryFee,
	}).Info("Delivery settled")

	s.dispatcher.NotifyUser(details.UserID, "Order delivered",
		"Enjoy your meal! Tell us how it went.", map[string]string{
			"orderId":     orderID,
			"orderStatus": string(models.StatusDelivered),
		})
	s.dispatcher.PublishEvent(NewOrderEvent(EventOrderDelivered, &details.Order))
	s.dispatcher.Broadcast("orderDelivered", details)
	return details, nil
}
