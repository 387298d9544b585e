package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/kisahtegar/foodly-app-sub000/models"
	"github.com/kisahtegar/foodly-app-sub000/repository"
)

type AssignmentService struct {
	orders     repository.OrderRepository
	drivers    repository.DriverRepository
	locations  *LocationStore
	dispatcher *Dispatcher
}

func NewAssignmentService(orders repository.OrderRepository, drivers repository.DriverRepository, locations *LocationStore, dispatcher *Dispatcher) *AssignmentService {
	return &AssignmentService{orders: orders, drivers: drivers, locations: locations, dispatcher: dispatcher}
}

// AddDriver claims the order for the driver. The claim is a conditional
// update on an unset driverId, so of two racing drivers exactly one wins;
// the loser gets repository.ErrOrderTaken.
func (s *AssignmentService) AddDriver(ctx context.Context, orderID string, driverID string) (*models.OrderWithDetails, error) {
	if err := s.orders.Assign(ctx, orderID, driverID); err != nil {
		return nil, err
	}

	details, err := s.orders.FindDetailsByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// The driver is busy until the delivery settles. Availability is
	// advisory, so a failure here is logged and the claim stands.
	if err := s.drivers.SetAvailability(ctx, driverID, false); err != nil {
		log.WithFields(log.Fields{"driverId": driverID}).WithError(err).Warn("Could not mark driver busy")
	}
	if s.locations != nil {
		if err := s.locations.SetAvailable(ctx, driverID, false); err != nil {
			log.WithFields(log.Fields{"driverId": driverID}).WithError(err).Warn("Could not update live availability")
		}
	}

	log.WithFields(log.Fields{"orderId": orderID, "driverId": driverID}).Info("Order assigned to driver")

	s.dispatcher.NotifyUser(details.UserID, "Order update",
		"A driver picked up your order and is on the way", map[string]string{
			"orderId":     orderID,
			"orderStatus": string(models.StatusOutForDelivery),
		})
	s.dispatcher.PublishEvent(NewOrderEvent(EventOrderAssigned, &details.Order))
	s.dispatcher.Broadcast("orderAssigned", details)
	return details, nil
}

// GetPickedOrders lists a driver's queue for one of the delivery-leg
// statuses. Unknown status keywords fail closed.
func (s *AssignmentService) GetPickedOrders(ctx context.Context, statusKeyword string, driverID string) ([]models.OrderWithDetails, error) {
	status, err := ParsePickedStatus(statusKeyword)
	if err != nil {
		return nil, err
	}
	return s.orders.FindByDriver(ctx, driverID, status)
}
