package services

import (
	"fmt"
	"strings"

	"github.com/kisahtegar/foodly-app-sub000/models"
)

// allowedTransitions is the order lifecycle:
//
//	Placed -> Preparing -> Ready -> Out_for_Delivery -> Delivered
//
// with Cancelled reachable from every non-terminal state and Manual from the
// delivery leg. Delivered, Cancelled and Manual are terminal.
var allowedTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPlaced:         {models.StatusPreparing, models.StatusCancelled},
	models.StatusPreparing:      {models.StatusReady, models.StatusCancelled},
	models.StatusReady:          {models.StatusOutForDelivery, models.StatusManual, models.StatusCancelled},
	models.StatusOutForDelivery: {models.StatusDelivered, models.StatusManual, models.StatusCancelled},
	models.StatusDelivered:      nil,
	models.StatusCancelled:      nil,
	models.StatusManual:         nil,
}

func CanTransition(from models.OrderStatus, to models.OrderStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

var statusKeywords = map[string]models.OrderStatus{
	"placed":           models.StatusPlaced,
	"preparing":        models.StatusPreparing,
	"ready":            models.StatusReady,
	"out_for_delivery": models.StatusOutForDelivery,
	"delivered":        models.StatusDelivered,
	"manual":           models.StatusManual,
	"cancelled":        models.StatusCancelled,
}

// ParseStatusKeyword maps an external status keyword ("placed",
// "out_for_delivery", ...) to the internal enum value. Unknown keywords are
// rejected rather than silently mapped.
func ParseStatusKeyword(keyword string) (models.OrderStatus, error) {
	status, ok := statusKeywords[strings.ToLower(keyword)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, keyword)
	}
	return status, nil
}

// ParsePickedStatus accepts only the statuses a driver queue can be filtered
// by: the delivery leg and its terminal outcomes.
func ParsePickedStatus(keyword string) (models.OrderStatus, error) {
	status, err := ParseStatusKeyword(keyword)
	if err != nil {
		return "", err
	}
	switch status {
	case models.StatusOutForDelivery, models.StatusDelivered, models.StatusManual, models.StatusCancelled:
		return status, nil
	}
	return "", fmt.Errorf("%w: %q is not a driver queue status", ErrInvalidStatus, keyword)
}
