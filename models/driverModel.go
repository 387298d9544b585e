package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Driver links a delivery account to its owning user record. Earnings and
// delivery counters are only ever moved by atomic increments at the store.
type Driver struct {
	ID              primitive.ObjectID `json:"-" bson:"_id"`
	DriverID        string             `json:"driverId" bson:"driverId"`
	UserID          string             `json:"userId" bson:"userId" validate:"required"`
	Name            string             `json:"name" bson:"name"`
	Phone           string             `json:"phone" bson:"phone"`
	VehicleType     string             `json:"vehicleType" bson:"vehicleType"`
	VehicleNumber   string             `json:"vehicleNumber" bson:"vehicleNumber"`
	IsAvailable     bool               `json:"isAvailable" bson:"isAvailable"`
	IsActive        bool               `json:"isActive" bson:"isActive"`
	Rating          float64            `json:"rating" bson:"rating"`
	TotalDeliveries int                `json:"totalDeliveries" bson:"totalDeliveries"`
	TotalEarnings   float64            `json:"totalEarnings" bson:"totalEarnings"`
	CurrentLocation *Coords            `json:"currentLocation,omitempty" bson:"currentLocation,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}
