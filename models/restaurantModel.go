package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Coords struct {
	Latitude       float64 `json:"latitude" bson:"latitude"`
	Longitude      float64 `json:"longitude" bson:"longitude"`
	Address        string  `json:"address" bson:"address"`
	Title          string  `json:"title" bson:"title"`
	LatitudeDelta  float64 `json:"latitudeDelta,omitempty" bson:"latitudeDelta,omitempty"`
	LongitudeDelta float64 `json:"longitudeDelta,omitempty" bson:"longitudeDelta,omitempty"`
}

// Restaurant is owned by the catalog service; this backend only reads it for
// population and credits earnings on delivery settlement.
type Restaurant struct {
	ID           primitive.ObjectID `json:"-" bson:"_id"`
	RestaurantID string             `json:"restaurantId" bson:"restaurantId"`
	OwnerID      string             `json:"ownerId" bson:"ownerId"`
	Title        string             `json:"title" bson:"title" validate:"required"`
	ImageURL     string             `json:"imageUrl" bson:"imageUrl"`
	LogoURL      string             `json:"logoUrl" bson:"logoUrl"`
	Time         string             `json:"time" bson:"time"`
	Code         string             `json:"code" bson:"code"`
	IsAvailable  bool               `json:"isAvailable" bson:"isAvailable"`
	Rating       float64            `json:"rating" bson:"rating"`
	RatingCount  int                `json:"ratingCount" bson:"ratingCount"`
	Earnings     float64            `json:"earnings" bson:"earnings"`
	Coords       *Coords            `json:"coords,omitempty" bson:"coords,omitempty"`
}
