package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Address is owned by the address service; joined into order reads only.
type Address struct {
	ID           primitive.ObjectID `json:"-" bson:"_id"`
	AddressID    string             `json:"addressId" bson:"addressId"`
	UserID       string             `json:"userId" bson:"userId"`
	AddressLine1 string             `json:"addressLine1" bson:"addressLine1"`
	City         string             `json:"city" bson:"city"`
	District     string             `json:"district" bson:"district"`
	PostalCode   string             `json:"postalCode" bson:"postalCode"`
	Default      bool               `json:"default" bson:"default"`
	Latitude     float64            `json:"latitude" bson:"latitude"`
	Longitude    float64            `json:"longitude" bson:"longitude"`
}
