package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Food is owned by the catalog service; joined into order reads only.
type Food struct {
	ID           primitive.ObjectID `json:"-" bson:"_id"`
	FoodID       string             `json:"foodId" bson:"foodId"`
	RestaurantID string             `json:"restaurantId" bson:"restaurantId"`
	Title        string             `json:"title" bson:"title"`
	ImageURL     string             `json:"imageUrl" bson:"imageUrl"`
	Time         string             `json:"time" bson:"time"`
	Price        float64            `json:"price" bson:"price"`
	IsAvailable  bool               `json:"isAvailable" bson:"isAvailable"`
}
