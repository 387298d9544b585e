package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kisahtegar/foodly-app-sub000/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoRestaurantRepository struct {
	collection *mongo.Collection
}

func NewMongoRestaurantRepository(collection *mongo.Collection) RestaurantRepository {
	return &mongoRestaurantRepository{collection: collection}
}

func (r *mongoRestaurantRepository) FindByID(ctx context.Context, restaurantID string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.collection.FindOne(ctx, bson.M{"restaurantId": restaurantID}).Decode(&restaurant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return &restaurant, nil
}

func (r *mongoRestaurantRepository) AddEarnings(ctx context.Context, restaurantID string, amount float64) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"restaurantId": restaurantID},
		bson.M{"$inc": bson.M{"earnings": amount}},
	)
	if err != nil {
		return fmt.Errorf("failed to credit restaurant earnings: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}
