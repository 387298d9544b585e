package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kisahtegar/foodly-app-sub000/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoDriverRepository struct {
	collection *mongo.Collection
}

func NewMongoDriverRepository(collection *mongo.Collection) DriverRepository {
	return &mongoDriverRepository{collection: collection}
}

func (r *mongoDriverRepository) FindByID(ctx context.Context, driverID string) (*models.Driver, error) {
	return r.findOne(ctx, bson.M{"driverId": driverID})
}

func (r *mongoDriverRepository) FindByUser(ctx context.Context, userID string) (*models.Driver, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *mongoDriverRepository) findOne(ctx context.Context, filter bson.M) (*models.Driver, error) {
	var driver models.Driver
	err := r.collection.FindOne(ctx, filter).Decode(&driver)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

func (r *mongoDriverRepository) RecordDelivery(ctx context.Context, userID string, fee float64) (bool, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"userId": userID},
		bson.M{
			"$inc": bson.M{
				"totalDeliveries": 1,
				"totalEarnings":   fee,
			},
			"$set": bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return false, fmt.Errorf("failed to record delivery: %w", err)
	}
	return result.MatchedCount > 0, nil
}

func (r *mongoDriverRepository) SetAvailability(ctx context.Context, driverID string, available bool) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"driverId": driverID},
		bson.M{"$set": bson.M{
			"isAvailable": available,
			"updatedAt":   time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update driver availability: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrDriverNotFound
	}
	return nil
}

func (r *mongoDriverRepository) UpdateLocation(ctx context.Context, driverID string, coords models.Coords) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"driverId": driverID},
		bson.M{"$set": bson.M{
			"currentLocation": coords,
			"updatedAt":       time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update driver location: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrDriverNotFound
	}
	return nil
}
