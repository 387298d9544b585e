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

type mongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(collection *mongo.Collection) OrderRepository {
	return &mongoOrderRepository{collection: collection}
}

func (r *mongoOrderRepository) Create(ctx context.Context, order *models.Order) error {
	_, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *mongoOrderRepository) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}

func (r *mongoOrderRepository) FindDetailsByID(ctx context.Context, orderID string) (*models.OrderWithDetails, error) {
	orders, err := r.aggregateDetails(ctx, bson.M{"orderId": orderID})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}
	return &orders[0], nil
}

func (r *mongoOrderRepository) FindByUser(ctx context.Context, userID string) ([]models.OrderWithDetails, error) {
	return r.aggregateDetails(ctx, bson.M{"userId": userID})
}

func (r *mongoOrderRepository) Delete(ctx context.Context, orderID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"orderId": orderID})
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *mongoOrderRepository) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	return r.setFields(ctx, orderID, bson.M{"orderStatus": status})
}

func (r *mongoOrderRepository) UpdatePaymentStatus(ctx context.Context, orderID string, status models.PaymentStatus) error {
	return r.setFields(ctx, orderID, bson.M{"paymentStatus": status})
}

func (r *mongoOrderRepository) setFields(ctx context.Context, orderID string, fields bson.M) error {
	fields["updatedAt"] = time.Now()
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"orderId": orderID},
		bson.M{"$set": fields},
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *mongoOrderRepository) SetRating(ctx context.Context, orderID string, rating int, feedback string) error {
	filter := bson.M{
		"orderId":     orderID,
		"orderStatus": models.StatusDelivered,
		"rating":      bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{
		"rating":    rating,
		"feedBack":  feedback,
		"updatedAt": time.Now(),
	}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to rate order: %w", err)
	}
	if result.MatchedCount > 0 {
		return nil
	}

	order, err := r.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.OrderStatus != models.StatusDelivered {
		return ErrOrderNotDelivered
	}
	return ErrOrderAlreadyRated
}

func (r *mongoOrderRepository) Assign(ctx context.Context, orderID string, driverID string) error {
	filter := bson.M{
		"orderId":  orderID,
		"driverId": bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{
		"driverId":    driverID,
		"orderStatus": models.StatusOutForDelivery,
		"updatedAt":   time.Now(),
	}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to assign order: %w", err)
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// The conditional update missed: either the order does not exist, or
	// another driver claimed it first.
	count, err := r.collection.CountDocuments(ctx, bson.M{"orderId": orderID})
	if err != nil {
		return fmt.Errorf("failed to assign order: %w", err)
	}
	if count == 0 {
		return ErrOrderNotFound
	}
	return ErrOrderTaken
}

func (r *mongoOrderRepository) MarkDelivered(ctx context.Context, orderID string) (bool, error) {
	filter := bson.M{
		"orderId":     orderID,
		"orderStatus": models.StatusOutForDelivery,
	}
	update := bson.M{"$set": bson.M{
		"orderStatus": models.StatusDelivered,
		"updatedAt":   time.Now(),
	}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to mark order delivered: %w", err)
	}
	if result.MatchedCount > 0 {
		return true, nil
	}

	order, err := r.FindByID(ctx, orderID)
	if err != nil {
		return false, err
	}
	if order.OrderStatus == models.StatusDelivered {
		// Retry of an already settled delivery; report it as a no-op so the
		// caller does not credit earnings a second time.
		return false, nil
	}
	return false, ErrOrderNotPickedUp
}

func (r *mongoOrderRepository) FindByRestaurant(ctx context.Context, restaurantID string, status models.OrderStatus) ([]models.OrderWithDetails, error) {
	return r.aggregateDetails(ctx, bson.M{
		"restaurantId":  restaurantID,
		"orderStatus":   status,
		"paymentStatus": bson.M{"$in": bson.A{models.PaymentCompleted, models.PaymentPending}},
	})
}

func (r *mongoOrderRepository) FindByDriver(ctx context.Context, driverID string, status models.OrderStatus) ([]models.OrderWithDetails, error) {
	return r.aggregateDetails(ctx, bson.M{
		"driverId":    driverID,
		"orderStatus": status,
	})
}

func (r *mongoOrderRepository) FindByStatus(ctx context.Context, status models.OrderStatus) ([]models.OrderWithDetails, error) {
	return r.aggregateDetails(ctx, bson.M{
		"orderStatus":   status,
		"paymentStatus": models.PaymentCompleted,
	})
}

func (r *mongoOrderRepository) aggregateDetails(ctx context.Context, match bson.M) ([]models.OrderWithDetails, error) {
	cursor, err := r.collection.Aggregate(ctx, detailsPipeline(match))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.OrderWithDetails
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// detailsPipeline joins the order with its user, restaurant, driver, delivery
// address and food records, trimmed down to the OrderWithDetails projection.
func detailsPipeline(match bson.M) mongo.Pipeline {
	matchStage := bson.D{{Key: "$match", Value: match}}

	lookupUser := lookupStage("user", "userId", "userId", "user")
	unwindUser := unwindStage("$user")

	lookupRestaurant := lookupStage("restaurant", "restaurantId", "restaurantId", "restaurant")
	unwindRestaurant := unwindStage("$restaurant")

	lookupDriver := lookupStage("driver", "driverId", "driverId", "driver")
	unwindDriver := unwindStage("$driver")

	lookupAddress := lookupStage("address", "deliveryAddress", "addressId", "address")
	unwindAddress := unwindStage("$address")

	lookupFoods := lookupStage("food", "orderItems.foodId", "foodId", "foods")

	projectStage := bson.D{{Key: "$project", Value: bson.D{
		{Key: "orderId", Value: 1},
		{Key: "userId", Value: 1},
		{Key: "orderItems", Value: 1},
		{Key: "orderTotal", Value: 1},
		{Key: "deliveryFee", Value: 1},
		{Key: "grandTotal", Value: 1},
		{Key: "deliveryAddress", Value: 1},
		{Key: "restaurantId", Value: 1},
		{Key: "driverId", Value: 1},
		{Key: "paymentMethod", Value: 1},
		{Key: "paymentStatus", Value: 1},
		{Key: "orderStatus", Value: 1},
		{Key: "rating", Value: 1},
		{Key: "feedBack", Value: 1},
		{Key: "promoCode", Value: 1},
		{Key: "discountAmount", Value: 1},
		{Key: "notes", Value: 1},
		{Key: "orderDate", Value: 1},
		{Key: "createdAt", Value: 1},
		{Key: "updatedAt", Value: 1},
		{Key: "user", Value: bson.D{
			{Key: "name", Value: "$user.name"},
			{Key: "email", Value: "$user.email"},
			{Key: "phone", Value: "$user.phone"},
			{Key: "profile", Value: "$user.profile"},
		}},
		{Key: "restaurant", Value: bson.D{
			{Key: "title", Value: "$restaurant.title"},
			{Key: "imageUrl", Value: "$restaurant.imageUrl"},
			{Key: "time", Value: "$restaurant.time"},
			{Key: "coords", Value: "$restaurant.coords"},
		}},
		{Key: "driver", Value: bson.D{
			{Key: "name", Value: "$driver.name"},
			{Key: "phone", Value: "$driver.phone"},
		}},
		{Key: "address", Value: bson.D{
			{Key: "addressLine1", Value: "$address.addressLine1"},
			{Key: "city", Value: "$address.city"},
			{Key: "district", Value: "$address.district"},
			{Key: "postalCode", Value: "$address.postalCode"},
		}},
		{Key: "foods", Value: bson.D{{Key: "$map", Value: bson.D{
			{Key: "input", Value: "$foods"},
			{Key: "as", Value: "food"},
			{Key: "in", Value: bson.D{
				{Key: "title", Value: "$$food.title"},
				{Key: "imageUrl", Value: "$$food.imageUrl"},
				{Key: "time", Value: "$$food.time"},
			}},
		}}}},
	}}}

	return mongo.Pipeline{
		matchStage,
		lookupUser,
		unwindUser,
		lookupRestaurant,
		unwindRestaurant,
		lookupDriver,
		unwindDriver,
		lookupAddress,
		unwindAddress,
		lookupFoods,
		projectStage,
	}
}

func lookupStage(from string, localField string, foreignField string, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	}}}
}

func unwindStage(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: path},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
}
