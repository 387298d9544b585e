package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	StatusPlaced         OrderStatus = "Placed"
	StatusPreparing      OrderStatus = "Preparing"
	StatusReady          OrderStatus = "Ready"
	StatusOutForDelivery OrderStatus = "Out_for_Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusManual         OrderStatus = "Manual"
	StatusCancelled      OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPlaced, StatusPreparing, StatusReady, StatusOutForDelivery,
		StatusDelivered, StatusManual, StatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}

type Additive struct {
	ID    string  `json:"id" bson:"id"`
	Title string  `json:"title" bson:"title"`
	Price float64 `json:"price" bson:"price"`
}

type OrderItem struct {
	FoodID       string     `json:"foodId" bson:"foodId" validate:"required"`
	Quantity     int        `json:"quantity" bson:"quantity" validate:"required,gt=0"`
	Price        float64    `json:"price" bson:"price" validate:"gte=0"`
	Additives    []Additive `json:"additives" bson:"additives"`
	Instructions string     `json:"instructions" bson:"instructions"`
}

type Order struct {
	ID              primitive.ObjectID `json:"-" bson:"_id"`
	OrderID         string             `json:"orderId" bson:"orderId"`
	UserID          string             `json:"userId" bson:"userId"`
	OrderItems      []OrderItem        `json:"orderItems" bson:"orderItems" validate:"required,min=1,dive"`
	OrderTotal      *float64           `json:"orderTotal" bson:"orderTotal" validate:"required,gte=0"`
	DeliveryFee     *float64           `json:"deliveryFee" bson:"deliveryFee" validate:"required,gte=0"`
	GrandTotal      *float64           `json:"grandTotal" bson:"grandTotal" validate:"required,gte=0"`
	DeliveryAddress string             `json:"deliveryAddress" bson:"deliveryAddress"`
	RestaurantID    string             `json:"restaurantId" bson:"restaurantId" validate:"required"`
	DriverID        *string            `json:"driverId,omitempty" bson:"driverId,omitempty"`
	PaymentMethod   string             `json:"paymentMethod" bson:"paymentMethod"`
	PaymentStatus   PaymentStatus      `json:"paymentStatus" bson:"paymentStatus"`
	OrderStatus     OrderStatus        `json:"orderStatus" bson:"orderStatus"`
	Rating          *int               `json:"rating,omitempty" bson:"rating,omitempty"`
	FeedBack        string             `json:"feedBack,omitempty" bson:"feedBack,omitempty"`
	PromoCode       string             `json:"promoCode,omitempty" bson:"promoCode,omitempty"`
	DiscountAmount  *float64           `json:"discountAmount,omitempty" bson:"discountAmount,omitempty"`
	Notes           string             `json:"notes,omitempty" bson:"notes,omitempty"`
	OrderDate       time.Time          `json:"orderDate" bson:"orderDate"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// OrderWithDetails is the populated projection returned by joined reads. The
// same shape is used by every endpoint that inlines related records, so the
// contract stays stable across the details, process, assignment and listing
// responses.
type OrderWithDetails struct {
	Order      `bson:",inline"`
	User       *UserSummary       `json:"user,omitempty" bson:"user,omitempty"`
	Restaurant *RestaurantSummary `json:"restaurant,omitempty" bson:"restaurant,omitempty"`
	Driver     *DriverSummary     `json:"driver,omitempty" bson:"driver,omitempty"`
	Address    *AddressSummary    `json:"address,omitempty" bson:"address,omitempty"`
	Foods      []FoodSummary      `json:"foods,omitempty" bson:"foods,omitempty"`
}

type UserSummary struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Profile string `json:"profile" bson:"profile"`
}

type RestaurantSummary struct {
	Title    string  `json:"title" bson:"title"`
	ImageURL string  `json:"imageUrl" bson:"imageUrl"`
	Time     string  `json:"time" bson:"time"`
	Coords   *Coords `json:"coords,omitempty" bson:"coords,omitempty"`
}

type DriverSummary struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
}

type AddressSummary struct {
	AddressLine1 string `json:"addressLine1" bson:"addressLine1"`
	City         string `json:"city" bson:"city"`
	District     string `json:"district" bson:"district"`
	PostalCode   string `json:"postalCode" bson:"postalCode"`
}

type FoodSummary struct {
	Title    string `json:"title" bson:"title"`
	ImageURL string `json:"imageUrl" bson:"imageUrl"`
	Time     string `json:"time" bson:"time"`
}
