package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User records are issued and maintained by the identity service; this backend
// reads them for population and role checks only.
type User struct {
	ID        primitive.ObjectID `json:"-" bson:"_id"`
	UserID    string             `json:"userId" bson:"userId"`
	Name      string             `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Email     string             `json:"email" bson:"email" validate:"email,required"`
	Phone     string             `json:"phone" bson:"phone"`
	Profile   string             `json:"profile" bson:"profile"`
	UserType  string             `json:"userType" bson:"userType" validate:"required,eq=Client|eq=Vendor|eq=Driver|eq=Admin"`
	FCMToken  string             `json:"fcmToken,omitempty" bson:"fcmToken,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
