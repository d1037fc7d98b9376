package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID  `bson:"user_id" json:"user_id" binding:"required"`
	RestaurantID *primitive.ObjectID `bson:"restaurant_id,omitempty" json:"restaurant_id,omitempty"`
	OrderID      *primitive.ObjectID `bson:"order_id,omitempty" json:"order_id,omitempty"`
	Rating       int                 `bson:"rating" json:"rating" binding:"required,min=1,max=5"`
	Comment      string              `bson:"comment" json:"comment" binding:"required"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
}
