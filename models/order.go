package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem snapshots the menu item's price at order time; it is never
// recomputed when the menu item changes.
type OrderItem struct {
	ItemID    primitive.ObjectID `bson:"item_id" json:"item_id" binding:"required"`
	Quantity  int                `bson:"quantity" json:"quantity" binding:"required,min=1"`
	UnitPrice float64            `bson:"unit_price" json:"unit_price" binding:"gte=0"`
}

type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"user_id" json:"user_id" binding:"required"`
	RestaurantID primitive.ObjectID `bson:"restaurant_id" json:"restaurant_id" binding:"required"`
	Items        []OrderItem        `bson:"items" json:"items" binding:"required,dive"`
	Status       string             `bson:"status" json:"status" binding:"required,oneof=pending completed cancelled"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
