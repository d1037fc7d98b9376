package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RestaurantID primitive.ObjectID `bson:"restaurant_id" json:"restaurant_id" binding:"required"`
	Name         string             `bson:"name" json:"name" binding:"required"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price" json:"price" binding:"gte=0"`
	Tags         []string           `bson:"tags" json:"tags" binding:"required"`
}
