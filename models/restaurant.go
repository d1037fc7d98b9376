package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// GeoPoint is a GeoJSON Point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type" binding:"required,eq=Point"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates" binding:"required,len=2"`
}

type Restaurant struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" binding:"required"`
	Description string             `bson:"description" json:"description" binding:"required"`
	Location    GeoPoint           `bson:"location" json:"location" binding:"required"`
	Categories  []string           `bson:"categories" json:"categories" binding:"required"`
}
