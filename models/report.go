package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TopRatedRestaurant is one row of the top-rated report: review stats grouped
// by restaurant, joined back to the restaurant document.
type TopRatedRestaurant struct {
	RestaurantID primitive.ObjectID `bson:"_id" json:"restaurant_id"`
	AvgRating    float64            `bson:"avgRating" json:"avgRating"`
	Count        int64              `bson:"count" json:"count"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	Location     GeoPoint           `bson:"location" json:"location"`
	Categories   []string           `bson:"categories" json:"categories"`
}

// MostOrderedItem is one row of the most-ordered report: line-item quantities
// summed across all orders, joined back to the menu item document.
type MostOrderedItem struct {
	ItemID       primitive.ObjectID `bson:"_id" json:"item_id"`
	TotalQty     int64              `bson:"totalQty" json:"totalQty"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	Tags         []string           `bson:"tags" json:"tags"`
	RestaurantID primitive.ObjectID `bson:"restaurant_id" json:"restaurant_id"`
}
