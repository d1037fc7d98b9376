package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"restaurant-api/database"
	"restaurant-api/models"
)

// topRatedPipeline groups reviews by restaurant, averages the ratings, and
// joins the surviving groups back to the restaurants collection. The unwind
// after the lookup gives inner-join semantics: restaurants with no reviews
// never appear.
func topRatedPipeline(limit int64) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":       "$restaurant_id",
			"avgRating": bson.M{"$avg": "$rating"},
			"count":     bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"avgRating": -1}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "restaurants",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "restaurant_info",
		}}},
		{{Key: "$unwind", Value: "$restaurant_info"}},
		{{Key: "$project", Value: bson.M{
			"avgRating":   1,
			"count":       1,
			"name":        "$restaurant_info.name",
			"description": "$restaurant_info.description",
			"location":    "$restaurant_info.location",
			"categories":  "$restaurant_info.categories",
		}}},
	}
}

// mostOrderedPipeline flattens order line items and sums quantities per menu
// item across orders of every status, cancelled included.
func mostOrderedPipeline(limit int64) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$items.item_id",
			"totalQty": bson.M{"$sum": "$items.quantity"},
		}}},
		{{Key: "$sort", Value: bson.M{"totalQty": -1}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "menu_items",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "item_info",
		}}},
		{{Key: "$unwind", Value: "$item_info"}},
		{{Key: "$project", Value: bson.M{
			"totalQty":      1,
			"name":          "$item_info.name",
			"description":   "$item_info.description",
			"price":         "$item_info.price",
			"tags":          "$item_info.tags",
			"restaurant_id": "$item_info.restaurant_id",
		}}},
	}
}

func TopRatedRestaurants(c *gin.Context) {
	limit := limitParam(c, 10)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.ReviewCollection.Aggregate(ctx, topRatedPipeline(limit))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var results []models.TopRatedRestaurant = []models.TopRatedRestaurant{}
	if err := cursor.All(ctx, &results); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": results})
}

func MostOrderedMenuItems(c *gin.Context) {
	limit := limitParam(c, 10)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.OrderCollection.Aggregate(ctx, mostOrderedPipeline(limit))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var results []models.MostOrderedItem = []models.MostOrderedItem{}
	if err := cursor.All(ctx, &results); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Fetch success", "data": results})
}

func CountReviews(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	total, err := database.ReviewCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_reviews": total})
}

func DistinctCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categories, err := database.RestaurantCollection.Distinct(ctx, "categories", bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"distinct_categories": categories})
}
