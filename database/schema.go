package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionNames lists every validated collection, in creation order.
var CollectionNames = []string{"restaurants", "users", "menu_items", "orders", "reviews"}

func RestaurantSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"name", "location", "description", "categories"},
			"properties": bson.M{
				"name":        bson.M{"bsonType": "string"},
				"description": bson.M{"bsonType": "string"},
				"location": bson.M{
					"bsonType": "object",
					"required": bson.A{"type", "coordinates"},
					"properties": bson.M{
						"type": bson.M{"enum": bson.A{"Point"}},
						"coordinates": bson.M{
							"bsonType": "array",
							"items":    bson.M{"bsonType": "double"},
							"minItems": 2,
							"maxItems": 2,
						},
					},
				},
				"categories": bson.M{
					"bsonType": "array",
					"items":    bson.M{"bsonType": "string"},
				},
			},
		},
	}
}

func UserSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"username", "email", "created_at"},
			"properties": bson.M{
				"username":   bson.M{"bsonType": "string"},
				"email":      bson.M{"bsonType": "string", "pattern": "^.+@.+$"},
				"created_at": bson.M{"bsonType": "date"},
			},
		},
	}
}

func MenuItemSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"restaurant_id", "name", "price", "tags"},
			"properties": bson.M{
				"restaurant_id": bson.M{"bsonType": "objectId"},
				"name":          bson.M{"bsonType": "string"},
				"description":   bson.M{"bsonType": "string"},
				"price":         bson.M{"bsonType": "double"},
				"tags": bson.M{
					"bsonType": "array",
					"items":    bson.M{"bsonType": "string"},
				},
			},
		},
	}
}

func OrderSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"user_id", "restaurant_id", "items", "status", "created_at"},
			"properties": bson.M{
				"user_id":       bson.M{"bsonType": "objectId"},
				"restaurant_id": bson.M{"bsonType": "objectId"},
				"items": bson.M{
					"bsonType": "array",
					"items": bson.M{
						"bsonType": "object",
						"required": bson.A{"item_id", "quantity", "unit_price"},
						"properties": bson.M{
							"item_id":    bson.M{"bsonType": "objectId"},
							"quantity":   bson.M{"bsonType": "int"},
							"unit_price": bson.M{"bsonType": "double"},
						},
					},
				},
				"status":     bson.M{"enum": bson.A{"pending", "completed", "cancelled"}},
				"created_at": bson.M{"bsonType": "date"},
			},
		},
	}
}

func ReviewSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"user_id", "rating", "comment", "created_at"},
			"properties": bson.M{
				"user_id":       bson.M{"bsonType": "objectId"},
				"restaurant_id": bson.M{"bsonType": "objectId"},
				"order_id":      bson.M{"bsonType": "objectId"},
				"rating":        bson.M{"bsonType": "int", "minimum": 1, "maximum": 5},
				"comment":       bson.M{"bsonType": "string"},
				"created_at":    bson.M{"bsonType": "date"},
			},
		},
	}
}

// SetupCollections drops and recreates every collection with its validator.
// Documents violating a validator are rejected by the server at write time.
func SetupCollections(ctx context.Context) error {
	schemas := map[string]bson.M{
		"restaurants": RestaurantSchema(),
		"users":       UserSchema(),
		"menu_items":  MenuItemSchema(),
		"orders":      OrderSchema(),
		"reviews":     ReviewSchema(),
	}

	for _, name := range CollectionNames {
		if err := DB.Collection(name).Drop(ctx); err != nil {
			return err
		}
		opts := options.CreateCollection().SetValidator(schemas[name])
		if err := DB.CreateCollection(ctx, name, opts); err != nil {
			return err
		}
	}
	return nil
}

// RestaurantIndexes: text over name+description, 2dsphere on location, and
// the sort/filter patterns used by list queries.
func RestaurantIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}}},
		{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		{Keys: bson.D{{Key: "categories", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}, {Key: "categories", Value: 1}}},
	}
}

func UserIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "username", Value: 1}}},
	}
}

func MenuItemIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: "text"}}},
		{Keys: bson.D{{Key: "restaurant_id", Value: 1}}},
	}
}

func OrderIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "status", Value: 1}}},
	}
}

func ReviewIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "rating", Value: 1}}},
		{Keys: bson.D{{Key: "restaurant_id", Value: 1}, {Key: "rating", Value: -1}}},
	}
}

func CreateIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		"restaurants": RestaurantIndexes(),
		"users":       UserIndexes(),
		"menu_items":  MenuItemIndexes(),
		"orders":      OrderIndexes(),
		"reviews":     ReviewIndexes(),
	}

	for _, name := range CollectionNames {
		if _, err := DB.Collection(name).Indexes().CreateMany(ctx, indexes[name]); err != nil {
			return err
		}
	}
	return nil
}
