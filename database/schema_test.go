package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func jsonSchema(t *testing.T, validator bson.M) bson.M {
	t.Helper()
	schema, ok := validator["$jsonSchema"].(bson.M)
	require.True(t, ok)
	return schema
}

func TestRestaurantSchema(t *testing.T) {
	schema := jsonSchema(t, RestaurantSchema())

	assert.ElementsMatch(t, bson.A{"name", "location", "description", "categories"}, schema["required"])

	location := schema["properties"].(bson.M)["location"].(bson.M)
	coords := location["properties"].(bson.M)["coordinates"].(bson.M)
	assert.Equal(t, 2, coords["minItems"])
	assert.Equal(t, 2, coords["maxItems"])
	assert.Equal(t, bson.A{"Point"}, location["properties"].(bson.M)["type"].(bson.M)["enum"])
}

func TestUserSchema(t *testing.T) {
	schema := jsonSchema(t, UserSchema())

	assert.ElementsMatch(t, bson.A{"username", "email", "created_at"}, schema["required"])
	email := schema["properties"].(bson.M)["email"].(bson.M)
	assert.Equal(t, "^.+@.+$", email["pattern"])
}

func TestOrderSchema(t *testing.T) {
	schema := jsonSchema(t, OrderSchema())

	assert.ElementsMatch(t,
		bson.A{"user_id", "restaurant_id", "items", "status", "created_at"},
		schema["required"])

	status := schema["properties"].(bson.M)["status"].(bson.M)
	assert.ElementsMatch(t, bson.A{"pending", "completed", "cancelled"}, status["enum"])

	lineItem := schema["properties"].(bson.M)["items"].(bson.M)["items"].(bson.M)
	assert.ElementsMatch(t, bson.A{"item_id", "quantity", "unit_price"}, lineItem["required"])
}

func TestReviewSchema(t *testing.T) {
	schema := jsonSchema(t, ReviewSchema())

	rating := schema["properties"].(bson.M)["rating"].(bson.M)
	assert.Equal(t, 1, rating["minimum"])
	assert.Equal(t, 5, rating["maximum"])
}

func TestUserIndexes_EmailIsUnique(t *testing.T) {
	indexes := UserIndexes()
	require.NotEmpty(t, indexes)

	email := indexes[0]
	require.NotNil(t, email.Options)
	require.NotNil(t, email.Options.Unique)
	assert.True(t, *email.Options.Unique)
}

func TestRestaurantIndexes(t *testing.T) {
	indexes := RestaurantIndexes()
	require.Len(t, indexes, 4)

	text := indexes[0].Keys.(bson.D)
	assert.Equal(t, "text", text[0].Value)
	assert.Equal(t, "text", text[1].Value)

	geo := indexes[1].Keys.(bson.D)
	assert.Equal(t, "location", geo[0].Key)
	assert.Equal(t, "2dsphere", geo[0].Value)
}

func TestCollectionNames(t *testing.T) {
	assert.Equal(t, []string{"restaurants", "users", "menu_items", "orders", "reviews"}, CollectionNames)
}
