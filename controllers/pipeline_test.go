package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestTopRatedPipeline(t *testing.T) {
	pipeline := topRatedPipeline(3)
	require.Len(t, pipeline, 6)

	group := pipeline[0][0]
	require.Equal(t, "$group", group.Key)
	spec := group.Value.(bson.M)
	assert.Equal(t, "$restaurant_id", spec["_id"])
	assert.Equal(t, bson.M{"$avg": "$rating"}, spec["avgRating"])

	assert.Equal(t, "$sort", pipeline[1][0].Key)
	assert.Equal(t, bson.M{"avgRating": -1}, pipeline[1][0].Value)

	require.Equal(t, "$limit", pipeline[2][0].Key)
	assert.Equal(t, int64(3), pipeline[2][0].Value)

	lookup := pipeline[3][0].Value.(bson.M)
	assert.Equal(t, "restaurants", lookup["from"])
	assert.Equal(t, "$unwind", pipeline[4][0].Key)
}

func TestMostOrderedPipeline(t *testing.T) {
	pipeline := mostOrderedPipeline(5)
	require.Len(t, pipeline, 7)

	require.Equal(t, "$unwind", pipeline[0][0].Key)
	assert.Equal(t, "$items", pipeline[0][0].Value)

	group := pipeline[1][0].Value.(bson.M)
	assert.Equal(t, "$items.item_id", group["_id"])
	assert.Equal(t, bson.M{"$sum": "$items.quantity"}, group["totalQty"])

	require.Equal(t, "$limit", pipeline[3][0].Key)
	assert.Equal(t, int64(5), pipeline[3][0].Value)

	lookup := pipeline[4][0].Value.(bson.M)
	assert.Equal(t, "menu_items", lookup["from"])
}
