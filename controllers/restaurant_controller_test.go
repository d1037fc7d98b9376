package controllers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"restaurant-api/models"
)

func restaurantDoc(id primitive.ObjectID, name string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "description", Value: "seasonal plates"},
		{Key: "location", Value: bson.D{
			{Key: "type", Value: "Point"},
			{Key: "coordinates", Value: bson.A{-90.5, 14.6}},
		}},
		{Key: "categories", Value: bson.A{"vegan", "italian"}},
	}
}

func TestListRestaurants(t *testing.T) {
	mt := newMockTest(t)

	mt.Run("returns every batch of the cursor", func(mt *mtest.T) {
		r := setupRouter(mt)

		first := mtest.CreateCursorResponse(1, ns(mt, "restaurants"), mtest.FirstBatch,
			restaurantDoc(primitive.NewObjectID(), "Golden Fork Bistro"))
		second := mtest.CreateCursorResponse(1, ns(mt, "restaurants"), mtest.NextBatch,
			restaurantDoc(primitive.NewObjectID(), "Blue Kettle Grill"))
		killCursors := mtest.CreateCursorResponse(0, ns(mt, "restaurants"), mtest.NextBatch)
		mt.AddMockResponses(first, second, killCursors)

		w := perform(r, http.MethodGet, "/restaurants?sort_by=name&order=1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []models.Restaurant `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "Golden Fork Bistro", resp.Data[0].Name)
		assert.Equal(t, []float64{-90.5, 14.6}, resp.Data[0].Location.Coordinates)
	})
}

func TestCreateRestaurant(t *testing.T) {
	mt := newMockTest(t)

	mt.Run("assigns a fresh id", func(mt *mtest.T) {
		r := setupRouter(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		body := `{
			"name": "Golden Fork Bistro",
			"description": "seasonal plates",
			"location": {"type": "Point", "coordinates": [-90.5, 14.6]},
			"categories": ["vegan"]
		}`
		w := perform(r, http.MethodPost, "/restaurants", strings.NewReader(body))
		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Data models.Restaurant `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Data.ID.IsZero())
	})

	mt.Run("rejects a location without exactly two coordinates", func(mt *mtest.T) {
		r := setupRouter(mt)

		body := `{
			"name": "Golden Fork Bistro",
			"description": "seasonal plates",
			"location": {"type": "Point", "coordinates": [-90.5, 14.6, 3.2]},
			"categories": ["vegan"]
		}`
		w := perform(r, http.MethodPost, "/restaurants", strings.NewReader(body))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetRestaurant(t *testing.T) {
	mt := newMockTest(t)

	mt.Run("returns the stored document", func(mt *mtest.T) {
		r := setupRouter(mt)

		restID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns(mt, "restaurants"), mtest.FirstBatch,
			restaurantDoc(restID, "Golden Fork Bistro")))

		w := perform(r, http.MethodGet, "/restaurants/"+restID.Hex(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data models.Restaurant `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, restID, resp.Data.ID)
		assert.Equal(t, []string{"vegan", "italian"}, resp.Data.Categories)
	})
}

func TestUpdateRestaurant(t *testing.T) {
	mt := newMockTest(t)

	mt.Run("sets only the supplied fields", func(mt *mtest.T) {
		r := setupRouter(mt)

		restID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "value", Value: restaurantDoc(restID, "Renamed Bistro")},
		))

		w := perform(r, http.MethodPut, "/restaurants/"+restID.Hex(),
			strings.NewReader(`{"name":"Renamed Bistro"}`))
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data models.Restaurant `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Renamed Bistro", resp.Data.Name)
	})

	mt.Run("empty body is rejected", func(mt *mtest.T) {
		r := setupRouter(mt)

		w := perform(r, http.MethodPut, "/restaurants/"+primitive.NewObjectID().Hex(),
			strings.NewReader(`{}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteRestaurant_NotFound(t *testing.T) {
	mt := newMockTest(t)

	mt.Run("zero deletions map to 404", func(mt *mtest.T) {
		r := setupRouter(mt)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		w := perform(r, http.MethodDelete, "/restaurants/"+primitive.NewObjectID().Hex(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
