package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDownloadRestaurantImage(t *testing.T) {
	mt := newMockTest(t)

	mt.Run("missing blob returns 404", func(mt *mtest.T) {
		r := setupRouter(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt, "fs.files"), mtest.FirstBatch))

		path := "/restaurants/" + primitive.NewObjectID().Hex() + "/image/" + primitive.NewObjectID().Hex()
		w := perform(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	mt.Run("mismatched restaurant tag is surfaced exactly like a missing blob", func(mt *mtest.T) {
		r := setupRouter(mt)

		fileID := primitive.NewObjectID()
		ownerID := primitive.NewObjectID()
		otherID := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns(mt, "fs.files"), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: fileID},
			{Key: "filename", Value: "storefront.png"},
			{Key: "metadata", Value: bson.D{
				{Key: "restaurant_id", Value: ownerID},
				{Key: "contentType", Value: "image/png"},
			}},
		}))

		path := "/restaurants/" + otherID.Hex() + "/image/" + fileID.Hex()
		w := perform(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	mt.Run("malformed ids return 400", func(mt *mtest.T) {
		r := setupRouter(mt)

		w := perform(r, http.MethodGet, "/restaurants/nope/image/"+primitive.NewObjectID().Hex(), nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = perform(r, http.MethodGet, "/restaurants/"+primitive.NewObjectID().Hex()+"/image/nope", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUploadRestaurantImage_Validation(t *testing.T) {
	mt := newMockTest(t)

	mt.Run("malformed restaurant id returns 400", func(mt *mtest.T) {
		r := setupRouter(mt)

		w := perform(r, http.MethodPost, "/restaurants/nope/upload-image", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	mt.Run("missing multipart file returns 400", func(mt *mtest.T) {
		r := setupRouter(mt)

		w := perform(r, http.MethodPost, "/restaurants/"+primitive.NewObjectID().Hex()+"/upload-image", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
