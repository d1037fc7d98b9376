package controllers_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"restaurant-api/database"
	"restaurant-api/routes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newMockTest(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

// setupRouter points the shared database handles at the mock deployment and
// builds a fresh engine with the full route table.
func setupRouter(mt *mtest.T) *gin.Engine {
	database.Client = mt.Client
	database.DB = mt.DB
	database.InitCollections()

	r := gin.New()
	routes.RegisterRoutes(r)
	return r
}

func ns(mt *mtest.T, coll string) string {
	return mt.DB.Name() + "." + coll
}

func perform(r *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}
