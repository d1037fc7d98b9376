package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestParseListParams_Defaults(t *testing.T) {
	p := parseListParams(ctxWithQuery(""), "name", 1)

	assert.Equal(t, "name", p.SortBy)
	assert.Equal(t, 1, p.Order)
	assert.Nil(t, p.Projection)
	assert.Equal(t, int64(0), p.Skip)
	assert.Equal(t, int64(50), p.Limit)
}

func TestParseListParams_SortAndOrder(t *testing.T) {
	p := parseListParams(ctxWithQuery("sort_by=created_at&order=-1"), "name", 1)

	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, -1, p.Order)
}

func TestParseListParams_InvalidOrderKeepsDefault(t *testing.T) {
	p := parseListParams(ctxWithQuery("order=2"), "name", -1)
	assert.Equal(t, -1, p.Order)

	p = parseListParams(ctxWithQuery("order=abc"), "name", 1)
	assert.Equal(t, 1, p.Order)
}

func TestParseListParams_Projection(t *testing.T) {
	p := parseListParams(ctxWithQuery("fields=name,%20description"), "name", 1)

	assert.Equal(t, bson.M{"name": 1, "description": 1}, p.Projection)
}

func TestParseListParams_Pagination(t *testing.T) {
	p := parseListParams(ctxWithQuery("skip=10&limit=5"), "name", 1)

	assert.Equal(t, int64(10), p.Skip)
	assert.Equal(t, int64(5), p.Limit)
}

func TestParseListParams_LimitClamped(t *testing.T) {
	p := parseListParams(ctxWithQuery("limit=500"), "name", 1)
	assert.Equal(t, int64(100), p.Limit)

	p = parseListParams(ctxWithQuery("limit=0"), "name", 1)
	assert.Equal(t, int64(1), p.Limit)

	p = parseListParams(ctxWithQuery("limit=abc"), "name", 1)
	assert.Equal(t, int64(50), p.Limit)
}

func TestParseListParams_NegativeSkipIgnored(t *testing.T) {
	p := parseListParams(ctxWithQuery("skip=-3"), "name", 1)
	assert.Equal(t, int64(0), p.Skip)
}

func TestLimitParam(t *testing.T) {
	assert.Equal(t, int64(10), limitParam(ctxWithQuery(""), 10))
	assert.Equal(t, int64(3), limitParam(ctxWithQuery("limit=3"), 10))
	assert.Equal(t, int64(10), limitParam(ctxWithQuery("limit=-1"), 10))
}
