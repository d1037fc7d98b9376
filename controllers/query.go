package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type listParams struct {
	SortBy     string
	Order      int
	Projection bson.M
	Skip       int64
	Limit      int64
}

// parseListParams reads the query parameters shared by every list endpoint:
// sort_by, order (1 or -1), fields (comma-separated projection), skip, limit.
// Unknown sort and projection fields are passed through to the store as-is.
func parseListParams(c *gin.Context, defaultSort string, defaultOrder int) listParams {
	p := listParams{
		SortBy: c.DefaultQuery("sort_by", defaultSort),
		Order:  defaultOrder,
		Limit:  50,
	}

	if raw := c.Query("order"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && (n == 1 || n == -1) {
			p.Order = n
		}
	}

	if fields := c.Query("fields"); fields != "" {
		p.Projection = bson.M{}
		for _, f := range strings.Split(fields, ",") {
			if f = strings.TrimSpace(f); f != "" {
				p.Projection[f] = 1
			}
		}
	}

	if skip, err := strconv.ParseInt(c.Query("skip"), 10, 64); err == nil && skip > 0 {
		p.Skip = skip
	}

	if limit, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil {
		if limit < 1 {
			limit = 1
		}
		if limit > 100 {
			limit = 100
		}
		p.Limit = limit
	}

	return p
}

func (p listParams) FindOptions() *options.FindOptions {
	opts := options.Find().
		SetSort(bson.D{{Key: p.SortBy, Value: p.Order}}).
		SetSkip(p.Skip).
		SetLimit(p.Limit)
	if p.Projection != nil {
		opts.SetProjection(p.Projection)
	}
	return opts
}

// limitParam reads the limit used by the report endpoints.
func limitParam(c *gin.Context, fallback int64) int64 {
	if n, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && n > 0 {
		return n
	}
	return fallback
}
