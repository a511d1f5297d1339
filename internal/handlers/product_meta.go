package handlers

import (
	"context"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PageSizeOption struct {
	Value int64  `json:"value"`
	Label string `json:"label"`
}

var pageSizeOptions = []PageSizeOption{
	{Value: 8, Label: "8 per page"},
	{Value: 16, Label: "16 per page"},
	{Value: 24, Label: "24 per page"},
	{Value: 32, Label: "32 per page"},
	{Value: 48, Label: "48 per page"},
}

// GET /api/products/pagination-options
func GetPaginationOptions(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/pagination-options"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		total, err := db.Collection("products").CountDocuments(ctx, bson.M{})
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch pagination options", err.Error())
			return
		}

		respondData(c, http.StatusOK, gin.H{
			"pageSizeOptions": pageSizeOptions,
			"totalProducts":   total,
			"defaultPageSize": defaultPageSize,
			"maxPageSize":     maxPageSize,
		})
	}
}

type priceStats struct {
	MinPrice float64 `bson:"minPrice" json:"minPrice"`
	MaxPrice float64 `bson:"maxPrice" json:"maxPrice"`
	AvgPrice float64 `bson:"avgPrice" json:"avgPrice"`
}

type ratingStats struct {
	AvgRating float64 `bson:"avgRating" json:"avgRating"`
	MaxRating float64 `bson:"maxRating" json:"maxRating"`
	MinRating float64 `bson:"minRating" json:"minRating"`
}

/*
GET /api/products/filters
- distinct brands/categories/tags/badge types + price and rating spreads,
  everything the filter bar needs to render itself
*/
func GetFilterOptions(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/filters"
		defer handlePanic(c, route)

		log.Printf("[%s] hit", route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondError(c, http.StatusServiceUnavailable, route, "database unavailable", "")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		products := db.Collection("products")

		brands, err := distinctStrings(ctx, products, "brand")
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch filter options", err.Error())
			return
		}

		categories, err := distinctStrings(ctx, products, "category")
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch filter options", err.Error())
			return
		}

		tags, err := distinctStrings(ctx, products, "tags")
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch filter options", err.Error())
			return
		}

		badgeTypes, err := distinctStrings(ctx, products, "badge.type")
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch filter options", err.Error())
			return
		}

		prices := priceStats{}
		err = aggregateOne(ctx, products, []bson.M{
			{"$group": bson.M{
				"_id":      nil,
				"minPrice": bson.M{"$min": "$price"},
				"maxPrice": bson.M{"$max": "$price"},
				"avgPrice": bson.M{"$avg": "$price"},
			}},
		}, &prices)
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch filter options", err.Error())
			return
		}

		ratings := ratingStats{}
		err = aggregateOne(ctx, products, []bson.M{
			{"$group": bson.M{
				"_id":       nil,
				"avgRating": bson.M{"$avg": "$rating"},
				"maxRating": bson.M{"$max": "$rating"},
				"minRating": bson.M{"$min": "$rating"},
			}},
		}, &ratings)
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch filter options", err.Error())
			return
		}

		respondData(c, http.StatusOK, gin.H{
			"brands":      brands,
			"categories":  categories,
			"priceRange":  prices,
			"tags":        tags,
			"badgeTypes":  badgeTypes,
			"ratingStats": ratings,
		})
	}
}

type groupStat struct {
	ID       string  `bson:"_id" json:"_id"`
	Count    int64   `bson:"count" json:"count"`
	AvgPrice float64 `bson:"avgPrice" json:"avgPrice"`
}

/*
GET /api/products/stats
- stock counts + per-category and per-brand breakdowns
*/
func GetProductStats(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/stats"
		defer handlePanic(c, route)

		log.Printf("[%s] hit", route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		products := db.Collection("products")

		total, err := products.CountDocuments(ctx, bson.M{})
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch product statistics", err.Error())
			return
		}

		inStock, err := products.CountDocuments(ctx, bson.M{"inStock": true})
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch product statistics", err.Error())
			return
		}

		outOfStock, err := products.CountDocuments(ctx, bson.M{"inStock": false})
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch product statistics", err.Error())
			return
		}

		categoryStats, err := groupStats(ctx, products, "$category")
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch product statistics", err.Error())
			return
		}

		brandStats, err := groupStats(ctx, products, "$brand")
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch product statistics", err.Error())
			return
		}

		respondData(c, http.StatusOK, gin.H{
			"totalProducts":      total,
			"inStockProducts":    inStock,
			"outOfStockProducts": outOfStock,
			"categoryStats":      categoryStats,
			"brandStats":         brandStats,
		})
	}
}

func distinctStrings(ctx context.Context, coll *mongo.Collection, field string) ([]string, error) {
	values, err := coll.Distinct(ctx, field, bson.M{})
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(values))
	for _, value := range values {
		if s, ok := value.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}

// aggregateOne runs a single-group pipeline and decodes the first result into
// result, leaving it zero-valued when the collection is empty.
func aggregateOne(ctx context.Context, coll *mongo.Collection, pipeline []bson.M, result interface{}) error {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	if cursor.Next(ctx) {
		if err := cursor.Decode(result); err != nil {
			return err
		}
	}
	return cursor.Err()
}

func groupStats(ctx context.Context, coll *mongo.Collection, field string) ([]groupStat, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":      field,
			"count":    bson.M{"$sum": 1},
			"avgPrice": bson.M{"$avg": "$price"},
		}},
		{"$sort": bson.M{"count": -1}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stats := make([]groupStat, 0)
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
