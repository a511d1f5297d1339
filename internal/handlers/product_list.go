package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"backend/internal/models"
)

/*
GET /api/products
- filter + search + sort + paginate
- response: products + pagination + appliedFilters
*/
func GetProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products"
		defer handlePanic(c, route)

		log.Printf(
			"[%s] hit page=%s limit=%s brand=%s category=%s search=%s",
			route,
			c.Query("page"),
			c.Query("limit"),
			c.Query("brand"),
			c.Query("category"),
			c.Query("search"),
		)

		params := parseListParams(c)
		filter := buildProductFilter(params)
		sort := resolveProductSort(params.SortBy, params.SortOrder)
		skip := (params.Page - 1) * params.Limit

		findOptions := options.Find().
			SetSort(sort).
			SetSkip(skip).
			SetLimit(params.Limit)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		// The page query and the count query are independent reads, so they
		// run concurrently.
		var (
			products []models.Product
			total    int64
		)
		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			cursor, err := db.Collection("products").Find(gctx, filter, findOptions)
			if err != nil {
				return err
			}
			defer cursor.Close(gctx)

			decoded, err := decodeProducts(gctx, cursor)
			if err != nil {
				return err
			}
			products = decoded
			return nil
		})

		g.Go(func() error {
			count, err := db.Collection("products").CountDocuments(gctx, filter)
			if err != nil {
				return err
			}
			total = count
			return nil
		})

		if err := g.Wait(); err != nil {
			log.Printf("[%s] query error: %v", route, err)
			respondError(c, http.StatusInternalServerError, route, "Failed to fetch products", err.Error())
			return
		}

		log.Printf("[%s] returning %d of %d products", route, len(products), total)

		respondData(c, http.StatusOK, gin.H{
			"products":   products,
			"pagination": computePagination(params.Page, params.Limit, total),
			"filters": gin.H{
				"appliedFilters": appliedFilters(params),
			},
		})
	}
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]models.Product, error) {
	products := make([]models.Product, 0)

	for cursor.Next(ctx) {
		var product models.Product
		if err := cursor.Decode(&product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
