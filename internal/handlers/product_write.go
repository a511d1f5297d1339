package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

/* =======================
   REQUEST MODELS
======================= */

type ProductCreateRequest struct {
	Name        string        `json:"name"`
	Brand       string        `json:"brand"`
	Category    string        `json:"category"`
	Price       float64       `json:"price"`
	OldPrice    *float64      `json:"oldPrice"`
	ImageURL    string        `json:"imageUrl"`
	Description string        `json:"description"`
	Badge       *models.Badge `json:"badge"`
	InStock     *bool         `json:"inStock"`
	Rating      float64       `json:"rating"`
	ReviewCount int           `json:"reviewCount"`
	Tags        []string      `json:"tags"`
}

func (r ProductCreateRequest) toProduct(now time.Time) models.Product {
	inStock := true
	if r.InStock != nil {
		inStock = *r.InStock
	}
	return models.Product{
		Name:        strings.TrimSpace(r.Name),
		Brand:       strings.TrimSpace(r.Brand),
		Category:    strings.TrimSpace(r.Category),
		Price:       r.Price,
		OldPrice:    r.OldPrice,
		ImageURL:    strings.TrimSpace(r.ImageURL),
		Description: strings.TrimSpace(r.Description),
		Badge:       r.Badge,
		InStock:     inStock,
		Rating:      r.Rating,
		ReviewCount: r.ReviewCount,
		Tags:        r.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type ProductUpdateRequest struct {
	Name        *string       `json:"name"`
	Brand       *string       `json:"brand"`
	Category    *string       `json:"category"`
	Price       *float64      `json:"price"`
	OldPrice    *float64      `json:"oldPrice"`
	ImageURL    *string       `json:"imageUrl"`
	Description *string       `json:"description"`
	Badge       *models.Badge `json:"badge"`
	InStock     *bool         `json:"inStock"`
	Rating      *float64      `json:"rating"`
	ReviewCount *int          `json:"reviewCount"`
	Tags        *[]string     `json:"tags"`
}

func duplicateMessage(name, brand string) string {
	return fmt.Sprintf("Product %q by %q already exists", name, brand)
}

/* =======================
   CREATE
======================= */

// POST /api/products
func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/products"
		defer handlePanic(c, route)

		var req ProductCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid body", err.Error())
			return
		}

		product := req.toProduct(time.Now())

		if missing := missingProductFields(product); len(missing) > 0 {
			respondError(c, http.StatusBadRequest, route, "Missing required fields",
				fmt.Sprintf("%s required", strings.Join(missing, ", ")))
			return
		}

		if product.Price <= 0 {
			respondError(c, http.StatusBadRequest, route, "Invalid price", "Price must be a positive number")
			return
		}

		if err := validateProduct(product); err != nil {
			respondError(c, http.StatusBadRequest, route, "Validation failed", err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		duplicate, err := findDuplicateProduct(ctx, db, product.Name, product.Brand, nil)
		if err != nil {
			log.Printf("[%s] duplicate check error: %v", route, err)
			respondError(c, http.StatusInternalServerError, route, "Failed to create product", err.Error())
			return
		}
		if duplicate {
			respondError(c, http.StatusConflict, route, "Product already exists",
				duplicateMessage(product.Name, product.Brand))
			return
		}

		res, err := db.Collection("products").InsertOne(ctx, product)
		if mongo.IsDuplicateKeyError(err) {
			// Loser of a concurrent create race, caught by the unique index.
			respondError(c, http.StatusConflict, route, "Product already exists",
				duplicateMessage(product.Name, product.Brand))
			return
		}
		if err != nil {
			log.Printf("[%s] insert error: %v", route, err)
			respondError(c, http.StatusInternalServerError, route, "Failed to create product", err.Error())
			return
		}

		product.ID = res.InsertedID.(primitive.ObjectID)
		log.Printf("[%s] created %s", route, product.ID.Hex())
		respondDataMessage(c, http.StatusCreated, product, "Product created successfully")
	}
}

/* =======================
   UPDATE
======================= */

// PUT /api/products/:id
func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/products/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid product ID",
				"Product ID must be a valid MongoDB ObjectId")
			return
		}

		var req ProductUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid body", err.Error())
			return
		}

		if req.Price != nil && *req.Price <= 0 {
			respondError(c, http.StatusBadRequest, route, "Invalid price", "Price must be a positive number")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var existing models.Product
		err = db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, route, "Product not found",
				"No product found with the provided ID")
			return
		}
		if err != nil {
			log.Printf("[%s] find error: %v", route, err)
			respondError(c, http.StatusInternalServerError, route, "Failed to update product", err.Error())
			return
		}

		if req.Name != nil || req.Brand != nil {
			name := existing.Name
			if req.Name != nil {
				name = strings.TrimSpace(*req.Name)
			}
			brand := existing.Brand
			if req.Brand != nil {
				brand = strings.TrimSpace(*req.Brand)
			}

			duplicate, err := findDuplicateProduct(ctx, db, name, brand, &id)
			if err != nil {
				log.Printf("[%s] duplicate check error: %v", route, err)
				respondError(c, http.StatusInternalServerError, route, "Failed to update product", err.Error())
				return
			}
			if duplicate {
				respondError(c, http.StatusConflict, route, "Product already exists",
					duplicateMessage(name, brand))
				return
			}
		}

		merged, updateSet := applyProductPatch(existing, req)
		if err := validateProduct(merged); err != nil {
			respondError(c, http.StatusBadRequest, route, "Validation failed", err.Error())
			return
		}

		updateSet["updatedAt"] = time.Now()

		log.Printf("[%s] updating %s fields=%v", route, id.Hex(), mapKeys(updateSet))

		var updated models.Product
		err = db.Collection("products").FindOneAndUpdate(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": updateSet},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&updated)
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, route, "Product not found",
				"No product found with the provided ID")
			return
		}
		if mongo.IsDuplicateKeyError(err) {
			respondError(c, http.StatusConflict, route, "Product already exists",
				duplicateMessage(merged.Name, merged.Brand))
			return
		}
		if err != nil {
			log.Printf("[%s] update error: %v", route, err)
			respondError(c, http.StatusInternalServerError, route, "Failed to update product", err.Error())
			return
		}

		respondDataMessage(c, http.StatusOK, updated, "Product updated successfully")
	}
}

// applyProductPatch merges the patch into a copy of the existing product and
// returns it together with the $set document. Unset fields keep their prior
// values.
func applyProductPatch(existing models.Product, req ProductUpdateRequest) (models.Product, bson.M) {
	merged := existing
	set := bson.M{}

	if req.Name != nil {
		merged.Name = strings.TrimSpace(*req.Name)
		set["name"] = merged.Name
	}
	if req.Brand != nil {
		merged.Brand = strings.TrimSpace(*req.Brand)
		set["brand"] = merged.Brand
	}
	if req.Category != nil {
		merged.Category = strings.TrimSpace(*req.Category)
		set["category"] = merged.Category
	}
	if req.Price != nil {
		merged.Price = *req.Price
		set["price"] = merged.Price
	}
	if req.OldPrice != nil {
		merged.OldPrice = req.OldPrice
		set["oldPrice"] = *req.OldPrice
	}
	if req.ImageURL != nil {
		merged.ImageURL = strings.TrimSpace(*req.ImageURL)
		set["imageUrl"] = merged.ImageURL
	}
	if req.Description != nil {
		merged.Description = strings.TrimSpace(*req.Description)
		set["description"] = merged.Description
	}
	if req.Badge != nil {
		merged.Badge = req.Badge
		set["badge"] = req.Badge
	}
	if req.InStock != nil {
		merged.InStock = *req.InStock
		set["inStock"] = merged.InStock
	}
	if req.Rating != nil {
		merged.Rating = *req.Rating
		set["rating"] = merged.Rating
	}
	if req.ReviewCount != nil {
		merged.ReviewCount = *req.ReviewCount
		set["reviewCount"] = merged.ReviewCount
	}
	if req.Tags != nil {
		merged.Tags = *req.Tags
		set["tags"] = merged.Tags
	}

	return merged, set
}

/* =======================
   DELETE
======================= */

// DELETE /api/products/:id
func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/products/:id"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "Invalid product ID",
				"Product ID must be a valid MongoDB ObjectId")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var existing models.Product
		err = db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			respondError(c, http.StatusNotFound, route, "Product not found",
				"No product found with the provided ID")
			return
		}
		if err != nil {
			log.Printf("[%s] find error: %v", route, err)
			respondError(c, http.StatusInternalServerError, route, "Failed to delete product", err.Error())
			return
		}

		if _, err := db.Collection("products").DeleteOne(ctx, bson.M{"_id": id}); err != nil {
			log.Printf("[%s] delete error: %v", route, err)
			respondError(c, http.StatusInternalServerError, route, "Failed to delete product", err.Error())
			return
		}

		log.Printf("[%s] deleted %s", route, id.Hex())
		respondDataMessage(c, http.StatusOK, gin.H{
			"id":    existing.ID,
			"name":  existing.Name,
			"brand": existing.Brand,
		}, "Product deleted successfully")
	}
}

/* =======================
   BULK CREATE
======================= */

// POST /api/products/bulk
func BulkCreateProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/products/bulk"
		defer handlePanic(c, route)

		var req struct {
			Products []ProductCreateRequest `json:"products"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Products == nil {
			respondError(c, http.StatusBadRequest, route, "Products must be an array", "")
			return
		}

		now := time.Now()
		docs := make([]interface{}, 0, len(req.Products))
		for i, payload := range req.Products {
			product := payload.toProduct(now)
			if missing := missingProductFields(product); len(missing) > 0 {
				respondError(c, http.StatusBadRequest, route, "Failed to create products",
					fmt.Sprintf("products[%d]: %s required", i, strings.Join(missing, ", ")))
				return
			}
			if product.Price <= 0 {
				respondError(c, http.StatusBadRequest, route, "Failed to create products",
					fmt.Sprintf("products[%d]: Price must be a positive number", i))
				return
			}
			if err := validateProduct(product); err != nil {
				respondError(c, http.StatusBadRequest, route, "Failed to create products",
					fmt.Sprintf("products[%d]: %s", i, err.Error()))
				return
			}
			docs = append(docs, product)
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		res, err := db.Collection("products").InsertMany(ctx, docs)
		if err != nil {
			// The store rejects the whole batch; mirror that to the caller.
			log.Printf("[%s] insert error: %v", route, err)
			respondError(c, http.StatusBadRequest, route, "Failed to create products", err.Error())
			return
		}

		inserted := make([]models.Product, 0, len(docs))
		for i, doc := range docs {
			product := doc.(models.Product)
			if i < len(res.InsertedIDs) {
				if oid, ok := res.InsertedIDs[i].(primitive.ObjectID); ok {
					product.ID = oid
				}
			}
			inserted = append(inserted, product)
		}

		log.Printf("[%s] inserted %d products", route, len(inserted))
		respondData(c, http.StatusCreated, gin.H{
			"count":    len(inserted),
			"products": inserted,
		})
	}
}

func mapKeys(input bson.M) []string {
	keys := make([]string, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
