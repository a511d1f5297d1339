package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// ListParams is the normalized form of the listing query string. Raw values
// are coerced to their semantic types here so the filter/sort builders never
// see untyped input. A value that fails numeric or boolean coercion drops the
// constraint instead of erroring, matching the original API behavior.
type ListParams struct {
	Brands     []string
	Categories []string
	MinPrice   *float64
	MaxPrice   *float64
	Search     string
	InStock    *bool
	Badge      string
	Tags       []string
	Rating     *float64
	SortBy     string
	SortOrder  string
	Page       int64
	Limit      int64
}

func parseListParams(c *gin.Context) ListParams {
	return ListParams{
		Brands:     parseStringList(c.QueryArray("brand")),
		Categories: parseStringList(c.QueryArray("category")),
		MinPrice:   parseNumber(c.Query("minPrice")),
		MaxPrice:   parseNumber(c.Query("maxPrice")),
		Search:     strings.TrimSpace(c.Query("search")),
		InStock:    parseBoolFlag(c.Query("inStock")),
		Badge:      strings.TrimSpace(c.Query("badge")),
		Tags:       parseStringList(c.QueryArray("tags")),
		Rating:     parseNumber(c.Query("rating")),
		SortBy:     strings.TrimSpace(c.Query("sortBy")),
		SortOrder:  strings.TrimSpace(c.Query("sortOrder")),
		Page:       parsePage(c.Query("page")),
		Limit:      parseLimit(c.Query("limit")),
	}
}

func parseStringList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseNumber(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &value
}

func parseBoolFlag(raw string) *bool {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, "true") {
		value := true
		return &value
	}
	if strings.EqualFold(trimmed, "false") {
		value := false
		return &value
	}
	return nil
}

// buildProductFilter turns the normalized params into the Mongo predicate.
// Each present parameter narrows the match; the search term expands into an
// $or over the four searched fields.
func buildProductFilter(p ListParams) bson.M {
	filter := bson.M{}

	if len(p.Brands) == 1 {
		filter["brand"] = p.Brands[0]
	} else if len(p.Brands) > 1 {
		filter["brand"] = bson.M{"$in": p.Brands}
	}

	if len(p.Categories) == 1 {
		filter["category"] = p.Categories[0]
	} else if len(p.Categories) > 1 {
		filter["category"] = bson.M{"$in": p.Categories}
	}

	if p.MinPrice != nil || p.MaxPrice != nil {
		price := bson.M{}
		if p.MinPrice != nil {
			price["$gte"] = *p.MinPrice
		}
		if p.MaxPrice != nil {
			price["$lte"] = *p.MaxPrice
		}
		filter["price"] = price
	}

	if p.Search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": p.Search, "$options": "i"}},
			{"description": bson.M{"$regex": p.Search, "$options": "i"}},
			{"brand": bson.M{"$regex": p.Search, "$options": "i"}},
			{"category": bson.M{"$regex": p.Search, "$options": "i"}},
		}
	}

	if p.InStock != nil {
		filter["inStock"] = *p.InStock
	}

	if p.Badge != "" {
		filter["badge.type"] = p.Badge
	}

	if len(p.Tags) > 0 {
		filter["tags"] = bson.M{"$in": p.Tags}
	}

	if p.Rating != nil {
		filter["rating"] = bson.M{"$gte": *p.Rating}
	}

	return filter
}

var sortableFields = map[string]bool{
	"name":      true,
	"brand":     true,
	"price":     true,
	"rating":    true,
	"createdAt": true,
	"updatedAt": true,
}

// resolveProductSort picks a deterministic ordering. Unknown or absent sort
// keys fall back to newest-first. Name and brand sorts get a secondary
// ascending price sort to break ties.
func resolveProductSort(sortBy, sortOrder string) bson.D {
	if !sortableFields[sortBy] {
		return bson.D{{Key: "createdAt", Value: -1}}
	}

	direction := 1
	if sortOrder == "desc" {
		direction = -1
	}

	sort := bson.D{{Key: sortBy, Value: direction}}
	if sortBy == "name" || sortBy == "brand" {
		sort = append(sort, bson.E{Key: "price", Value: 1})
	}
	return sort
}

type PriceRange struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// AppliedFilters echoes the filters in effect back to the caller; absent
// filters are null.
type AppliedFilters struct {
	Brand      []string   `json:"brand"`
	Category   []string   `json:"category"`
	PriceRange PriceRange `json:"priceRange"`
	Search     *string    `json:"search"`
	InStock    *bool      `json:"inStock"`
	Badge      *string    `json:"badge"`
	Tags       []string   `json:"tags"`
	Rating     *float64   `json:"rating"`
}

func appliedFilters(p ListParams) AppliedFilters {
	applied := AppliedFilters{
		Brand:      p.Brands,
		Category:   p.Categories,
		PriceRange: PriceRange{Min: p.MinPrice, Max: p.MaxPrice},
		InStock:    p.InStock,
		Tags:       p.Tags,
		Rating:     p.Rating,
	}
	if p.Search != "" {
		applied.Search = &p.Search
	}
	if p.Badge != "" {
		applied.Badge = &p.Badge
	}
	return applied
}
