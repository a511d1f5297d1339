package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func listContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/products?"+rawQuery, nil)
	return c
}

func TestParseListParamsNormalizesTypes(t *testing.T) {
	c := listContext(t, "brand=Furniro&brand=Lignum&category=Chair&minPrice=100&maxPrice=5000&search=sofa&inStock=true&badge=discount&tags=modern&tags=cozy&rating=4&sortBy=price&sortOrder=desc&page=2&limit=24")

	p := parseListParams(c)

	assert.Equal(t, []string{"Furniro", "Lignum"}, p.Brands)
	assert.Equal(t, []string{"Chair"}, p.Categories)
	require.NotNil(t, p.MinPrice)
	assert.Equal(t, 100.0, *p.MinPrice)
	require.NotNil(t, p.MaxPrice)
	assert.Equal(t, 5000.0, *p.MaxPrice)
	assert.Equal(t, "sofa", p.Search)
	require.NotNil(t, p.InStock)
	assert.True(t, *p.InStock)
	assert.Equal(t, "discount", p.Badge)
	assert.Equal(t, []string{"modern", "cozy"}, p.Tags)
	require.NotNil(t, p.Rating)
	assert.Equal(t, 4.0, *p.Rating)
	assert.Equal(t, "price", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)
	assert.Equal(t, int64(2), p.Page)
	assert.Equal(t, int64(24), p.Limit)
}

func TestParseListParamsDropsUnparseableValues(t *testing.T) {
	c := listContext(t, "minPrice=cheap&maxPrice=&rating=five&inStock=maybe&page=zero&limit=lots")

	p := parseListParams(c)

	assert.Nil(t, p.MinPrice)
	assert.Nil(t, p.MaxPrice)
	assert.Nil(t, p.Rating)
	assert.Nil(t, p.InStock)
	assert.Equal(t, int64(1), p.Page)
	assert.Equal(t, int64(16), p.Limit)
}

func TestBuildProductFilterEmptyMatchesAll(t *testing.T) {
	filter := buildProductFilter(ListParams{})
	assert.Empty(t, filter)
}

func TestBuildProductFilterBrandAndCategory(t *testing.T) {
	single := buildProductFilter(ListParams{Brands: []string{"Furniro"}})
	assert.Equal(t, "Furniro", single["brand"])

	multi := buildProductFilter(ListParams{Brands: []string{"Furniro", "Lignum"}})
	assert.Equal(t, bson.M{"$in": []string{"Furniro", "Lignum"}}, multi["brand"])

	categories := buildProductFilter(ListParams{Categories: []string{"Chair", "Table"}})
	assert.Equal(t, bson.M{"$in": []string{"Chair", "Table"}}, categories["category"])
}

func TestBuildProductFilterPriceRange(t *testing.T) {
	min, max := 100.0, 900.0

	both := buildProductFilter(ListParams{MinPrice: &min, MaxPrice: &max})
	assert.Equal(t, bson.M{"$gte": 100.0, "$lte": 900.0}, both["price"])

	onlyMin := buildProductFilter(ListParams{MinPrice: &min})
	assert.Equal(t, bson.M{"$gte": 100.0}, onlyMin["price"])

	onlyMax := buildProductFilter(ListParams{MaxPrice: &max})
	assert.Equal(t, bson.M{"$lte": 900.0}, onlyMax["price"])
}

func TestBuildProductFilterSearchExpandsToOr(t *testing.T) {
	filter := buildProductFilter(ListParams{Search: "oak"})

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok, "expected $or clause")
	require.Len(t, or, 4)

	fields := make([]string, 0, len(or))
	for _, clause := range or {
		for field, cond := range clause {
			fields = append(fields, field)
			assert.Equal(t, bson.M{"$regex": "oak", "$options": "i"}, cond)
		}
	}
	assert.ElementsMatch(t, []string{"name", "description", "brand", "category"}, fields)
}

func TestBuildProductFilterRemainingFields(t *testing.T) {
	inStock := false
	rating := 4.5

	filter := buildProductFilter(ListParams{
		InStock: &inStock,
		Badge:   "sale",
		Tags:    []string{"modern"},
		Rating:  &rating,
	})

	assert.Equal(t, false, filter["inStock"])
	assert.Equal(t, "sale", filter["badge.type"])
	assert.Equal(t, bson.M{"$in": []string{"modern"}}, filter["tags"])
	assert.Equal(t, bson.M{"$gte": 4.5}, filter["rating"])
}

func TestResolveProductSortDefaultsToNewestFirst(t *testing.T) {
	expected := bson.D{{Key: "createdAt", Value: -1}}

	assert.Equal(t, expected, resolveProductSort("", ""))
	assert.Equal(t, expected, resolveProductSort("bogus", "asc"))
}

func TestResolveProductSortDirection(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, resolveProductSort("price", "desc"))
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, resolveProductSort("price", "asc"))
	// anything other than "desc" sorts ascending
	assert.Equal(t, bson.D{{Key: "rating", Value: 1}}, resolveProductSort("rating", "descending"))
}

func TestResolveProductSortTieBreaksNameAndBrandByPrice(t *testing.T) {
	assert.Equal(t,
		bson.D{{Key: "name", Value: 1}, {Key: "price", Value: 1}},
		resolveProductSort("name", "asc"))
	assert.Equal(t,
		bson.D{{Key: "brand", Value: -1}, {Key: "price", Value: 1}},
		resolveProductSort("brand", "desc"))
}

func TestAppliedFiltersEchoesNullsWhenUnset(t *testing.T) {
	applied := appliedFilters(ListParams{})

	assert.Nil(t, applied.Brand)
	assert.Nil(t, applied.Category)
	assert.Nil(t, applied.PriceRange.Min)
	assert.Nil(t, applied.PriceRange.Max)
	assert.Nil(t, applied.Search)
	assert.Nil(t, applied.InStock)
	assert.Nil(t, applied.Badge)
	assert.Nil(t, applied.Tags)
	assert.Nil(t, applied.Rating)
}

func TestAppliedFiltersEchoesNormalizedValues(t *testing.T) {
	min := 250.0
	inStock := true

	applied := appliedFilters(ListParams{
		Brands:   []string{"Furniro"},
		MinPrice: &min,
		Search:   "sofa",
		InStock:  &inStock,
		Badge:    "new",
		Tags:     []string{"modern"},
	})

	assert.Equal(t, []string{"Furniro"}, applied.Brand)
	require.NotNil(t, applied.PriceRange.Min)
	assert.Equal(t, 250.0, *applied.PriceRange.Min)
	require.NotNil(t, applied.Search)
	assert.Equal(t, "sofa", *applied.Search)
	require.NotNil(t, applied.Badge)
	assert.Equal(t, "new", *applied.Badge)
}
