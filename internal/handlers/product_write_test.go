package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/internal/models"
)

func TestToProductDefaultsInStockTrue(t *testing.T) {
	req := ProductCreateRequest{Name: "Muggo", Brand: "Furniro", Category: "Table", Price: 2800000, ImageURL: "x"}

	product := req.toProduct(time.Now())
	assert.True(t, product.InStock)

	explicit := false
	req.InStock = &explicit
	product = req.toProduct(time.Now())
	assert.False(t, product.InStock)
}

func TestToProductSetsBothTimestamps(t *testing.T) {
	now := time.Now()
	product := ProductCreateRequest{Name: "Muggo"}.toProduct(now)

	assert.Equal(t, now, product.CreatedAt)
	assert.Equal(t, now, product.UpdatedAt)
}

func TestToProductTrimsTextFields(t *testing.T) {
	req := ProductCreateRequest{Name: "  Muggo ", Brand: " Furniro", Category: "Table ", ImageURL: " x "}

	product := req.toProduct(time.Now())
	assert.Equal(t, "Muggo", product.Name)
	assert.Equal(t, "Furniro", product.Brand)
	assert.Equal(t, "Table", product.Category)
	assert.Equal(t, "x", product.ImageURL)
}

func TestApplyProductPatchKeepsUnsetFields(t *testing.T) {
	existing := validProduct()
	newPrice := 1999999.0

	merged, set := applyProductPatch(existing, ProductUpdateRequest{Price: &newPrice})

	assert.Equal(t, newPrice, merged.Price)
	assert.Equal(t, existing.Name, merged.Name)
	assert.Equal(t, existing.Brand, merged.Brand)
	assert.Equal(t, existing.Rating, merged.Rating)

	require.Len(t, set, 1)
	assert.Equal(t, newPrice, set["price"])
}

func TestApplyProductPatchSetsEveryProvidedField(t *testing.T) {
	existing := validProduct()

	name := "Leviosa"
	inStock := false
	tags := []string{"elegant"}
	badge := &models.Badge{Type: models.BadgeNew, Text: "New"}

	merged, set := applyProductPatch(existing, ProductUpdateRequest{
		Name:    &name,
		InStock: &inStock,
		Tags:    &tags,
		Badge:   badge,
	})

	assert.Equal(t, "Leviosa", merged.Name)
	assert.False(t, merged.InStock)
	assert.Equal(t, tags, merged.Tags)
	assert.Equal(t, badge, merged.Badge)
	assert.ElementsMatch(t, []string{"name", "inStock", "tags", "badge"}, mapKeys(set))
}

func TestApplyProductPatchEmptyPatchChangesNothing(t *testing.T) {
	existing := validProduct()

	merged, set := applyProductPatch(existing, ProductUpdateRequest{})

	assert.Equal(t, existing, merged)
	assert.Empty(t, set)
}
