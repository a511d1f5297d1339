package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"backend/internal/models"
)

func validProduct() models.Product {
	return models.Product{
		Name:        "Syltherine",
		Brand:       "Furniro",
		Category:    "Chair",
		Price:       2500000,
		ImageURL:    "https://example.com/chair.jpg",
		InStock:     true,
		Rating:      4.5,
		ReviewCount: 128,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestMissingProductFieldsEnumeratesAllAbsent(t *testing.T) {
	missing := missingProductFields(models.Product{})
	assert.Equal(t, []string{"name", "brand", "category", "price", "imageUrl"}, missing)
}

func TestMissingProductFieldsEmptyForValidProduct(t *testing.T) {
	assert.Empty(t, missingProductFields(validProduct()))
}

func TestMissingProductFieldsIgnoresWhitespace(t *testing.T) {
	p := validProduct()
	p.Brand = "   "
	assert.Equal(t, []string{"brand"}, missingProductFields(p))
}

func TestValidateProductAcceptsValidProduct(t *testing.T) {
	assert.NoError(t, validateProduct(validProduct()))
}

func TestValidateProductRejectsBadBadgeType(t *testing.T) {
	p := validProduct()
	p.Badge = &models.Badge{Type: "clearance", Text: "Clearance"}

	err := validateProduct(p)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "type")
}

func TestValidateProductAcceptsEnumeratedBadgeTypes(t *testing.T) {
	for _, badgeType := range []string{models.BadgeDiscount, models.BadgeNew, models.BadgeSale} {
		p := validProduct()
		p.Badge = &models.Badge{Type: badgeType, Text: "x"}
		assert.NoError(t, validateProduct(p), "badge type %q should be valid", badgeType)
	}
}

func TestValidateProductRejectsRatingOutOfRange(t *testing.T) {
	over := validProduct()
	over.Rating = 5.1
	assert.Error(t, validateProduct(over))

	under := validProduct()
	under.Rating = -0.1
	assert.Error(t, validateProduct(under))
}

func TestValidateProductRejectsNegativeReviewCount(t *testing.T) {
	p := validProduct()
	p.ReviewCount = -1
	assert.Error(t, validateProduct(p))
}

func TestValidateProductRejectsNonPositiveOldPrice(t *testing.T) {
	zero := 0.0
	p := validProduct()
	p.OldPrice = &zero
	assert.Error(t, validateProduct(p))
}

func TestCaseInsensitiveExactQuotesRegexMetacharacters(t *testing.T) {
	re := caseInsensitiveExact("Sofa (2-seater) + cushions")

	assert.Equal(t, "i", re.Options)
	assert.Equal(t, `^Sofa \(2-seater\) \+ cushions$`, re.Pattern)
}

func TestDuplicateMessageFormat(t *testing.T) {
	assert.Equal(t,
		`Product "Syltherine" by "Furniro" already exists`,
		duplicateMessage("Syltherine", "Furniro"))
}
