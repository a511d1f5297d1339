package handlers

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
)

var validate = validator.New()

// missingProductFields lists the required create fields that are absent. A
// zero price counts as missing; the positive-price rule is checked separately.
func missingProductFields(p models.Product) []string {
	missing := make([]string, 0)
	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(p.Brand) == "" {
		missing = append(missing, "brand")
	}
	if strings.TrimSpace(p.Category) == "" {
		missing = append(missing, "category")
	}
	if p.Price == 0 {
		missing = append(missing, "price")
	}
	if strings.TrimSpace(p.ImageURL) == "" {
		missing = append(missing, "imageUrl")
	}
	return missing
}

// validateProduct applies the struct-level rules (badge enum, rating range,
// non-negative review count, positive prices) and flattens violations into a
// single message.
func validateProduct(p models.Product) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	violated := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violated = append(violated, fmt.Sprintf("%s is invalid (%s)", jsonFieldName(fe), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(violated, ", "))
}

func jsonFieldName(fe validator.FieldError) string {
	field := fe.Field()
	if field == "" {
		return fe.Namespace()
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// caseInsensitiveExact builds an anchored, quoted, case-insensitive match for
// the given literal value.
func caseInsensitiveExact(value string) primitive.Regex {
	return primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(value) + "$",
		Options: "i",
	}
}

// findDuplicateProduct reports whether another product already uses the given
// name+brand pair, ignoring case. excludeID skips the record being updated.
func findDuplicateProduct(ctx context.Context, db *mongo.Database, name, brand string, excludeID *primitive.ObjectID) (bool, error) {
	filter := bson.M{
		"name":  caseInsensitiveExact(name),
		"brand": caseInsensitiveExact(brand),
	}
	if excludeID != nil {
		filter["_id"] = bson.M{"$ne": *excludeID}
	}

	err := db.Collection("products").FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
