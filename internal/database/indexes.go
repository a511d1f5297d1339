package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureProductIndexes creates the case-insensitive unique (name, brand) index.
// The create/update handlers still run their own duplicate check so that
// callers get a 409; the index is what stops two concurrent creates from both
// slipping past that check.
func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("products").Indexes()

	nameBrandIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "name", Value: 1},
			{Key: "brand", Value: 1},
		},
		Options: options.Index().
			SetName("name_brand_unique").
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en", Strength: 2}),
	}

	log.Println("EnsureProductIndexes: creating name_brand_unique index")
	_, err := indexes.CreateOne(ctx, nameBrandIndex)
	if err != nil {
		log.Println("EnsureProductIndexes: name_brand index error:", err)
		return err
	}
	log.Println("EnsureProductIndexes: name_brand_unique index created")
	return nil
}
