// Command seed wipes the products collection and loads the furniture catalog.
package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/models"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)
	log.Println("Connected to MongoDB:", config.AppEnv.MongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	products := db.Collection("products")

	if _, err := products.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatal("clearing products:", err)
	}
	log.Println("Cleared existing products")

	now := time.Now()
	docs := make([]interface{}, 0, len(furnitureProducts))
	for _, product := range furnitureProducts {
		product.CreatedAt = now
		product.UpdatedAt = now
		docs = append(docs, product)
	}

	res, err := products.InsertMany(ctx, docs)
	if err != nil {
		log.Fatal("seeding products:", err)
	}
	log.Printf("Successfully seeded %d products", len(res.InsertedIDs))

	categories, err := products.Distinct(ctx, "category", bson.M{})
	if err != nil {
		log.Fatal("category summary:", err)
	}

	log.Println("=== SEEDING SUMMARY ===")
	for _, category := range categories {
		count, err := products.CountDocuments(ctx, bson.M{"category": category})
		if err != nil {
			log.Fatal("category count:", err)
		}
		log.Printf("%v: %d products", category, count)
	}
}

func price(v float64) *float64 { return &v }

var furnitureProducts = []models.Product{
	{
		Name:        "Syltherine",
		Brand:       "Furniro",
		Category:    "Chair",
		Price:       2500000,
		OldPrice:    price(3500000),
		ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop",
		Description: "Stylish cafe chair with modern design and comfortable seating",
		Badge:       &models.Badge{Type: models.BadgeDiscount, Text: "-30%"},
		InStock:     true,
		Rating:      4.5,
		ReviewCount: 128,
		Tags:        []string{"modern", "comfortable", "cafe", "stylish"},
	},
	{
		Name:        "Leviosa",
		Brand:       "Furniro",
		Category:    "Chair",
		Price:       1800000,
		ImageURL:    "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=400&h=300&fit=crop",
		Description: "Elegant dining chair with premium materials",
		Badge:       &models.Badge{Type: models.BadgeNew, Text: "New"},
		InStock:     true,
		Rating:      4.8,
		ReviewCount: 95,
		Tags:        []string{"elegant", "dining", "premium", "luxury"},
	},
	{
		Name:        "Lolito",
		Brand:       "Furniro",
		Category:    "Chair",
		Price:       3200000,
		ImageURL:    "https://images.unsplash.com/photo-1541558869434-2840d308329a?w=400&h=300&fit=crop",
		Description: "Luxury office chair with ergonomic design",
		Badge:       &models.Badge{Type: models.BadgeSale, Text: "Sale"},
		InStock:     true,
		Rating:      4.3,
		ReviewCount: 67,
		Tags:        []string{"luxury", "office", "ergonomic", "professional"},
	},
	{
		Name:        "Respira",
		Brand:       "Furniro",
		Category:    "Chair",
		Price:       2100000,
		ImageURL:    "https://images.unsplash.com/photo-1592078615290-033ee584e267?w=400&h=300&fit=crop",
		Description: "Comfortable lounge chair for relaxation",
		InStock:     true,
		Rating:      4.6,
		ReviewCount: 89,
		Tags:        []string{"lounge", "comfortable", "relaxation", "home"},
	},
	{
		Name:        "Grifo",
		Brand:       "Furniro",
		Category:    "Table",
		Price:       4500000,
		OldPrice:    price(5500000),
		ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop",
		Description: "Modern dining table with sleek design",
		Badge:       &models.Badge{Type: models.BadgeDiscount, Text: "-18%"},
		InStock:     true,
		Rating:      4.7,
		ReviewCount: 156,
		Tags:        []string{"modern", "dining", "sleek", "contemporary"},
	},
	{
		Name:        "Muggo",
		Brand:       "Furniro",
		Category:    "Table",
		Price:       2800000,
		ImageURL:    "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=400&h=300&fit=crop",
		Description: "Compact coffee table perfect for small spaces",
		Badge:       &models.Badge{Type: models.BadgeNew, Text: "New"},
		InStock:     true,
		Rating:      4.4,
		ReviewCount: 73,
		Tags:        []string{"compact", "coffee", "small-space", "versatile"},
	},
	{
		Name:        "Pingky",
		Brand:       "Furniro",
		Category:    "Table",
		Price:       3600000,
		ImageURL:    "https://images.unsplash.com/photo-1541558869434-2840d308329a?w=400&h=300&fit=crop",
		Description: "Elegant side table with storage compartments",
		InStock:     true,
		Rating:      4.5,
		ReviewCount: 112,
		Tags:        []string{"elegant", "side-table", "storage", "functional"},
	},
	{
		Name:        "Potty",
		Brand:       "Furniro",
		Category:    "Table",
		Price:       1900000,
		ImageURL:    "https://images.unsplash.com/photo-1592078615290-033ee584e267?w=400&h=300&fit=crop",
		Description: "Minimalist end table with clean lines",
		InStock:     true,
		Rating:      4.2,
		ReviewCount: 58,
		Tags:        []string{"minimalist", "end-table", "clean", "simple"},
	},
	{
		Name:        "Sofa Set",
		Brand:       "Furniro",
		Category:    "Sofa",
		Price:       8500000,
		OldPrice:    price(10500000),
		ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop",
		Description: "Luxury 3-seater sofa set with premium upholstery",
		Badge:       &models.Badge{Type: models.BadgeDiscount, Text: "-19%"},
		InStock:     true,
		Rating:      4.9,
		ReviewCount: 234,
		Tags:        []string{"luxury", "3-seater", "premium", "upholstery"},
	},
	{
		Name:        "Corner Sofa",
		Brand:       "Furniro",
		Category:    "Sofa",
		Price:       7200000,
		ImageURL:    "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=400&h=300&fit=crop",
		Description: "Modern corner sofa perfect for living rooms",
		Badge:       &models.Badge{Type: models.BadgeNew, Text: "New"},
		InStock:     true,
		Rating:      4.6,
		ReviewCount: 167,
		Tags:        []string{"modern", "corner", "living-room", "spacious"},
	},
	{
		Name:        "Loveseat",
		Brand:       "Furniro",
		Category:    "Sofa",
		Price:       4200000,
		ImageURL:    "https://images.unsplash.com/photo-1541558869434-2840d308329a?w=400&h=300&fit=crop",
		Description: "Compact 2-seater loveseat for cozy spaces",
		InStock:     true,
		Rating:      4.4,
		ReviewCount: 98,
		Tags:        []string{"compact", "2-seater", "cozy", "intimate"},
	},
	{
		Name:        "Sectional Sofa",
		Brand:       "Furniro",
		Category:    "Sofa",
		Price:       9800000,
		ImageURL:    "https://images.unsplash.com/photo-1592078615290-033ee584e267?w=400&h=300&fit=crop",
		Description: "Large sectional sofa with modular design",
		InStock:     true,
		Rating:      4.8,
		ReviewCount: 189,
		Tags:        []string{"large", "sectional", "modular", "flexible"},
	},
	{
		Name:        "King Bed",
		Brand:       "Furniro",
		Category:    "Bed",
		Price:       12000000,
		OldPrice:    price(15000000),
		ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop",
		Description: "Luxury king-size bed with premium headboard",
		Badge:       &models.Badge{Type: models.BadgeDiscount, Text: "-20%"},
		InStock:     true,
		Rating:      4.9,
		ReviewCount: 278,
		Tags:        []string{"luxury", "king-size", "premium", "headboard"},
	},
	{
		Name:        "Queen Bed",
		Brand:       "Furniro",
		Category:    "Bed",
		Price:       8500000,
		ImageURL:    "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=400&h=300&fit=crop",
		Description: "Elegant queen-size bed with storage drawers",
		Badge:       &models.Badge{Type: models.BadgeNew, Text: "New"},
		InStock:     true,
		Rating:      4.7,
		ReviewCount: 145,
		Tags:        []string{"elegant", "queen-size", "storage", "drawers"},
	},
	{
		Name:        "Single Bed",
		Brand:       "Furniro",
		Category:    "Bed",
		Price:       4200000,
		ImageURL:    "https://images.unsplash.com/photo-1541558869434-2840d308329a?w=400&h=300&fit=crop",
		Description: "Compact single bed perfect for guest rooms",
		InStock:     true,
		Rating:      4.3,
		ReviewCount: 87,
		Tags:        []string{"compact", "single", "guest-room", "space-saving"},
	},
	{
		Name:        "Bunk Bed",
		Brand:       "Furniro",
		Category:    "Bed",
		Price:       6800000,
		ImageURL:    "https://images.unsplash.com/photo-1592078615290-033ee584e267?w=400&h=300&fit=crop",
		Description: "Space-saving bunk bed for kids' rooms",
		InStock:     true,
		Rating:      4.5,
		ReviewCount: 123,
		Tags:        []string{"space-saving", "bunk", "kids", "functional"},
	},
	{
		Name:        "Wardrobe",
		Brand:       "Furniro",
		Category:    "Storage",
		Price:       5500000,
		OldPrice:    price(6800000),
		ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop",
		Description: "Large wardrobe with sliding doors and multiple compartments",
		Badge:       &models.Badge{Type: models.BadgeDiscount, Text: "-19%"},
		InStock:     true,
		Rating:      4.6,
		ReviewCount: 198,
		Tags:        []string{"large", "sliding-doors", "compartments", "storage"},
	},
	{
		Name:        "Bookshelf",
		Brand:       "Furniro",
		Category:    "Storage",
		Price:       2800000,
		ImageURL:    "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=400&h=300&fit=crop",
		Description: "Modern bookshelf with adjustable shelves",
		Badge:       &models.Badge{Type: models.BadgeNew, Text: "New"},
		InStock:     true,
		Rating:      4.4,
		ReviewCount: 76,
		Tags:        []string{"modern", "adjustable", "shelves", "books"},
	},
	{
		Name:        "Chest of Drawers",
		Brand:       "Furniro",
		Category:    "Storage",
		Price:       3200000,
		ImageURL:    "https://images.unsplash.com/photo-1541558869434-2840d308329a?w=400&h=300&fit=crop",
		Description: "Classic chest of drawers with smooth gliding mechanism",
		InStock:     true,
		Rating:      4.5,
		ReviewCount: 134,
		Tags:        []string{"classic", "drawers", "smooth", "traditional"},
	},
	{
		Name:        "TV Stand",
		Brand:       "Furniro",
		Category:    "Storage",
		Price:       2400000,
		ImageURL:    "https://images.unsplash.com/photo-1592078615290-033ee584e267?w=400&h=300&fit=crop",
		Description: "Sleek TV stand with cable management system",
		InStock:     true,
		Rating:      4.3,
		ReviewCount: 92,
		Tags:        []string{"sleek", "tv-stand", "cable-management", "entertainment"},
	},
}
