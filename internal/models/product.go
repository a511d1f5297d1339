package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Badge types shown on product cards.
const (
	BadgeDiscount = "discount"
	BadgeNew      = "new"
	BadgeSale     = "sale"
)

// Badge is a short promotional label attached to a product.
type Badge struct {
	Type string `bson:"type,omitempty" json:"type,omitempty" validate:"omitempty,oneof=discount new sale"`
	Text string `bson:"text,omitempty" json:"text,omitempty"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	Brand       string             `bson:"brand" json:"brand" validate:"required"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"required,gt=0"`
	OldPrice    *float64           `bson:"oldPrice,omitempty" json:"oldPrice,omitempty" validate:"omitempty,gt=0"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Badge       *Badge             `bson:"badge,omitempty" json:"badge,omitempty"`
	InStock     bool               `bson:"inStock" json:"inStock"`
	Rating      float64            `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	ReviewCount int                `bson:"reviewCount" json:"reviewCount" validate:"gte=0"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
