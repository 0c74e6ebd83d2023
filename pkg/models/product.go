package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product represents a sellable item in the catalog. Price and stock are
// read both at cart time and at order-placement time; the two reads may
// observe different values.
type Product struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string        `json:"name" bson:"name"`
	Description string        `json:"description" bson:"description,omitempty"`
	Price       float64       `json:"price" bson:"price"`
	Images      []string      `json:"images" bson:"images,omitempty"`
	Category    string        `json:"category" bson:"category,omitempty"`
	Stock       int           `json:"stock" bson:"stock"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updated_at"`
}

// ProductSummary is the resolved display form a cart or order line carries
// back to the client.
type ProductSummary struct {
	ID     bson.ObjectID `json:"id"`
	Name   string        `json:"name"`
	Price  float64       `json:"price"`
	Stock  int           `json:"stock"`
	Images []string      `json:"images,omitempty"`
}

func (p *Product) Summary() *ProductSummary {
	return &ProductSummary{
		ID:     p.ID,
		Name:   p.Name,
		Price:  p.Price,
		Stock:  p.Stock,
		Images: p.Images,
	}
}

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"gte=0"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock" binding:"gte=0"`
}

func (req *CreateProductRequest) ToProduct() *Product {
	product := &Product{
		ID:          bson.NewObjectID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Category:    req.Category,
		Stock:       req.Stock,
	}
	product.SetTimestamps()
	return product
}

func (p *Product) SetTimestamps() {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
