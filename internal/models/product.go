package models

import "github.com/shopspring/decimal"

// Product is a catalog product as shown on the storefront.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category,omitempty"`
	Brand        string    `json:"brand,omitempty"`
	Description  string    `json:"description,omitempty"`
	PrimaryImage string    `json:"primaryImage,omitempty"`
	Variants     []Variant `json:"variants,omitempty"`
}

// Variant is a purchasable variation of a product (size, color, ...).
type Variant struct {
	SKU        string          `json:"sku"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	Attributes []Attribute     `json:"attributes,omitempty"`
	Images     []string        `json:"images,omitempty"`
}

// Attribute is an ordered name/value pair on a variant.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// LowestPrice returns the cheapest variant price and false if the product
// has no variants.
func (p *Product) LowestPrice() (decimal.Decimal, bool) {
	if len(p.Variants) == 0 {
		return decimal.Zero, false
	}
	low := p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price.LessThan(low) {
			low = v.Price
		}
	}
	return low, true
}

// CreateProductInput is the request body for creating a product.
type CreateProductInput struct {
	Name         string    `json:"name"`
	Category     string    `json:"category,omitempty"`
	Brand        string    `json:"brand,omitempty"`
	Description  string    `json:"description,omitempty"`
	PrimaryImage string    `json:"primaryImage,omitempty"`
	Variants     []Variant `json:"variants"`
}
