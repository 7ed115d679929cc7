package models

import "github.com/shopspring/decimal"

// Cart is the authenticated user's server-side shopping cart.
type Cart struct {
	Items []CartItem `json:"items"`
}

// CartItem is a single line in the cart.
type CartItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// TotalItems returns the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Total returns the sum of price * quantity across all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	if c == nil {
		return total
	}
	for _, it := range c.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// AddCartItemInput is the request body for adding an item to the cart.
type AddCartItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
