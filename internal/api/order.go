package api

import (
	"context"
	"net/http"

	"blackshop/internal/models"
	"blackshop/internal/session"
)

// AddCartItem adds quantity units of a product to the token owner's cart.
func (c *Client) AddCartItem(ctx context.Context, in models.AddCartItemInput, token session.Token) error {
	_, err := c.call(ctx, ServiceOrder, http.MethodPost, "/cart/items", in, token, nil)
	return err
}

// GetCart returns the token owner's cart. An empty response yields an
// empty cart.
func (c *Client) GetCart(ctx context.Context, token session.Token) (*models.Cart, error) {
	var cart models.Cart
	if _, err := c.call(ctx, ServiceOrder, http.MethodGet, "/cart", nil, token, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}
