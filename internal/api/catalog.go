package api

import (
	"context"
	"net/http"
	"net/url"

	"blackshop/internal/models"
)

type categoriesResponse struct {
	Categories []models.Category `json:"categories"`
}

type categoryResponse struct {
	Category *models.Category `json:"category"`
}

type productsResponse struct {
	Products []models.Product `json:"products"`
}

// ListCategories returns every category. Depending on the catalog version
// the list is flat or nested through Subcategory.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var resp categoriesResponse
	if _, err := c.call(ctx, ServiceCatalog, http.MethodGet, "/categories", nil, "", &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// CreateCategory creates a category and returns it. A nil category with a
// nil error means the service answered with an empty body.
func (c *Client) CreateCategory(ctx context.Context, in models.CreateCategoryInput) (*models.Category, error) {
	var resp categoryResponse
	if _, err := c.call(ctx, ServiceCatalog, http.MethodPost, "/categories", in, "", &resp); err != nil {
		return nil, err
	}
	return resp.Category, nil
}

// GetProduct fetches a single product by id. A nil product with a nil
// error means the service answered with an empty body.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	ok, err := c.call(ctx, ServiceCatalog, http.MethodGet, "/products/"+url.PathEscape(id), nil, "", &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// ListProducts returns the product catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var resp productsResponse
	if _, err := c.call(ctx, ServiceCatalog, http.MethodGet, "/products", nil, "", &resp); err != nil {
		return nil, err
	}
	return resp.Products, nil
}

// CreateProduct creates a product from a finished wizard draft.
func (c *Client) CreateProduct(ctx context.Context, in models.CreateProductInput) (*models.Product, error) {
	var p models.Product
	ok, err := c.call(ctx, ServiceCatalog, http.MethodPost, "/products", in, "", &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}
