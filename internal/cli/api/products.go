package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"Lumme/internal/cli/model"
)

// ProductFilters narrows GET /products. Zero values are not sent.
type ProductFilters struct {
	Page     int
	PerPage  int
	Occasion string
	Size     string
	MinPrice float64
	MaxPrice float64
}

// Query encodes the present filters in the fixed order
// page, per_page, occasion, size, min_price, max_price.
func (f ProductFilters) Query() string {
	var parts []string
	add := func(k, v string) {
		parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(v))
	}
	if f.Page != 0 {
		add("page", strconv.Itoa(f.Page))
	}
	if f.PerPage != 0 {
		add("per_page", strconv.Itoa(f.PerPage))
	}
	if f.Occasion != "" {
		add("occasion", f.Occasion)
	}
	if f.Size != "" {
		add("size", f.Size)
	}
	if f.MinPrice != 0 {
		add("min_price", formatFloat(f.MinPrice))
	}
	if f.MaxPrice != 0 {
		add("max_price", formatFloat(f.MaxPrice))
	}
	return strings.Join(parts, "&")
}

// productsEndpoint builds /products with an optional query string.
func productsEndpoint(f ProductFilters) string {
	if q := f.Query(); q != "" {
		return "/products?" + q
	}
	return "/products"
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// GetProducts lists in-stock products.
func (c *Client) GetProducts(ctx context.Context, f ProductFilters) (*model.ProductList, error) {
	var out model.ProductList
	if err := c.call(ctx, productsEndpoint(f), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProduct fetches a product by id.
func (c *Client) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	var out model.ProductResponse
	if err := c.call(ctx, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// CreateProduct creates a product (seller only).
func (c *Client) CreateProduct(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	var out model.ProductResponse
	if err := c.call(ctx, "/products", &RequestOptions{Method: http.MethodPost, Body: in}, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpdateProduct updates the fields present in in.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in model.ProductInput) (*model.Product, error) {
	var out model.ProductResponse
	opts := &RequestOptions{Method: http.MethodPut, Body: in}
	if err := c.call(ctx, fmt.Sprintf("/products/%d", id), opts, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int64) (*model.MessageResponse, error) {
	var out model.MessageResponse
	opts := &RequestOptions{Method: http.MethodDelete}
	if err := c.call(ctx, fmt.Sprintf("/products/%d", id), opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
