package api

import (
	"context"
	"fmt"
	"net/http"

	"Lumme/internal/cli/model"
)

// CreateReview posts a product review.
func (c *Client) CreateReview(ctx context.Context, in model.ReviewInput) (*model.ReviewCreated, error) {
	var out model.ReviewCreated
	if err := c.call(ctx, "/reviews", &RequestOptions{Method: http.MethodPost, Body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProductReviews lists reviews of a product.
func (c *Client) GetProductReviews(ctx context.Context, productID int64) ([]model.Review, error) {
	var out model.ReviewList
	if err := c.call(ctx, fmt.Sprintf("/products/%d/reviews", productID), nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}
