package api

import (
	"context"
	"fmt"
	"net/http"

	"Lumme/internal/cli/model"
)

// CreateOrder places an order (customer only).
func (c *Client) CreateOrder(ctx context.Context, in model.OrderInput) (*model.OrderCreated, error) {
	var out model.OrderCreated
	if err := c.call(ctx, "/orders", &RequestOptions{Method: http.MethodPost, Body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrders lists the orders of the current customer or seller.
func (c *Client) GetOrders(ctx context.Context) ([]model.Order, error) {
	var out model.OrderList
	if err := c.call(ctx, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// UpdateOrderStatus sets the order status (seller only).
func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status string) (*model.OrderStatusResponse, error) {
	var out model.OrderStatusResponse
	opts := &RequestOptions{
		Method: http.MethodPut,
		Body:   map[string]string{"status": status},
	}
	if err := c.call(ctx, fmt.Sprintf("/orders/%d/status", id), opts, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
