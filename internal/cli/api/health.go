package api

import (
	"context"

	"Lumme/internal/cli/model"
)

// HealthCheck queries GET /health.
func (c *Client) HealthCheck(ctx context.Context) (*model.Health, error) {
	var out model.Health
	if err := c.call(ctx, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
