package api

import (
	"context"
	"net/http"

	"Lumme/internal/cli/model"
)

// RegisterRequest is the registration payload. Seller-only fields are
// ignored by the backend for customers.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	Phone           string `json:"phone,omitempty"`
	UserType        string `json:"user_type,omitempty"`
	ShopName        string `json:"shop_name,omitempty"`
	ShopDescription string `json:"shop_description,omitempty"`
	ShopAddress     string `json:"shop_address,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account. The returned token is not stored; callers
// decide whether to SetToken.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*model.AuthResponse, error) {
	var out model.AuthResponse
	if err := c.call(ctx, "/auth/register", &RequestOptions{Method: http.MethodPost, Body: req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token. The token is not stored.
func (c *Client) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	var out model.AuthResponse
	body := loginRequest{Email: email, Password: password}
	if err := c.call(ctx, "/auth/login", &RequestOptions{Method: http.MethodPost, Body: body}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
