package service

import (
	"context"

	"Lumme/internal/cli/api"
	"Lumme/internal/cli/model"

	"github.com/stretchr/testify/mock"
)

// --- Моки клиента API ---
type mockClient struct{ mock.Mock }

func (m *mockClient) Register(ctx context.Context, req api.RegisterRequest) (*model.AuthResponse, error) {
	args := m.Called(ctx, req)
	if v, ok := args.Get(0).(*model.AuthResponse); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClient) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	if v, ok := args.Get(0).(*model.AuthResponse); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClient) SetToken(token string) error { return m.Called(token).Error(0) }
func (m *mockClient) Logout() error               { return m.Called().Error(0) }

func (m *mockClient) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Product); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClient) CreateOrder(ctx context.Context, in model.OrderInput) (*model.OrderCreated, error) {
	args := m.Called(ctx, in)
	if v, ok := args.Get(0).(*model.OrderCreated); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var (
	_ authClient = (*mockClient)(nil)
	_ cartClient = (*mockClient)(nil)
)
