package service

import (
	"context"

	"Lumme/internal/model"
	"Lumme/internal/repo"

	"github.com/stretchr/testify/mock"
)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateSeller(ctx context.Context, u *model.User, s *model.Seller) error {
	return m.Called(ctx, u, s).Error(0)
}
func (m *mockUserRepo) CreateCustomer(ctx context.Context, u *model.User, c *model.Customer) error {
	return m.Called(ctx, u, c).Error(0)
}
func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetSellerByUserID(ctx context.Context, userID int64) (*model.Seller, error) {
	args := m.Called(ctx, userID)
	if s, ok := args.Get(0).(*model.Seller); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockUserRepo) GetCustomerByUserID(ctx context.Context, userID int64) (*model.Customer, error) {
	args := m.Called(ctx, userID)
	if c, ok := args.Get(0).(*model.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

// мок для repo.ProductRepository
type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) ListInStock(ctx context.Context, f repo.ProductFilter) ([]model.Product, int64, error) {
	args := m.Called(ctx, f)
	list, _ := args.Get(0).([]model.Product)
	return list, args.Get(1).(int64), args.Error(2)
}
func (m *mockProductRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*model.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProductRepo) Create(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockProductRepo) Save(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockProductRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ProductRepository = (*mockProductRepo)(nil)

// мок для repo.OrderRepository
type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Create(ctx context.Context, o *model.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*model.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderRepo) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	args := m.Called(ctx, customerID)
	list, _ := args.Get(0).([]model.Order)
	return list, args.Error(1)
}
func (m *mockOrderRepo) ListBySeller(ctx context.Context, sellerID int64) ([]model.Order, error) {
	args := m.Called(ctx, sellerID)
	list, _ := args.Get(0).([]model.Order)
	return list, args.Error(1)
}
func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

var _ repo.OrderRepository = (*mockOrderRepo)(nil)

// мок для repo.ReviewRepository
type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) Create(ctx context.Context, r *model.Review) error {
	return m.Called(ctx, r).Error(0)
}
func (m *mockReviewRepo) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	args := m.Called(ctx, productID)
	list, _ := args.Get(0).([]model.Review)
	return list, args.Error(1)
}

var _ repo.ReviewRepository = (*mockReviewRepo)(nil)

func ptr[T any](v T) *T { return &v }
