package service

import (
	"context"
	"encoding/json"
	"fmt"

	"Lumme/internal/model"
	"Lumme/internal/repo"
)

// Пагинация каталога по умолчанию.
const (
	DefaultPage    = 1
	DefaultPerPage = 12
	maxPerPage     = 100
)

// ProductInput — поля товара из запроса. nil означает «не менять».
type ProductInput struct {
	Name          *string
	Description   *string
	Price         *float64
	Composition   json.RawMessage
	Occasion      *string
	Size          *string
	StockQuantity *int
	ImageURL      *string
}

// ProductPage — страница каталога.
type ProductPage struct {
	Items   []model.Product
	Page    int
	PerPage int
	Total   int64
	Pages   int
}

// ProductService — каталог и управление товарами продавца.
type ProductService struct {
	products repo.ProductRepository
	users    repo.UserRepository
}

func NewProductService(p repo.ProductRepository, u repo.UserRepository) *ProductService {
	return &ProductService{products: p, users: u}
}

// List возвращает товары в наличии. Нулевые page/per_page заменяются значениями по умолчанию.
func (s *ProductService) List(ctx context.Context, f repo.ProductFilter) (ProductPage, error) {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.PerPage < 1 {
		f.PerPage = DefaultPerPage
	}
	if f.PerPage > maxPerPage {
		f.PerPage = maxPerPage
	}
	items, total, err := s.products.ListInStock(ctx, f)
	if err != nil {
		return ProductPage{}, err
	}
	pages := int((total + int64(f.PerPage) - 1) / int64(f.PerPage))
	return ProductPage{Items: items, Page: f.Page, PerPage: f.PerPage, Total: total, Pages: pages}, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

// Create добавляет товар от имени продавца userID.
func (s *ProductService) Create(ctx context.Context, userID int64, in ProductInput) (*model.Product, error) {
	seller, err := sellerOf(ctx, s.users, userID, "create products")
	if err != nil {
		return nil, err
	}
	if in.Name == nil || *in.Name == "" {
		return nil, invalid("name is required")
	}
	if in.Price == nil || *in.Price <= 0 {
		return nil, invalid("price must be positive")
	}
	p := &model.Product{SellerID: seller.ID, Size: model.DefaultProductSize}
	if err := applyProductInput(p, in); err != nil {
		return nil, err
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update меняет переданные поля товара; чужие товары запрещены.
func (s *ProductService) Update(ctx context.Context, userID, id int64, in ProductInput) (*model.Product, error) {
	p, err := s.owned(ctx, userID, id, "update products")
	if err != nil {
		return nil, err
	}
	if err := applyProductInput(p, in); err != nil {
		return nil, err
	}
	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.owned(ctx, userID, id, "delete products"); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

func (s *ProductService) owned(ctx context.Context, userID, id int64, action string) (*model.Product, error) {
	seller, err := sellerOf(ctx, s.users, userID, action)
	if err != nil {
		return nil, err
	}
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if p.SellerID != seller.ID {
		return nil, fmt.Errorf("%w: product belongs to another seller", ErrForbidden)
	}
	return p, nil
}

func applyProductInput(p *model.Product, in ProductInput) error {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return invalid("price must be positive")
		}
		p.Price = *in.Price
	}
	if len(in.Composition) > 0 {
		p.Composition = string(in.Composition)
	}
	if in.Occasion != nil {
		p.Occasion = *in.Occasion
	}
	if in.Size != nil {
		p.Size = *in.Size
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.StockQuantity != nil {
		if *in.StockQuantity < 0 {
			return invalid("stock_quantity must not be negative")
		}
		p.StockQuantity = *in.StockQuantity
	}
	p.IsInStock = p.StockQuantity > 0
	return nil
}
