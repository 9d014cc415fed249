package repo

import (
	"context"

	"Lumme/internal/model"

	"gorm.io/gorm"
)

// ProductFilter — фильтры каталога. MaxPrice == nil означает «без верхней границы».
type ProductFilter struct {
	Page     int
	PerPage  int
	Occasion string
	Size     string
	MinPrice float64
	MaxPrice *float64
}

// ProductRepository — доступ к товарам.
type ProductRepository interface {
	// ListInStock возвращает страницу товаров в наличии и общее число подходящих.
	ListInStock(ctx context.Context, f ProductFilter) ([]model.Product, int64, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Save(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id int64) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) ListInStock(ctx context.Context, f ProductFilter) ([]model.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{}).Where("is_in_stock = ?", true)
	if f.Occasion != "" {
		q = q.Where("occasion = ?", f.Occasion)
	}
	if f.Size != "" {
		q = q.Where("size = ?", f.Size)
	}
	q = q.Where("price >= ?", f.MinPrice)
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	// запрос используется дважды: для Count и для выборки страницы
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Product
	err := q.Preload("Seller").
		Order("id").
		Offset((f.Page - 1) * f.PerPage).
		Limit(f.PerPage).
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// GetByID возвращает gorm.ErrRecordNotFound, если товара нет.
func (r *productRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).Preload("Seller").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	if err := r.db.WithContext(ctx).Omit("Seller").Create(p).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Preload("Seller").First(p, p.ID).Error
}

func (r *productRepo) Save(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Omit("Seller").Save(p).Error
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}
