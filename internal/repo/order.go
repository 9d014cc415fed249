package repo

import (
	"context"
	"errors"

	"Lumme/internal/model"

	"gorm.io/gorm"
)

// ErrOutOfStock возвращается, если товара на складе меньше, чем в заказе.
var ErrOutOfStock = errors.New("not enough stock")

// OrderRepository — доступ к заказам.
type OrderRepository interface {
	// Create сохраняет заказ с позициями, списывает остатки и обновляет
	// статистику покупателя в одной транзакции.
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, it := range order.Items {
			res := tx.Model(&model.Product{}).
				Where("id = ? AND stock_quantity >= ?", it.ProductID, it.Quantity).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", it.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrOutOfStock
			}
			if err := tx.Model(&model.Product{}).
				Where("id = ? AND stock_quantity <= 0", it.ProductID).
				Update("is_in_stock", false).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Model(&model.Customer{}).Where("id = ?", order.CustomerID).Updates(map[string]any{
			"total_orders": gorm.Expr("total_orders + 1"),
			"total_spent":  gorm.Expr("total_spent + ?", order.TotalAmount),
		}).Error
	})
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var o model.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	var list []model.Order
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("id").Find(&list).Error
	return list, err
}

func (r *orderRepo) ListBySeller(ctx context.Context, sellerID int64) ([]model.Order, error) {
	var list []model.Order
	err := r.db.WithContext(ctx).Where("seller_id = ?", sellerID).Order("id").Find(&list).Error
	return list, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Update("order_status", status).Error
}
