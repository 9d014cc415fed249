package model

import "time"

// Review — отзыв покупателя о товаре из заказа.
type Review struct {
	ID         int64     `gorm:"primaryKey"`
	OrderID    int64     `gorm:"not null;index"`
	CustomerID int64     `gorm:"not null;index"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ProductID  int64     `gorm:"not null;index"`
	SellerID   int64     `gorm:"not null"`
	Rating     int       `gorm:"not null"`
	ReviewText string

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// All возвращает все модели для AutoMigrate.
func All() []any {
	return []any{&User{}, &Seller{}, &Customer{}, &Product{}, &Order{}, &OrderItem{}, &Review{}}
}
