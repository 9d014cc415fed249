package model

import "time"

// Значения по умолчанию для заказа.
const (
	OrderStatusPending    = "pending"
	PaymentCashOnDelivery = "cash_on_delivery"
)

// Order — заказ покупателя у одного продавца.
type Order struct {
	ID         int64 `gorm:"primaryKey"`
	CustomerID int64 `gorm:"not null;index"`
	SellerID   int64 `gorm:"not null;index"`

	OrderNumber     string  `gorm:"uniqueIndex;not null"`
	TotalAmount     float64 `gorm:"not null"`
	DeliveryAddress string  `gorm:"not null"`
	DeliveryDate    time.Time
	DeliveryTime    string
	PersonalMessage string
	PaymentMethod   string
	OrderStatus     string `gorm:"not null"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// OrderItem — позиция заказа с ценой на момент покупки.
type OrderItem struct {
	ID        int64 `gorm:"primaryKey"`
	OrderID   int64 `gorm:"not null;index"`
	ProductID int64 `gorm:"not null;index"`
	Quantity  int   `gorm:"not null"`
	UnitPrice float64
	Subtotal  float64

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
