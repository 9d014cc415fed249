package model

import "time"

// Типы пользователей.
const (
	UserTypeCustomer = "customer"
	UserTypeSeller   = "seller"
)

// User — учётная запись покупателя или продавца.
type User struct {
	ID           int64  `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FirstName    string
	LastName     string
	Phone        string
	UserType     string `gorm:"not null"`
	IsActive     bool   `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Seller — профиль магазина, 1:1 с User.
type Seller struct {
	ID     int64 `gorm:"primaryKey"`
	UserID int64 `gorm:"uniqueIndex;not null"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	ShopName        string `gorm:"not null"`
	ShopDescription string
	ShopAddress     string
	ShopPhone       string
	Rating          float64
	TotalSales      int
	IsVerified      bool

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Customer — профиль покупателя, 1:1 с User.
type Customer struct {
	ID     int64 `gorm:"primaryKey"`
	UserID int64 `gorm:"uniqueIndex;not null"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	DefaultAddress string
	TotalOrders    int
	TotalSpent     float64

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
