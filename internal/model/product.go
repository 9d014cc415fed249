package model

import "time"

// DefaultProductSize используется, если размер букета не указан.
const DefaultProductSize = "medium"

// Product — букет в каталоге продавца.
type Product struct {
	ID       int64   `gorm:"primaryKey"`
	SellerID int64   `gorm:"not null;index"`
	Seller   *Seller `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Name        string `gorm:"not null"`
	Description string
	Price       float64 `gorm:"not null"`
	Composition string  // JSON как прислал продавец
	Occasion    string  `gorm:"index"`
	Size        string
	ImageURL    string

	StockQuantity int
	IsInStock     bool `gorm:"index"`
	Rating        float64
	ReviewCount   int

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
