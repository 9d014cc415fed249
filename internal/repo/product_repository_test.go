package repo

import (
	"context"
	"testing"

	"Lumme/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProductRepository_ListInStockFiltersAndPages(t *testing.T) {
	db := newTestDB(t)
	s, _ := seedSeller(t, db, "s@lumme.tj", 3) // Розы, 200, medium
	r := NewProductRepository(db)
	ctx := context.Background()

	for _, p := range []*model.Product{
		{SellerID: s.ID, Name: "Пионы", Price: 500, Size: "large", Occasion: "wedding", StockQuantity: 2, IsInStock: true},
		{SellerID: s.ID, Name: "Тюльпаны", Price: 120, Size: "small", Occasion: "birthday", StockQuantity: 5, IsInStock: true},
		{SellerID: s.ID, Name: "Лилии", Price: 300, Size: "large", StockQuantity: 0, IsInStock: false},
	} {
		require.NoError(t, r.Create(ctx, p))
	}

	list, total, err := r.ListInStock(ctx, ProductFilter{Page: 1, PerPage: 12})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, list, 3)
	require.NotNil(t, list[0].Seller)
	assert.Equal(t, s.ShopName, list[0].Seller.ShopName)

	list, total, err = r.ListInStock(ctx, ProductFilter{Page: 1, PerPage: 12, Size: "large"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Пионы", list[0].Name)

	maxPrice := 250.0
	list, total, err = r.ListInStock(ctx, ProductFilter{Page: 1, PerPage: 12, MinPrice: 150, MaxPrice: &maxPrice})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Розы", list[0].Name)

	// вторая страница по 2 — один товар, total не зависит от страницы
	list, total, err = r.ListInStock(ctx, ProductFilter{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, list, 1)
}

func TestProductRepository_SaveAndDelete(t *testing.T) {
	db := newTestDB(t)
	_, p := seedSeller(t, db, "s@lumme.tj", 3)
	r := NewProductRepository(db)
	ctx := context.Background()

	got, err := r.GetByID(ctx, p.ID)
	require.NoError(t, err)
	got.Price = 250
	got.StockQuantity = 0
	got.IsInStock = false
	require.NoError(t, r.Save(ctx, got))

	again, err := r.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 250.0, again.Price)
	assert.False(t, again.IsInStock)

	require.NoError(t, r.Delete(ctx, p.ID))
	_, err = r.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
