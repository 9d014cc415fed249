package repo

import (
	"context"
	"testing"
	"time"

	"Lumme/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(c *model.Customer, s *model.Seller, p *model.Product, qty int, number string) *model.Order {
	return &model.Order{
		CustomerID:      c.ID,
		SellerID:        s.ID,
		OrderNumber:     number,
		TotalAmount:     p.Price*float64(qty) + 50,
		DeliveryAddress: "Rudaki 1",
		DeliveryDate:    time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
		PaymentMethod:   model.PaymentCashOnDelivery,
		OrderStatus:     model.OrderStatusPending,
		Items:           []model.OrderItem{{ProductID: p.ID, Quantity: qty, UnitPrice: p.Price, Subtotal: p.Price * float64(qty)}},
	}
}

func TestOrderRepository_CreateDecrementsStock(t *testing.T) {
	db := newTestDB(t)
	s, p := seedSeller(t, db, "s@lumme.tj", 3)
	c := seedCustomer(t, db, "c@lumme.tj", "Anna")
	r := NewOrderRepository(db)
	ctx := context.Background()

	o := newOrder(c, s, p, 3, "ORD-20261018-AAAAAA")
	require.NoError(t, r.Create(ctx, o))
	assert.NotZero(t, o.ID)
	assert.NotZero(t, o.Items[0].ID)

	prod, err := NewProductRepository(db).GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, prod.StockQuantity)
	assert.False(t, prod.IsInStock)

	var cust model.Customer
	require.NoError(t, db.First(&cust, c.ID).Error)
	assert.Equal(t, 1, cust.TotalOrders)
	assert.Equal(t, 650.0, cust.TotalSpent)

	// остатков больше нет — заказ откатывается целиком
	err = r.Create(ctx, newOrder(c, s, p, 1, "ORD-20261018-BBBBBB"))
	assert.ErrorIs(t, err, ErrOutOfStock)
	var orders int64
	db.Model(&model.Order{}).Count(&orders)
	assert.EqualValues(t, 1, orders)
}

func TestOrderRepository_ListAndStatus(t *testing.T) {
	db := newTestDB(t)
	s, p := seedSeller(t, db, "s@lumme.tj", 10)
	c := seedCustomer(t, db, "c@lumme.tj", "Anna")
	r := NewOrderRepository(db)
	ctx := context.Background()

	o := newOrder(c, s, p, 1, "ORD-20261018-CCCCCC")
	require.NoError(t, r.Create(ctx, o))

	byCustomer, err := r.ListByCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, byCustomer, 1)

	bySeller, err := r.ListBySeller(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, bySeller, 1)

	require.NoError(t, r.UpdateStatus(ctx, o.ID, "delivered"))
	got, err := r.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "delivered", got.OrderStatus)
}
