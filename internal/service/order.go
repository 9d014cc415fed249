package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Lumme/internal/model"
	"Lumme/internal/repo"

	"github.com/google/uuid"
)

// DeliveryFee добавляется к сумме каждого заказа.
const DeliveryFee = 50.0

// OrderItemInput — позиция заказа из запроса.
type OrderItemInput struct {
	ProductID int64
	Quantity  int
}

// OrderInput — данные нового заказа.
type OrderInput struct {
	Items           []OrderItemInput
	DeliveryAddress string
	DeliveryDate    string // YYYY-MM-DD
	DeliveryTime    string
	PersonalMessage string
	PaymentMethod   string
}

// OrderService — оформление и просмотр заказов.
type OrderService struct {
	orders   repo.OrderRepository
	products repo.ProductRepository
	users    repo.UserRepository
	now      func() time.Time
}

func NewOrderService(o repo.OrderRepository, p repo.ProductRepository, u repo.UserRepository) *OrderService {
	return &OrderService{orders: o, products: p, users: u, now: time.Now}
}

// NewOrderNumber формирует номер вида ORD-YYYYMMDD-XXXXXX.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

// Create оформляет заказ покупателя. Продавец заказа определяется по первому
// товару; цены берутся из каталога, к сумме добавляется DeliveryFee.
func (s *OrderService) Create(ctx context.Context, userID int64, in OrderInput) (*model.Order, error) {
	customer, err := customerOf(ctx, s.users, userID, "create orders")
	if err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, invalid("order must contain items")
	}
	if in.DeliveryAddress == "" {
		return nil, invalid("delivery_address is required")
	}
	date, err := time.Parse(time.DateOnly, in.DeliveryDate)
	if err != nil {
		return nil, invalid("delivery_date must be YYYY-MM-DD")
	}
	payment := in.PaymentMethod
	if payment == "" {
		payment = model.PaymentCashOnDelivery
	}

	order := &model.Order{
		CustomerID:      customer.ID,
		OrderNumber:     NewOrderNumber(s.now()),
		DeliveryAddress: in.DeliveryAddress,
		DeliveryDate:    date,
		DeliveryTime:    in.DeliveryTime,
		PersonalMessage: in.PersonalMessage,
		PaymentMethod:   payment,
		OrderStatus:     model.OrderStatusPending,
	}
	total := DeliveryFee
	for i, it := range in.Items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		p, err := s.products.GetByID(ctx, it.ProductID)
		if err != nil {
			if errors.Is(notFound(err), ErrNotFound) {
				return nil, invalid(fmt.Sprintf("product %d not found", it.ProductID))
			}
			return nil, err
		}
		if i == 0 {
			order.SellerID = p.SellerID
		}
		subtotal := p.Price * float64(qty)
		order.Items = append(order.Items, model.OrderItem{
			ProductID: p.ID,
			Quantity:  qty,
			UnitPrice: p.Price,
			Subtotal:  subtotal,
		})
		total += subtotal
	}
	order.TotalAmount = total

	if err := s.orders.Create(ctx, order); err != nil {
		if errors.Is(err, repo.ErrOutOfStock) {
			return nil, invalid(err.Error())
		}
		return nil, err
	}
	return order, nil
}

// List возвращает заказы покупателя или входящие заказы продавца.
func (s *OrderService) List(ctx context.Context, userID int64) ([]model.Order, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	switch user.UserType {
	case model.UserTypeCustomer:
		c, err := customerOf(ctx, s.users, userID, "list orders")
		if err != nil {
			return nil, err
		}
		return s.orders.ListByCustomer(ctx, c.ID)
	case model.UserTypeSeller:
		sl, err := sellerOf(ctx, s.users, userID, "list orders")
		if err != nil {
			return nil, err
		}
		return s.orders.ListBySeller(ctx, sl.ID)
	default:
		return nil, invalid("unknown user type")
	}
}

// UpdateStatus меняет статус заказа продавца.
func (s *OrderService) UpdateStatus(ctx context.Context, userID, orderID int64, status string) (*model.Order, error) {
	seller, err := sellerOf(ctx, s.users, userID, "update order status")
	if err != nil {
		return nil, err
	}
	if status == "" {
		return nil, invalid("status is required")
	}
	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, notFound(err)
	}
	if o.SellerID != seller.ID {
		return nil, fmt.Errorf("%w: order belongs to another seller", ErrForbidden)
	}
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	o.OrderStatus = status
	return o, nil
}
