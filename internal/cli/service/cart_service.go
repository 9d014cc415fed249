package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"Lumme/internal/cli/api"
	"Lumme/internal/cli/model"
	"Lumme/internal/cli/repo"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyCart возвращается при оформлении пустой корзины.
var ErrEmptyCart = errors.New("cart is empty")

// priceLookupLimit ограничивает число параллельных запросов цен при оформлении.
const priceLookupLimit = 4

// CheckoutInput — данные доставки для оформления корзины.
type CheckoutInput struct {
	DeliveryAddress string
	DeliveryDate    string // YYYY-MM-DD
	DeliveryTime    string
	PersonalMessage string
	PaymentMethod   string
}

// cartClient — часть api.Client, нужная корзине.
type cartClient interface {
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	CreateOrder(ctx context.Context, in model.OrderInput) (*model.OrderCreated, error)
}

var _ cartClient = (*api.Client)(nil)

// CartService — локальная корзина, хранящаяся под ключом "cart".
type CartService struct {
	client cartClient
	store  repo.StateStore
}

// NewCartService конструктор корзины.
func NewCartService(c cartClient, store repo.StateStore) *CartService {
	return &CartService{client: c, store: store}
}

// Items возвращает содержимое корзины (пустой срез, если корзины нет).
func (s *CartService) Items() ([]model.CartItem, error) {
	raw, err := s.store.Get(repo.KeyCart)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return []model.CartItem{}, nil
		}
		return nil, err
	}
	var items []model.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

func (s *CartService) save(items []model.CartItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.store.Set(repo.KeyCart, string(b))
}

// Add добавляет товар; количество суммируется с уже лежащим в корзине.
func (s *CartService) Add(productID int64, qty int) error {
	if productID <= 0 {
		return fmt.Errorf("invalid product id: %d", productID)
	}
	if qty <= 0 {
		return fmt.Errorf("invalid quantity: %d", qty)
	}
	items, err := s.Items()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += qty
			return s.save(items)
		}
	}
	return s.save(append(items, model.CartItem{ProductID: productID, Quantity: qty}))
}

// Remove убирает товар из корзины. Отсутствующий товар — не ошибка.
func (s *CartService) Remove(productID int64) error {
	items, err := s.Items()
	if err != nil {
		return err
	}
	out := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			out = append(out, it)
		}
	}
	return s.save(out)
}

// Clear очищает корзину.
func (s *CartService) Clear() error {
	return s.store.Remove(repo.KeyCart)
}

// Checkout запрашивает актуальные цены, оформляет заказ и очищает корзину.
func (s *CartService) Checkout(ctx context.Context, in CheckoutInput) (*model.OrderCreated, error) {
	items, err := s.Items()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	orderItems := make([]model.OrderItemInput, len(items))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(priceLookupLimit)
	for i, it := range items {
		i, it := i, it
		g.Go(func() error {
			p, err := s.client.GetProduct(gctx, it.ProductID)
			if err != nil {
				return fmt.Errorf("product %d: %w", it.ProductID, err)
			}
			mu.Lock()
			orderItems[i] = model.OrderItemInput{ID: it.ProductID, Price: p.Price, Quantity: it.Quantity}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	created, err := s.client.CreateOrder(ctx, model.OrderInput{
		Items:           orderItems,
		DeliveryAddress: in.DeliveryAddress,
		DeliveryDate:    in.DeliveryDate,
		DeliveryTime:    in.DeliveryTime,
		PersonalMessage: in.PersonalMessage,
		PaymentMethod:   in.PaymentMethod,
	})
	if err != nil {
		return nil, err
	}
	if err := s.Clear(); err != nil {
		return created, fmt.Errorf("order %s placed, clearing cart: %w", created.OrderNumber, err)
	}
	return created, nil
}
