package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"Lumme/internal/cli/bootstrap"
	"Lumme/internal/cli/service"
	"Lumme/internal/config"
)

type cartCmd struct{}

func (cartCmd) Name() string        { return "cart" }
func (cartCmd) Description() string { return "Показать корзину" }
func (cartCmd) Usage() string       { return "cart" }

func (cartCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		items, err := s.Cart.Items()
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Fprintln(Out, "Корзина пуста")
			return nil
		}
		for _, it := range items {
			fmt.Fprintf(Out, "- product=%d  qty=%d\n", it.ProductID, it.Quantity)
		}
		return nil
	})
}

type cartAddCmd struct{}

func (cartAddCmd) Name() string        { return "cart-add" }
func (cartAddCmd) Description() string { return "Положить товар в корзину" }
func (cartAddCmd) Usage() string       { return "cart-add <product-id> [qty]" }

func (cartAddCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	qty := 1
	if len(args) == 2 {
		if qty, err = strconv.Atoi(args[1]); err != nil || qty <= 0 {
			return ErrUsage
		}
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		if err := s.Cart.Add(id, qty); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Added product %d x%d\n", id, qty)
		return nil
	})
}

type cartRemoveCmd struct{}

func (cartRemoveCmd) Name() string        { return "cart-remove" }
func (cartRemoveCmd) Description() string { return "Убрать товар из корзины" }
func (cartRemoveCmd) Usage() string       { return "cart-remove <product-id>" }

func (cartRemoveCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		if err := s.Cart.Remove(id); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Removed product %d\n", id)
		return nil
	})
}

type checkoutCmd struct{}

func (checkoutCmd) Name() string { return "checkout" }
func (checkoutCmd) Description() string {
	return "Оформить заказ из корзины (покупатель)"
}
func (checkoutCmd) Usage() string {
	return "checkout -address <addr> -date YYYY-MM-DD [-time t] [-message m] [-payment p]"
}

func (checkoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("checkout")
	var in service.CheckoutInput
	fs.StringVar(&in.DeliveryAddress, "address", "", "")
	fs.StringVar(&in.DeliveryDate, "date", "", "")
	fs.StringVar(&in.DeliveryTime, "time", "", "")
	fs.StringVar(&in.PersonalMessage, "message", "", "")
	fs.StringVar(&in.PaymentMethod, "payment", "cash_on_delivery", "")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	if in.DeliveryAddress == "" {
		return ErrUsage
	}
	if _, err := time.Parse(time.DateOnly, in.DeliveryDate); err != nil {
		return ErrUsage
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		created, err := s.Cart.Checkout(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintln(Out, "Order placed:")
		fmt.Fprintf(Out, "  number: %s\n", created.OrderNumber)
		fmt.Fprintf(Out, "  id:     %d\n", created.OrderID)
		fmt.Fprintf(Out, "  total:  %.2f\n", created.TotalAmount)
		return nil
	})
}

func init() {
	RegisterCmd(cartCmd{})
	RegisterCmd(cartAddCmd{})
	RegisterCmd(cartRemoveCmd{})
	RegisterCmd(checkoutCmd{})
}
