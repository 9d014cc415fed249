package commands

import (
	"context"
	"fmt"
	"strconv"

	"Lumme/internal/cli/bootstrap"
	"Lumme/internal/cli/model"
	"Lumme/internal/config"
)

type ordersCmd struct{}

func (ordersCmd) Name() string { return "orders" }
func (ordersCmd) Description() string {
	return "Заказы текущего покупателя или продавца"
}
func (ordersCmd) Usage() string { return "orders" }

func (ordersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		orders, err := s.Client.GetOrders(ctx)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Fprintln(Out, "Нет заказов")
			return nil
		}
		for _, o := range orders {
			fmt.Fprintf(Out, "- [%d] %s  total=%.2f  status=%s  delivery=%s  %s\n",
				o.ID, o.OrderNumber, o.TotalAmount, o.OrderStatus, o.DeliveryDate, o.DeliveryAddress)
		}
		fmt.Fprintf(Out, "Всего: %d\n", len(orders))
		return nil
	})
}

type orderStatusCmd struct{}

func (orderStatusCmd) Name() string { return "order-status" }
func (orderStatusCmd) Description() string {
	return "Сменить статус заказа (продавец)"
}
func (orderStatusCmd) Usage() string { return "order-status <order-id> <status>" }

func (orderStatusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 || args[1] == "" {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		res, err := s.Client.UpdateOrderStatus(ctx, id, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Order %d: %s\n", id, res.OrderStatus)
		return nil
	})
}

type reviewsCmd struct{}

func (reviewsCmd) Name() string        { return "reviews" }
func (reviewsCmd) Description() string { return "Отзывы о товаре" }
func (reviewsCmd) Usage() string       { return "reviews <product-id>" }

func (reviewsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		reviews, err := s.Client.GetProductReviews(ctx, id)
		if err != nil {
			return err
		}
		if len(reviews) == 0 {
			fmt.Fprintln(Out, "Отзывов пока нет")
			return nil
		}
		for _, r := range reviews {
			fmt.Fprintf(Out, "- %d/5 %s (%s): %s\n", r.Rating, r.CustomerName, r.CreatedAt, r.ReviewText)
		}
		return nil
	})
}

type reviewAddCmd struct{}

func (reviewAddCmd) Name() string        { return "review-add" }
func (reviewAddCmd) Description() string { return "Оставить отзыв по заказу" }
func (reviewAddCmd) Usage() string {
	return "review-add [-text <text>] <order-id> <product-id> <seller-id> <rating 1-5>"
}

func (reviewAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("review-add")
	text := fs.String("text", "", "")
	if err := fs.Parse(args); err != nil || fs.NArg() != 4 {
		return ErrUsage
	}
	var ids [3]int64
	for i := range ids {
		id, err := parseID(fs.Arg(i))
		if err != nil {
			return err
		}
		ids[i] = id
	}
	rating, err := strconv.Atoi(fs.Arg(3))
	if err != nil || rating < 1 || rating > 5 {
		return ErrUsage
	}
	in := model.ReviewInput{OrderID: ids[0], ProductID: ids[1], SellerID: ids[2], Rating: rating, ReviewText: *text}
	return withSession(cfg, func(s *bootstrap.Session) error {
		res, err := s.Client.CreateReview(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Review %d created\n", res.ReviewID)
		return nil
	})
}

func init() {
	RegisterCmd(ordersCmd{})
	RegisterCmd(orderStatusCmd{})
	RegisterCmd(reviewsCmd{})
	RegisterCmd(reviewAddCmd{})
}
