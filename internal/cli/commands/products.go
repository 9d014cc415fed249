package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"Lumme/internal/cli/api"
	"Lumme/internal/cli/bootstrap"
	"Lumme/internal/cli/model"
	"Lumme/internal/config"

	"golang.org/x/sync/errgroup"
)

type productsCmd struct{}

func (productsCmd) Name() string { return "products" }
func (productsCmd) Description() string {
	return "Список товаров в наличии с фильтрами"
}
func (productsCmd) Usage() string {
	return "products [-page N] [-per-page N] [-occasion X] [-size X] [-min-price P] [-max-price P]"
}

func (productsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("products")
	var f api.ProductFilters
	fs.IntVar(&f.Page, "page", 0, "")
	fs.IntVar(&f.PerPage, "per-page", 0, "")
	fs.StringVar(&f.Occasion, "occasion", "", "")
	fs.StringVar(&f.Size, "size", "", "")
	fs.Float64Var(&f.MinPrice, "min-price", 0, "")
	fs.Float64Var(&f.MaxPrice, "max-price", 0, "")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		list, err := s.Client.GetProducts(ctx, f)
		if err != nil {
			return err
		}
		if len(list.Data) == 0 {
			fmt.Fprintln(Out, "Нет товаров")
			return nil
		}
		for _, p := range list.Data {
			fmt.Fprintf(Out, "- [%d] %s  price=%.2f  size=%s  stock=%d  rating=%.1f  shop=%s\n",
				p.ID, p.Name, p.Price, p.Size, p.StockQuantity, p.Rating, p.Seller.ShopName)
		}
		pg := list.Pagination
		fmt.Fprintf(Out, "Страница %d из %d, всего: %d\n", pg.Page, pg.Pages, pg.Total)
		return nil
	})
}

type productCmd struct{}

func (productCmd) Name() string        { return "product" }
func (productCmd) Description() string { return "Карточка товара с отзывами" }
func (productCmd) Usage() string       { return "product <id>" }

func (productCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		var (
			p       *model.Product
			reviews []model.Review
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			p, err = s.Client.GetProduct(gctx, id)
			return err
		})
		g.Go(func() error {
			var err error
			reviews, err = s.Client.GetProductReviews(gctx, id)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}
		printProduct(p)
		if len(reviews) == 0 {
			fmt.Fprintln(Out, "Отзывов пока нет")
			return nil
		}
		fmt.Fprintf(Out, "Отзывы (%d):\n", len(reviews))
		for _, r := range reviews {
			fmt.Fprintf(Out, "  %d/5 %s: %s\n", r.Rating, r.CustomerName, r.ReviewText)
		}
		return nil
	})
}

func printProduct(p *model.Product) {
	fmt.Fprintf(Out, "[%d] %s\n", p.ID, p.Name)
	fmt.Fprintf(Out, "  price:    %.2f\n", p.Price)
	if p.Description != "" {
		fmt.Fprintf(Out, "  about:    %s\n", p.Description)
	}
	if len(p.Composition) > 0 && string(p.Composition) != "null" {
		fmt.Fprintf(Out, "  contains: %s\n", compositionText(p.Composition))
	}
	if p.Occasion != "" {
		fmt.Fprintf(Out, "  occasion: %s\n", p.Occasion)
	}
	fmt.Fprintf(Out, "  size:     %s\n", p.Size)
	fmt.Fprintf(Out, "  stock:    %d\n", p.StockQuantity)
	fmt.Fprintf(Out, "  rating:   %.1f (%d)\n", p.Rating, p.ReviewCount)
	fmt.Fprintf(Out, "  shop:     %s (id=%d)\n", p.Seller.ShopName, p.Seller.ID)
}

// productFlags регистрирует поля товара; в input попадают только явно заданные флаги.
type productFlags struct {
	fs                                                       *flag.FlagSet
	name, description, composition, occasion, size, imageURL string
	price                                                    float64
	stock                                                    int
}

func newProductFlags(cmd string) *productFlags {
	pf := &productFlags{fs: newFlagSet(cmd)}
	pf.fs.StringVar(&pf.name, "name", "", "")
	pf.fs.StringVar(&pf.description, "description", "", "")
	pf.fs.StringVar(&pf.composition, "composition", "", "")
	pf.fs.StringVar(&pf.occasion, "occasion", "", "")
	pf.fs.StringVar(&pf.size, "size", "", "")
	pf.fs.StringVar(&pf.imageURL, "image", "", "")
	pf.fs.Float64Var(&pf.price, "price", 0, "")
	pf.fs.IntVar(&pf.stock, "stock", 0, "")
	return pf
}

func (pf *productFlags) input() model.ProductInput {
	var in model.ProductInput
	pf.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			in.Name = pf.name
		case "description":
			in.Description = pf.description
		case "composition":
			in.Composition = compositionJSON(pf.composition)
		case "occasion":
			in.Occasion = pf.occasion
		case "size":
			in.Size = pf.size
		case "image":
			in.ImageURL = pf.imageURL
		case "price":
			price := pf.price
			in.Price = &price
		case "stock":
			stock := pf.stock
			in.StockQuantity = &stock
		}
	})
	return in
}

type productAddCmd struct{}

func (productAddCmd) Name() string        { return "product-add" }
func (productAddCmd) Description() string { return "Добавить товар (продавец)" }
func (productAddCmd) Usage() string {
	return "product-add -name <n> -price <p> [-stock N] [-size s] [-occasion o] [-composition c] [-description d] [-image url]"
}

func (productAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	pf := newProductFlags("product-add")
	if err := pf.fs.Parse(args); err != nil || pf.fs.NArg() != 0 {
		return ErrUsage
	}
	in := pf.input()
	if in.Name == "" || in.Price == nil || *in.Price <= 0 {
		return ErrUsage
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		p, err := s.Client.CreateProduct(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintln(Out, "Created:")
		printProduct(p)
		return nil
	})
}

type productUpdateCmd struct{}

func (productUpdateCmd) Name() string { return "product-update" }
func (productUpdateCmd) Description() string {
	return "Изменить поля товара (продавец)"
}
func (productUpdateCmd) Usage() string {
	return "product-update [-name n] [-price p] [-stock N] [...] <id>"
}

func (productUpdateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	pf := newProductFlags("product-update")
	if err := pf.fs.Parse(args); err != nil || pf.fs.NArg() != 1 {
		return ErrUsage
	}
	id, err := parseID(pf.fs.Arg(0))
	if err != nil {
		return err
	}
	in := pf.input()
	if pf.fs.NFlag() == 0 {
		return errors.New("nothing to update")
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		p, err := s.Client.UpdateProduct(ctx, id, in)
		if err != nil {
			return err
		}
		fmt.Fprintln(Out, "Updated:")
		printProduct(p)
		return nil
	})
}

type productDeleteCmd struct{}

func (productDeleteCmd) Name() string        { return "product-delete" }
func (productDeleteCmd) Description() string { return "Удалить товар (продавец)" }
func (productDeleteCmd) Usage() string       { return "product-delete <id>" }

func (productDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		res, err := s.Client.DeleteProduct(ctx, id)
		if err != nil {
			return err
		}
		msg := res.Message
		if msg == "" {
			msg = "deleted"
		}
		fmt.Fprintf(Out, "Product %d: %s\n", id, msg)
		return nil
	})
}

func init() {
	RegisterCmd(productsCmd{})
	RegisterCmd(productCmd{})
	RegisterCmd(productAddCmd{})
	RegisterCmd(productUpdateCmd{})
	RegisterCmd(productDeleteCmd{})
}
