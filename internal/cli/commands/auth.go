package commands

import (
	"context"
	"fmt"

	"Lumme/internal/cli/api"
	"Lumme/internal/cli/bootstrap"
	"Lumme/internal/config"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Register a customer or seller and store the session" }
func (registerCmd) Usage() string {
	return "register [-seller -shop <name>] [-first-name <n>] <email> <password>"
}

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := newFlagSet("register")
	seller := fs.Bool("seller", false, "register as seller")
	req := api.RegisterRequest{}
	fs.StringVar(&req.FirstName, "first-name", "", "")
	fs.StringVar(&req.LastName, "last-name", "", "")
	fs.StringVar(&req.Phone, "phone", "", "")
	fs.StringVar(&req.ShopName, "shop", "", "")
	fs.StringVar(&req.ShopDescription, "shop-description", "", "")
	fs.StringVar(&req.ShopAddress, "shop-address", "", "")
	if err := fs.Parse(args); err != nil || fs.NArg() != 2 {
		return ErrUsage
	}
	req.Email, req.Password = fs.Arg(0), fs.Arg(1)
	req.UserType = "customer"
	if *seller {
		req.UserType = "seller"
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		u, err := s.Auth.Register(ctx, req)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Registered %s (%s), id=%d\n", u.Email, u.UserType, u.ID)
		return nil
	})
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store the token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		u, err := s.Auth.Login(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Logged in as %s (%s)\n", u.Email, u.UserType)
		return nil
	})
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Forget the token, profile and cart" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		if err := s.Auth.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Logged out")
		return nil
	})
}

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Show the stored user" }
func (whoamiCmd) Usage() string       { return "whoami" }

func (whoamiCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		u, err := s.Auth.CurrentUser()
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "id:    %d\n", u.ID)
		fmt.Fprintf(Out, "email: %s\n", u.Email)
		if u.FirstName != "" {
			fmt.Fprintf(Out, "name:  %s\n", u.FirstName)
		}
		fmt.Fprintf(Out, "type:  %s\n", u.UserType)
		return nil
	})
}

type healthCmd struct{}

func (healthCmd) Name() string        { return "health" }
func (healthCmd) Description() string { return "Check the API is up" }
func (healthCmd) Usage() string       { return "health" }

func (healthCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withSession(cfg, func(s *bootstrap.Session) error {
		h, err := s.Client.HealthCheck(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Status: %s (version %s)\n", h.Status, h.Version)
		if h.Message != "" {
			fmt.Fprintln(Out, h.Message)
		}
		return nil
	})
}

func init() {
	RegisterCmd(registerCmd{})
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
	RegisterCmd(whoamiCmd{})
	RegisterCmd(healthCmd{})
}
