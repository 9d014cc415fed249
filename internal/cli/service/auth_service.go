package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"Lumme/internal/cli/api"
	"Lumme/internal/cli/model"
	"Lumme/internal/cli/repo"
)

// ErrNotLoggedIn возвращается, если локально нет сохранённого пользователя.
var ErrNotLoggedIn = errors.New("not logged in: run login or register")

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// Register регистрирует пользователя и сохраняет сессию.
	Register(ctx context.Context, req api.RegisterRequest) (*model.User, error)

	// Login выполняет вход и сохраняет сессию.
	Login(ctx context.Context, email, password string) (*model.User, error)

	// Logout очищает локальный контекст аутентификации.
	Logout() error

	// CurrentUser возвращает текущего пользователя, если он сохранён.
	CurrentUser() (*model.User, error)
}

// authClient — часть api.Client, нужная сервису аутентификации.
type authClient interface {
	Register(ctx context.Context, req api.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*model.AuthResponse, error)
	SetToken(token string) error
	Logout() error
}

var _ authClient = (*api.Client)(nil)

// AuthServiceRemote — реализация AuthService поверх HTTP API.
type AuthServiceRemote struct {
	client authClient
	store  repo.StateStore
}

// NewAuthService конструктор сервиса аутентификации.
func NewAuthService(c authClient, store repo.StateStore) *AuthServiceRemote {
	return &AuthServiceRemote{client: c, store: store}
}

var _ AuthService = (*AuthServiceRemote)(nil)

func (s *AuthServiceRemote) Register(ctx context.Context, req api.RegisterRequest) (*model.User, error) {
	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.persist(resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (s *AuthServiceRemote) Login(ctx context.Context, email, password string) (*model.User, error) {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.persist(resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// persist сохраняет токен через клиент и профиль пользователя в хранилище.
func (s *AuthServiceRemote) persist(resp *model.AuthResponse) error {
	if resp.Token == "" {
		return errors.New("no token in auth response")
	}
	if err := s.client.SetToken(resp.Token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	b, err := json.Marshal(resp.User)
	if err != nil {
		return err
	}
	if err := s.store.Set(repo.KeyUser, string(b)); err != nil {
		return fmt.Errorf("saving user: %w", err)
	}
	return nil
}

func (s *AuthServiceRemote) Logout() error {
	return s.client.Logout()
}

func (s *AuthServiceRemote) CurrentUser() (*model.User, error) {
	raw, err := s.store.Get(repo.KeyUser)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, err
	}
	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	return &u, nil
}
