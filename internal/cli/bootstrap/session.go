package bootstrap

import (
	"errors"
	"fmt"

	"Lumme/internal/cli/api"
	"Lumme/internal/cli/repo"
	fsrepo "Lumme/internal/cli/repo/fs"
	"Lumme/internal/cli/repo/memory"
	reposqlite "Lumme/internal/cli/repo/sqlite"
	"Lumme/internal/cli/service"
	"Lumme/internal/config"
)

// OpenStateStore открывает хранилище локального состояния по cfg.StateBackend
// и возвращает (store, cleanup, error). cleanup можно вызывать повторно.
func OpenStateStore(cfg *config.Config) (repo.StateStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.StateBackend {
	case config.StateMemory:
		return memory.NewStateStore(), noop, nil
	case config.StateSQLite:
		s, _, err := reposqlite.Open(cfg.StateDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open state db: %w", err)
		}
		if err := s.Migrate(); err != nil {
			_ = s.Close()
			return nil, nil, fmt.Errorf("migrate state db: %w", err)
		}
		return s, s.Close, nil
	case config.StateFS, "":
		return fsrepo.StateFSStore{Dir: cfg.StateDir}, noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
	}
}

// Session — собранные зависимости одной команды CLI.
type Session struct {
	Store  repo.StateStore
	Client *api.Client
	Auth   service.AuthService
	Cart   *service.CartService

	cleanup func() error
}

// Open собирает хранилище, единственный экземпляр клиента API и сервисы.
func Open(cfg *config.Config, opts ...api.Option) (*Session, error) {
	store, cleanup, err := OpenStateStore(cfg)
	if err != nil {
		return nil, err
	}
	client, err := api.New(cfg.APIURL, store, opts...)
	if err != nil {
		return nil, errors.Join(err, cleanup())
	}
	return &Session{
		Store:   store,
		Client:  client,
		Auth:    service.NewAuthService(client, store),
		Cart:    service.NewCartService(client, store),
		cleanup: cleanup,
	}, nil
}

// Close освобождает хранилище.
func (s *Session) Close() error {
	if s == nil || s.cleanup == nil {
		return nil
	}
	return s.cleanup()
}
