package sqlite

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"Lumme/internal/cli/repo"

	_ "modernc.org/sqlite"
)

// StateStoreSQLite — хранилище локального состояния клиента в SQLite (таблица key/value).
type StateStoreSQLite struct {
	db *sql.DB
}

var _ repo.StateStore = (*StateStoreSQLite)(nil)

// Open открывает (и создаёт при необходимости) файл БД состояния.
// Если dir пуст, используется <UserConfigDir>/Lumme. Вторым значением возвращается путь к БД.
func Open(dir string) (*StateStoreSQLite, string, error) {
	if dir == "" {
		cfgDir, err := os.UserConfigDir()
		if err != nil {
			return nil, "", err
		}
		dir = filepath.Join(cfgDir, "Lumme")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, "", err
	}
	dbPath := filepath.Join(dir, "state.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, "", err
	}
	return &StateStoreSQLite{db: db}, dbPath, nil
}

// Close закрывает соединение с БД.
func (s *StateStoreSQLite) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Migrate гарантирует наличие таблицы state.
func (s *StateStoreSQLite) Migrate() error {
	_, err := s.db.Exec(initialDDL())
	return err
}

// Get возвращает значение по ключу.
func (s *StateStoreSQLite) Get(key string) (string, error) {
	var v string
	err := s.db.QueryRow(`SELECT value FROM state WHERE key = ?`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repo.ErrNotFound
		}
		return "", err
	}
	return v, nil
}

// Set сохраняет значение (upsert).
func (s *StateStoreSQLite) Set(key, value string) error {
	_, err := s.db.Exec(`INSERT INTO state(key, value, updated_at) VALUES(?, ?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	return err
}

// Remove удаляет значение по ключу.
func (s *StateStoreSQLite) Remove(key string) error {
	_, err := s.db.Exec(`DELETE FROM state WHERE key = ?`, key)
	return err
}
