package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"Lumme/internal/cli/repo"
)

// StateFSStore — файловое хранилище локального состояния CLI: один файл на ключ.
// Если Dir пуст, используется <UserConfigDir>/Lumme.
type StateFSStore struct {
	Dir string
}

var _ repo.StateStore = StateFSStore{}

var keyRe = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

func (s StateFSStore) configDir() (string, error) {
	p := s.Dir
	if p == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(dir, "Lumme")
	}
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s StateFSStore) keyPath(key string) (string, error) {
	if !keyRe.MatchString(key) {
		return "", fmt.Errorf("invalid state key: %q", key)
	}
	dir, err := s.configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, key), nil
}

// Get читает значение ключа из файла как есть.
func (s StateFSStore) Get(key string) (string, error) {
	p, err := s.keyPath(key)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", repo.ErrNotFound
		}
		return "", err
	}
	return string(b), nil
}

// Set сохраняет значение ключа в файл.
func (s StateFSStore) Set(key, value string) error {
	p, err := s.keyPath(key)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(value), 0o600)
}

// Remove удаляет файл ключа; отсутствующий файл не ошибка.
func (s StateFSStore) Remove(key string) error {
	p, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
