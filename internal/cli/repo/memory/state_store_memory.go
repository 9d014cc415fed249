package memory

import (
	"sync"

	"Lumme/internal/cli/repo"
)

// StateStore — хранилище состояния в памяти процесса (тесты, --state=memory).
// Нулевое значение готово к использованию.
type StateStore struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ repo.StateStore = (*StateStore)(nil)

// NewStateStore создаёт пустое хранилище.
func NewStateStore() *StateStore {
	return &StateStore{data: map[string]string{}}
}

func (s *StateStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return "", repo.ErrNotFound
	}
	return v, nil
}

func (s *StateStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		s.data = map[string]string{}
	}
	s.data[key] = value
	return nil
}

func (s *StateStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Len возвращает количество сохранённых ключей.
func (s *StateStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
