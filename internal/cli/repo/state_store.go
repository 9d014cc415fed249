package repo

import "errors"

// Ключи локального состояния клиента.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyCart  = "cart"
)

// ErrNotFound возвращается, если по ключу ничего не сохранено.
var ErrNotFound = errors.New("state key not found")

// StateStore описывает абстракцию долговременного хранилища строковых значений на клиенте
// (токен, профиль пользователя, корзина).
type StateStore interface {
	// Get возвращает значение по ключу или ErrNotFound.
	Get(key string) (string, error)
	// Set сохраняет значение по ключу, перезаписывая старое.
	Set(key, value string) error
	// Remove удаляет значение. Отсутствие ключа ошибкой не считается.
	Remove(key string) error
}
