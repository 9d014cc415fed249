package service

import "errors"

// Ошибки бизнес-логики; хендлеры переводят их в HTTP-статусы.
var (
	ErrNotFound           = errors.New("Not found")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrInactive           = errors.New("account is deactivated")
	ErrForbidden          = errors.New("forbidden")
)

// ValidationError — некорректный ввод клиента (400).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(msg string) error { return &ValidationError{Msg: msg} }
