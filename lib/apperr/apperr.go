package apperr

import (
	"strings"

	"github.com/pkg/errors"
)

// Классы ошибок уровня запроса. Контроллеры переводят их в HTTP статусы:
// ErrNotFound -> 404, ErrForbidden -> 403, ErrConflict -> 409,
// ErrUnauthorized -> 401, ValidationError -> 400.
var (
	ErrNotFound     = errors.New("запись не найдена")
	ErrForbidden    = errors.New("доступ запрещен")
	ErrConflict     = errors.New("запись уже существует")
	ErrUnauthorized = errors.New("требуется авторизация")
)

func NotFound(msg string) error {
	return errors.Wrap(ErrNotFound, msg)
}

func Forbidden(msg string) error {
	return errors.Wrap(ErrForbidden, msg)
}

func Conflict(msg string) error {
	return errors.Wrap(ErrConflict, msg)
}

func Unauthorized(msg string) error {
	return errors.Wrap(ErrUnauthorized, msg)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// ValidationError - ошибка проверки данных формы, несет сообщения по полям.
// Данные при такой ошибке не сохраняются.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "проверьте правильность заполнения формы"
	}
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, field+": "+msg)
	}
	return strings.Join(msgs, "; ")
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func AsValidation(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
