package apperr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestApperr(t *testing.T) {
	t.Run(`classify check`, func(t *testing.T) {
		err := NotFound("вакансия не найдена")
		require.True(t, IsNotFound(err))
		require.False(t, IsForbidden(err))
		require.Contains(t, err.Error(), "вакансия не найдена")

		err = Forbidden("вакансия принадлежит другой компании")
		require.True(t, IsForbidden(err))
		require.False(t, IsNotFound(err))

		err = Conflict("компания уже создана")
		require.True(t, IsConflict(err))

		err = Unauthorized("неверный логин или пароль")
		require.True(t, IsUnauthorized(err))
	})

	t.Run(`wrapped classify check`, func(t *testing.T) {
		err := errors.Wrap(NotFound("резюме не найдено"), "обработка запроса")
		require.True(t, IsNotFound(err))
	})

	t.Run(`validation error check`, func(t *testing.T) {
		err := NewValidationError("salary_min", "зарплата 'от' не может превышать зарплату 'до'")
		vErr, ok := AsValidation(err)
		require.True(t, ok)
		require.Equal(t, "зарплата 'от' не может превышать зарплату 'до'", vErr.Fields["salary_min"])

		_, ok = AsValidation(NotFound("запись"))
		require.False(t, ok)
	})
}
