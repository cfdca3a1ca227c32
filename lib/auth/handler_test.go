package authhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"job-board-backend/config"
	"job-board-backend/lib/apperr"
	authutils "job-board-backend/lib/utils/auth-utils"
	authapimodels "job-board-backend/models/api/auth"
	profileapimodels "job-board-backend/models/api/profile"
	dbmodels "job-board-backend/models/db"
)

type fakeUserStore struct {
	byID    map[string]*dbmodels.User
	byLogin map[string]*dbmodels.User
	updated map[string]map[string]interface{}
}

func (f *fakeUserStore) Create(rec dbmodels.User) (string, error) {
	if f.byLogin[rec.Login] != nil {
		return "", apperr.Conflict("пользователь с таким логином или email уже существует")
	}
	rec.ID = "u-new"
	f.byID[rec.ID] = &rec
	f.byLogin[rec.Login] = &rec
	return rec.ID, nil
}

func (f *fakeUserStore) GetByID(userID string) (*dbmodels.User, error) {
	return f.byID[userID], nil
}

func (f *fakeUserStore) GetByLogin(login string) (*dbmodels.User, error) {
	return f.byLogin[login], nil
}

func (f *fakeUserStore) Update(userID string, updMap map[string]interface{}) error {
	if f.byID[userID] == nil {
		return apperr.NotFound("пользователь не найден")
	}
	if f.updated == nil {
		f.updated = map[string]map[string]interface{}{}
	}
	f.updated[userID] = updMap
	return nil
}

func newTestHandler() (impl, *fakeUserStore) {
	hash, _ := authutils.HashPassword("super-password")
	user := &dbmodels.User{
		BaseModel:    dbmodels.BaseModel{ID: "u-1"},
		Login:        "ivanov",
		Email:        "ivanov@example.com",
		FirstName:    "Иван",
		LastName:     "Иванов",
		PasswordHash: hash,
	}
	users := &fakeUserStore{
		byID:    map[string]*dbmodels.User{"u-1": user},
		byLogin: map[string]*dbmodels.User{"ivanov": user},
	}
	return impl{userStore: users}, users
}

func TestAuthHandler(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600

	t.Run(`register check`, func(t *testing.T) {
		handler, users := newTestHandler()
		err := handler.Register(authapimodels.RegisterRequest{
			Login:     "petrov",
			Email:     "petrov@example.com",
			FirstName: "Петр",
			LastName:  "Петров",
			Password:  "super-password",
		})
		require.Nil(t, err)
		rec := users.byLogin["petrov"]
		require.NotNil(t, rec)
		// пароль хранится только в виде хеша
		require.NotEqual(t, "super-password", rec.PasswordHash)
		require.True(t, authutils.CheckPassword(rec.PasswordHash, "super-password"))
	})

	t.Run(`register duplicate login check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		err := handler.Register(authapimodels.RegisterRequest{
			Login:     "ivanov",
			Email:     "other@example.com",
			FirstName: "Иван",
			LastName:  "Иванов",
			Password:  "super-password",
		})
		require.True(t, apperr.IsConflict(err))
	})

	t.Run(`login check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		resp, err := handler.Login(authapimodels.LoginRequest{Login: "ivanov", Password: "super-password"})
		require.Nil(t, err)
		require.NotEmpty(t, resp.AccessToken)
	})

	t.Run(`login wrong password check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		_, err := handler.Login(authapimodels.LoginRequest{Login: "ivanov", Password: "wrong"})
		require.True(t, apperr.IsUnauthorized(err))
	})

	t.Run(`login unknown user check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		_, err := handler.Login(authapimodels.LoginRequest{Login: "ghost", Password: "super-password"})
		require.True(t, apperr.IsUnauthorized(err))
	})

	t.Run(`profile check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		view, err := handler.GetProfile("u-1")
		require.Nil(t, err)
		require.Equal(t, "ivanov@example.com", view.Email)

		_, err = handler.GetProfile("u-404")
		require.True(t, apperr.IsNotFound(err))
	})

	t.Run(`profile update keeps email check`, func(t *testing.T) {
		handler, users := newTestHandler()
		err := handler.UpdateProfile("u-1", profileapimodels.ProfileUpdateData{
			FirstName: "Никита",
			LastName:  "Никитин",
		})
		require.Nil(t, err)
		require.NotContains(t, users.updated["u-1"], "email")
		require.NotContains(t, users.updated["u-1"], "login")
	})
}
