package authhandler

import (
	log "github.com/sirupsen/logrus"
	"job-board-backend/db"
	"job-board-backend/lib/apperr"
	userstore "job-board-backend/lib/users/store"
	authutils "job-board-backend/lib/utils/auth-utils"
	authapimodels "job-board-backend/models/api/auth"
	profileapimodels "job-board-backend/models/api/profile"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) error
	Login(request authapimodels.LoginRequest) (resp authapimodels.JWTResponse, err error)
	GetProfile(userID string) (view profileapimodels.ProfileView, err error)
	UpdateProfile(userID string, data profileapimodels.ProfileUpdateData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		userStore: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	userStore userstore.Provider
}

func (i impl) Register(request authapimodels.RegisterRequest) error {
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		return err
	}
	rec := dbmodels.User{
		Login:        request.Login,
		Email:        request.Email,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		PasswordHash: hash,
	}
	id, err := i.userStore.Create(rec)
	if err != nil {
		return err
	}
	log.
		WithField("user_id", id).
		WithField("login", request.Login).
		Info("зарегистрирован новый пользователь")
	return nil
}

func (i impl) Login(request authapimodels.LoginRequest) (resp authapimodels.JWTResponse, err error) {
	rec, err := i.userStore.GetByLogin(request.Login)
	if err != nil {
		return resp, err
	}
	if rec == nil || !authutils.CheckPassword(rec.PasswordHash, request.Password) {
		return resp, apperr.Unauthorized("неверный логин или пароль")
	}
	token, err := authutils.GetToken(rec.ID, rec.GetFIO())
	if err != nil {
		return resp, err
	}
	resp.AccessToken = token
	return resp, nil
}

func (i impl) GetProfile(userID string) (view profileapimodels.ProfileView, err error) {
	rec, err := i.userStore.GetByID(userID)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, apperr.NotFound("пользователь не найден")
	}
	return profileapimodels.Convert(*rec), nil
}

func (i impl) UpdateProfile(userID string, data profileapimodels.ProfileUpdateData) error {
	updMap := map[string]interface{}{
		"first_name": data.FirstName,
		"last_name":  data.LastName,
	}
	return i.userStore.Update(userID, updMap)
}
