package profileapimodels

import (
	"job-board-backend/lib/utils/validation"
	dbmodels "job-board-backend/models/db"
)

type ProfileView struct {
	ID        string `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email"` // не редактируется
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func Convert(rec dbmodels.User) ProfileView {
	return ProfileView{
		ID:        rec.ID,
		Login:     rec.Login,
		Email:     rec.Email,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
	}
}

// ProfileUpdateData - редактируемые поля профиля, email сменить нельзя
type ProfileUpdateData struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=20"`
	LastName  string `json:"last_name" validate:"required,min=3,max=30"`
}

func (r ProfileUpdateData) Validate() error {
	return validation.CheckStruct(r)
}
