package authapimodels

import (
	"job-board-backend/lib/utils/validation"
)

type RegisterRequest struct {
	Login     string `json:"login" validate:"required,min=3,max=15"`          // Логин, не менее 3-ёх символов
	Email     string `json:"email" validate:"required,email,min=6,max=50"`    // Электронный почтовый ящик
	FirstName string `json:"first_name" validate:"required,min=2,max=20"`     // Имя, не менее 2-ух букв
	LastName  string `json:"last_name" validate:"required,min=3,max=30"`      // Фамилия, не менее 3-ёх букв
	Password  string `json:"password" validate:"required,min=8,max=100"`      // Пароль, не менее 8 символов
}

func (r RegisterRequest) Validate() error {
	return validation.CheckStruct(r)
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.CheckStruct(r)
}

type JWTResponse struct {
	AccessToken string `json:"access_token"`
}
