package db

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm/clause"
	dbmodels "job-board-backend/models/db"
)

// справочник специализаций, пользователи его не редактируют
var specialties = []dbmodels.Specialty{
	{Code: "backend", Title: "Бэкенд"},
	{Code: "frontend", Title: "Фронтенд"},
	{Code: "gamedev", Title: "Геймдев"},
	{Code: "devops", Title: "Девопс"},
	{Code: "design", Title: "Дизайн"},
	{Code: "products", Title: "Продукты"},
	{Code: "management", Title: "Менеджмент"},
	{Code: "testing", Title: "Тестирование"},
}

func InitPreload() {
	err := DB.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&specialties).
		Error
	if err != nil {
		log.WithError(err).Error("ошибка заполнения справочника специализаций")
		return
	}
	log.Info("Справочник специализаций заполнен")
}
