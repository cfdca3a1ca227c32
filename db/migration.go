package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "job-board-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.Specialty{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Specialty")
	}
	if err := DB.AutoMigrate(&dbmodels.Company{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Company")
	}
	if err := DB.AutoMigrate(&dbmodels.Vacancy{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Vacancy")
	}
	if err := DB.AutoMigrate(&dbmodels.Resume{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Resume")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
