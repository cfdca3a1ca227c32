package userstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-board-backend/lib/apperr"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.User) (id string, err error)
	GetByID(userID string) (rec *dbmodels.User, err error)
	GetByLogin(login string) (rec *dbmodels.User, err error)
	Update(userID string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.User) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", apperr.Conflict("пользователь с таким логином или email уже существует")
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(userID string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("id = ?", userID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetByLogin(login string) (rec *dbmodels.User, err error) {
	err = i.db.Model(dbmodels.User{}).
		Where("login = ?", login).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.User{}).
		Where("id = ?", userID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperr.NotFound("пользователь не найден")
	}
	return nil
}
