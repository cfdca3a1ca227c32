package filesstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	SaveFile(rec dbmodels.FileStorage) (id string, err error)
	GetByID(id string) (rec *dbmodels.FileStorage, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{db: db}
}

type impl struct {
	db *gorm.DB
}

func (i impl) SaveFile(rec dbmodels.FileStorage) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.FileStorage, err error) {
	err = i.db.
		Model(&dbmodels.FileStorage{}).
		Where("id = ?", id).
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
