package resumestore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-board-backend/lib/apperr"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Resume) (id string, err error)
	GetByUser(userID string) (rec *dbmodels.Resume, err error)
	Update(userID string, updMap map[string]interface{}) error
	DeleteByUser(userID string) error
	List(page, limit int) (list []dbmodels.Resume, err error)
	ListCount() (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create сохраняет резюме, если у пользователя его еще нет.
// Гонку параллельных запросов закрывает уникальный индекс по user_id.
func (i impl) Create(rec dbmodels.Resume) (id string, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(dbmodels.Resume{}).
			Where("user_id = ?", rec.UserID).
			Count(&count).
			Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflict("резюме уже создано")
		}
		return tx.Save(&rec).Error
	})
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", apperr.Conflict("резюме уже создано")
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByUser(userID string) (rec *dbmodels.Resume, err error) {
	err = i.db.Model(dbmodels.Resume{}).
		Where("user_id = ?", userID).
		Preload("Specialty").
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
		Model(&dbmodels.Resume{}).
		Where("user_id = ?", userID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperr.NotFound("резюме не найдено")
	}
	return nil
}

func (i impl) DeleteByUser(userID string) error {
	tx := i.db.
		Where("user_id = ?", userID).
		Delete(&dbmodels.Resume{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperr.NotFound("резюме не найдено")
	}
	return nil
}

func (i impl) List(page, limit int) (list []dbmodels.Resume, err error) {
	list = []dbmodels.Resume{}
	tx := i.db.Model(dbmodels.Resume{})
	i.setPage(tx, page, limit)
	err = tx.
		Preload("Specialty").
		Order("resumes.created_at").
		Order("resumes.id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount() (count int64, err error) {
	err = i.db.Model(dbmodels.Resume{}).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
