package applicationstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-board-backend/lib/apperr"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.Application) (id string, created bool, err error)
	GetByVacancyAndUser(vacancyID, userID string) (rec *dbmodels.Application, err error)
	ListByVacancy(vacancyID string) (list []dbmodels.Application, err error)
	CountByVacancy(vacancyID string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert создает отклик либо обновляет существующий отклик той же пары
// (вакансия, пользователь). Не более одного отклика на пару, инвариант
// закрыт уникальным индексом.
func (i impl) Upsert(rec dbmodels.Application) (id string, created bool, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		existing := dbmodels.Application{}
		findErr := tx.Model(dbmodels.Application{}).
			Where("vacancy_id = ?", rec.VacancyID).
			Where("user_id = ?", rec.UserID).
			First(&existing).
			Error
		if findErr != nil {
			if !errors.Is(findErr, gorm.ErrRecordNotFound) {
				return findErr
			}
			if saveErr := tx.Save(&rec).Error; saveErr != nil {
				return saveErr
			}
			id = rec.ID
			created = true
			return nil
		}
		updMap := map[string]interface{}{
			"written_username":     rec.WrittenUsername,
			"written_phone":        rec.WrittenPhone,
			"written_cover_letter": rec.WrittenCoverLetter,
		}
		if rec.PhotoID != "" {
			updMap["photo_id"] = rec.PhotoID
		}
		if updErr := tx.Model(&dbmodels.Application{}).
			Where("id = ?", existing.ID).
			Updates(updMap).
			Error; updErr != nil {
			return updErr
		}
		id = existing.ID
		return nil
	})
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", false, apperr.Conflict("отклик уже отправлен")
		}
		return "", false, err
	}
	return id, created, nil
}

func (i impl) GetByVacancyAndUser(vacancyID, userID string) (rec *dbmodels.Application, err error) {
	err = i.db.Model(dbmodels.Application{}).
		Where("vacancy_id = ?", vacancyID).
		Where("user_id = ?", userID).
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

func (i impl) ListByVacancy(vacancyID string) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.db.Model(dbmodels.Application{}).
		Where("vacancy_id = ?", vacancyID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountByVacancy(vacancyID string) (count int64, err error) {
	err = i.db.Model(dbmodels.Application{}).
		Where("vacancy_id = ?", vacancyID).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
