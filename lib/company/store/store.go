package companystore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-board-backend/lib/apperr"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Company) (id string, err error)
	GetByID(id string) (rec *dbmodels.Company, err error)
	GetByOwner(ownerID string) (rec *dbmodels.Company, err error)
	Update(ownerID string, updMap map[string]interface{}) error
	DeleteByOwner(ownerID string) error
	SetLogo(ownerID, logoID string) error
	ListWithVacancyCounts(limit int) (list []dbmodels.CompanyWithCount, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Create сохраняет компанию, если у владельца её еще нет.
// Проверка и вставка выполняются в одной транзакции, гонку параллельных
// запросов дополнительно закрывает уникальный индекс по owner_id.
func (i impl) Create(rec dbmodels.Company) (id string, err error) {
	err = i.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(dbmodels.Company{}).
			Where("owner_id = ?", rec.OwnerID).
			Count(&count).
			Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflict("компания уже создана")
		}
		return tx.Save(&rec).Error
	})
	if err != nil {
		if strings.Contains(err.Error(), "(SQLSTATE 23505)") {
			return "", apperr.Conflict("компания уже создана")
		}
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Company, err error) {
	err = i.db.Model(dbmodels.Company{}).
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

func (i impl) GetByOwner(ownerID string) (rec *dbmodels.Company, err error) {
	err = i.db.Model(dbmodels.Company{}).
		Where("owner_id = ?", ownerID).
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

func (i impl) Update(ownerID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Company{}).
		Where("owner_id = ?", ownerID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperr.NotFound("компания не найдена")
	}
	return nil
}

// DeleteByOwner удаляет компанию владельца, каскад по вакансиям и откликам
// выполняет хук AfterDelete в той же транзакции
func (i impl) DeleteByOwner(ownerID string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		rec := dbmodels.Company{}
		err := tx.Model(dbmodels.Company{}).
			Where("owner_id = ?", ownerID).
			First(&rec).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("компания не найдена")
			}
			return err
		}
		return tx.Delete(&rec).Error
	})
}

func (i impl) SetLogo(ownerID, logoID string) error {
	return i.Update(ownerID, map[string]interface{}{"logo_id": logoID})
}

func (i impl) ListWithVacancyCounts(limit int) (list []dbmodels.CompanyWithCount, err error) {
	list = []dbmodels.CompanyWithCount{}
	err = i.db.Model(dbmodels.Company{}).
		Select("companies.*, count(v.id) as vacancy_count").
		Joins("left join vacancies as v on v.company_id = companies.id").
		Group("companies.id").
		Order("vacancy_count desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
