package vacancystore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"job-board-backend/lib/apperr"
	dbmodels "job-board-backend/models/db"
)

// ListFilter - условия публичного списка вакансий
type ListFilter struct {
	Search        string // подстрока в названии или описании, без учета регистра
	SpecialtyCode string
}

type Provider interface {
	Create(rec dbmodels.Vacancy) (id string, err error)
	GetByID(id string) (rec *dbmodels.Vacancy, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	Delete(companyID, id string) error
	List(filter ListFilter, page, limit int) (list []dbmodels.Vacancy, err error)
	ListCount(filter ListFilter) (count int64, err error)
	ListByCompany(companyID string) (list []dbmodels.Vacancy, err error)
	ListWithApplicationCounts(companyID string) (list []dbmodels.VacancyExt, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vacancy) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Vacancy, err error) {
	err = i.db.Model(dbmodels.Vacancy{}).
		Where("id = ?", id).
		Preload("Company").
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

func (i impl) Update(companyID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperr.NotFound("вакансия не найдена")
	}
	return nil
}

// Delete удаляет вакансию компании, отклики удаляет хук AfterDelete
// в той же транзакции
func (i impl) Delete(companyID, id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		rec := dbmodels.Vacancy{}
		err := tx.Model(dbmodels.Vacancy{}).
			Where("id = ?", id).
			Where("company_id = ?", companyID).
			First(&rec).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("вакансия не найдена")
			}
			return err
		}
		return tx.Delete(&rec).Error
	})
}

func (i impl) List(filter ListFilter, page, limit int) (list []dbmodels.Vacancy, err error) {
	list = []dbmodels.Vacancy{}
	tx := i.db.
		Model(dbmodels.Vacancy{}).
		Preload("Company")
	i.addFilter(tx, filter)
	i.setPage(tx, page, limit)
	err = tx.
		Order("vacancies.created_at").
		Order("vacancies.id").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(filter ListFilter) (count int64, err error) {
	tx := i.db.
		Model(dbmodels.Vacancy{})
	i.addFilter(tx, filter)
	err = tx.Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) ListByCompany(companyID string) (list []dbmodels.Vacancy, err error) {
	list = []dbmodels.Vacancy{}
	err = i.db.Model(dbmodels.Vacancy{}).
		Where("company_id = ?", companyID).
		Preload("Company").
		Order("vacancies.created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListWithApplicationCounts(companyID string) (list []dbmodels.VacancyExt, err error) {
	list = []dbmodels.VacancyExt{}
	err = i.db.Model(dbmodels.Vacancy{}).
		Select("vacancies.*, count(a.id) as application_count").
		Joins("left join applications as a on a.vacancy_id = vacancies.id").
		Where("company_id = ?", companyID).
		Group("vacancies.id").
		Preload("Specialty").
		Order("vacancies.created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter ListFilter) {
	if filter.Search != "" {
		search := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(title) like ? OR LOWER(description) like ?", search, search)
	}
	if filter.SpecialtyCode != "" {
		tx.Where("specialty_code = ?", filter.SpecialtyCode)
	}
}

func (i impl) setPage(tx *gorm.DB, page, limit int) {
	offset := (page - 1) * limit
	tx.Limit(limit).Offset(offset)
}
