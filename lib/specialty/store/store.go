package specialtystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	GetByCode(code string) (rec *dbmodels.Specialty, err error)
	List() (list []dbmodels.Specialty, err error)
	ListWithVacancyCounts(limit int) (list []dbmodels.SpecialtyWithCount, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByCode(code string) (rec *dbmodels.Specialty, err error) {
	err = i.db.Model(dbmodels.Specialty{}).
		Where("code = ?", code).
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

func (i impl) List() (list []dbmodels.Specialty, err error) {
	list = []dbmodels.Specialty{}
	err = i.db.Model(dbmodels.Specialty{}).
		Order("code").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListWithVacancyCounts(limit int) (list []dbmodels.SpecialtyWithCount, err error) {
	list = []dbmodels.SpecialtyWithCount{}
	err = i.db.Model(dbmodels.Specialty{}).
		Select("specialties.*, count(v.id) as vacancy_count").
		Joins("left join vacancies as v on v.specialty_code = specialties.code").
		Group("specialties.code").
		Order("vacancy_count desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
