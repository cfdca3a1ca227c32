package dbmodels

import (
	"time"

	"gorm.io/gorm"
)

// AfterDelete - отклики живут не дольше вакансии
func (v *Vacancy) AfterDelete(tx *gorm.DB) (err error) {
	if v.ID == "" {
		return nil
	}
	tx.Where("vacancy_id = ?", v.ID).Delete(&Application{})
	return
}

type Vacancy struct {
	BaseModel
	Title         string `gorm:"type:varchar(100);index"`
	Skills        string `gorm:"type:varchar(500)"`
	Description   string `gorm:"index"`
	SalaryMin     int
	SalaryMax     int
	PublishedAt   time.Time  // выставляется один раз при создании
	CompanyID     string     `gorm:"type:varchar(36);index:idx_vacancy_company"`
	Company       *Company
	SpecialtyCode string     `gorm:"type:varchar(30);index:idx_vacancy_specialty"`
	Specialty     *Specialty `gorm:"foreignKey:SpecialtyCode;references:Code"`
}

type VacancyExt struct {
	Vacancy
	ApplicationCount int64
}
