package dbmodels

import (
	"gorm.io/gorm"
	"job-board-backend/models"
)

// AfterDelete - каскадное удаление вакансий компании и откликов на них,
// на уровне БД каскад не настраивается
func (c *Company) AfterDelete(tx *gorm.DB) (err error) {
	if c.ID == "" {
		return nil
	}
	tx.Exec("DELETE FROM applications WHERE vacancy_id IN (SELECT id FROM vacancies WHERE company_id = ?)", c.ID)
	tx.Where("company_id = ?", c.ID).Delete(&Vacancy{})
	return
}

type Company struct {
	BaseModel
	Name          string `gorm:"type:varchar(100)"`
	Location      string `gorm:"type:varchar(25)"`
	Description   string
	EmployeeCount models.EmployeeCount
	LogoID        string  `gorm:"type:varchar(36)"`
	OwnerID       string  `gorm:"type:varchar(36);uniqueIndex"` // у пользователя не более одной компании
	Owner         *User   `gorm:"foreignKey:OwnerID"`
}

type CompanyWithCount struct {
	Company
	VacancyCount int64
}
