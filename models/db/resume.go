package dbmodels

import (
	"job-board-backend/models"
)

type Resume struct {
	BaseModel
	UserID        string `gorm:"type:varchar(36);uniqueIndex"` // у пользователя не более одного резюме
	User          *User
	Name          string `gorm:"type:varchar(15)"`
	Surname       string `gorm:"type:varchar(30)"`
	Status        models.ResumeStatus
	SpecialtyCode string     `gorm:"type:varchar(30)"`
	Specialty     *Specialty `gorm:"foreignKey:SpecialtyCode;references:Code"`
	Salary        int
	Grade         models.ResumeGrade
	Education     string `gorm:"type:varchar(1000)"`
	Experience    string `gorm:"type:varchar(1000)"`
	Portfolio     string `gorm:"type:varchar(100)"`
}

func (r Resume) GetFIO() string {
	return r.Surname + " " + r.Name
}
