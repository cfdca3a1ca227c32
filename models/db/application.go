package dbmodels

type Application struct {
	BaseModel
	WrittenUsername    string `gorm:"type:varchar(50)"`
	WrittenPhone       string `gorm:"type:varchar(20)"`
	WrittenCoverLetter string
	PhotoID            string  `gorm:"type:varchar(36)"`
	VacancyID          string  `gorm:"type:varchar(36);uniqueIndex:idx_application_vacancy_user"`
	Vacancy            *Vacancy
	UserID             *string `gorm:"type:varchar(36);uniqueIndex:idx_application_vacancy_user"` // NULL если пользователь удален
	User               *User
}
