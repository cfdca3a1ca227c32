package dbmodels

// Specialty - справочник специализаций, заполняется при старте сервиса
type Specialty struct {
	Code      string `gorm:"primaryKey;type:varchar(30)"`
	Title     string `gorm:"type:varchar(100)"`
	PictureID string `gorm:"type:varchar(36)"`
}

type SpecialtyWithCount struct {
	Specialty
	VacancyCount int64
}
