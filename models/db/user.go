package dbmodels

type User struct {
	BaseModel
	Login        string `gorm:"type:varchar(15);uniqueIndex"`
	Email        string `gorm:"type:varchar(50);uniqueIndex"`
	FirstName    string `gorm:"type:varchar(20)"`
	LastName     string `gorm:"type:varchar(30)"`
	PasswordHash string `gorm:"type:varchar(100)"`
}

func (u User) GetFIO() string {
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName + " " + u.LastName
}
