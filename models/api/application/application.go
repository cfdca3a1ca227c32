package applicationapimodels

import (
	"time"

	"job-board-backend/lib/utils/validation"
	dbmodels "job-board-backend/models/db"
)

// ApplicationData - данные формы отклика на вакансию.
// Повторная отправка тем же пользователем обновляет существующий отклик.
type ApplicationData struct {
	WrittenUsername    string `json:"written_username" validate:"required,max=50"`        // Настоящие ФИО
	WrittenPhone       string `json:"written_phone" validate:"required,phone_ru"`         // Номер телефона
	WrittenCoverLetter string `json:"written_cover_letter" validate:"required,max=10000"` // Не более 10 000 символов
}

func (r ApplicationData) Validate() error {
	return validation.CheckStruct(r)
}

type ApplicationView struct {
	ID                 string    `json:"id"`
	WrittenUsername    string    `json:"written_username"`
	WrittenPhone       string    `json:"written_phone"`
	WrittenCoverLetter string    `json:"written_cover_letter"`
	PhotoID            string    `json:"photo_id,omitempty"`
	VacancyID          string    `json:"vacancy_id"`
	CreatedAt          time.Time `json:"created_at"`
}

func Convert(rec dbmodels.Application) ApplicationView {
	return ApplicationView{
		ID:                 rec.ID,
		WrittenUsername:    rec.WrittenUsername,
		WrittenPhone:       rec.WrittenPhone,
		WrittenCoverLetter: rec.WrittenCoverLetter,
		PhotoID:            rec.PhotoID,
		VacancyID:          rec.VacancyID,
		CreatedAt:          rec.CreatedAt,
	}
}
