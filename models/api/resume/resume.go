package resumeapimodels

import (
	"job-board-backend/lib/utils/validation"
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"
)

// ResumeData - данные формы создания/изменения резюме.
// Владелец берется из токена.
type ResumeData struct {
	Name          string              `json:"name" validate:"required,max=15"`
	Surname       string              `json:"surname" validate:"required,max=30"`
	Status        models.ResumeStatus `json:"status"`                                       // Готовность к работе
	SpecialtyCode string              `json:"specialty_code" validate:"required,max=30"`
	Salary        int                 `json:"salary" validate:"min=0"`                      // Ожидаемое вознаграждение
	Grade         models.ResumeGrade  `json:"grade"`                                        // Квалификация
	Education     string              `json:"education" validate:"required,max=1000"`
	Experience    string              `json:"experience" validate:"required,max=1000"`
	Portfolio     string              `json:"portfolio" validate:"required,url,max=100"`    // Ссылка на портфолио
}

func (r ResumeData) Validate() error {
	if err := validation.CheckStruct(r); err != nil {
		return err
	}
	if err := r.Status.Validate(); err != nil {
		return err
	}
	if err := r.Grade.Validate(); err != nil {
		return err
	}
	return nil
}

type ResumeView struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Surname        string              `json:"surname"`
	Status         models.ResumeStatus `json:"status"`
	StatusLabel    string              `json:"status_label"`
	SpecialtyCode  string              `json:"specialty_code"`
	SpecialtyTitle string              `json:"specialty_title,omitempty"`
	Salary         int                 `json:"salary"`
	Grade          models.ResumeGrade  `json:"grade"`
	GradeLabel     string              `json:"grade_label"`
	Education      string              `json:"education"`
	Experience     string              `json:"experience"`
	Portfolio      string              `json:"portfolio"`
}

func Convert(rec dbmodels.Resume) ResumeView {
	view := ResumeView{
		ID:            rec.ID,
		Name:          rec.Name,
		Surname:       rec.Surname,
		Status:        rec.Status,
		StatusLabel:   rec.Status.String(),
		SpecialtyCode: rec.SpecialtyCode,
		Salary:        rec.Salary,
		Grade:         rec.Grade,
		GradeLabel:    rec.Grade.String(),
		Education:     rec.Education,
		Experience:    rec.Experience,
		Portfolio:     rec.Portfolio,
	}
	if rec.Specialty != nil {
		view.SpecialtyTitle = rec.Specialty.Title
	}
	return view
}

// ResumeMissing - тело 404 ответа на запрос своего резюме,
// флаг подсказывает клиенту показать форму создания
type ResumeMissing struct {
	HasResume bool `json:"has_resume"`
}
