package vacancyapimodels

import (
	"time"

	"job-board-backend/lib/apperr"
	"job-board-backend/lib/utils/validation"
	applicationapimodels "job-board-backend/models/api/application"
	dbmodels "job-board-backend/models/db"
)

// VacancyData - данные формы создания/изменения вакансии.
// Дата публикации и компания клиентом не передаются.
type VacancyData struct {
	Title         string `json:"title" validate:"required,max=100"`            // Максимум 100 символов
	SpecialtyCode string `json:"specialty_code" validate:"required,max=30"`    // Код специализации
	SalaryMin     int    `json:"salary_min" validate:"min=0"`                  // Минимальная оплата
	SalaryMax     int    `json:"salary_max" validate:"min=0"`                  // Максимальная оплата
	Skills        string `json:"skills" validate:"required,max=500,skills"`    // Список через запятую. Пример: Swift, CoreData, Git, ООП
	Description   string `json:"description" validate:"required,max=10000"`    // Не более 10 000 символов
}

func (r VacancyData) Validate() error {
	if err := validation.CheckStruct(r); err != nil {
		return err
	}
	if r.SalaryMin > r.SalaryMax {
		return apperr.NewValidationError("salary_min", "зарплата 'от' не может превышать зарплату 'до'")
	}
	return nil
}

// VacancyItem - элемент публичного списка вакансий, с данными компании для карточки
type VacancyItem struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Skills        string    `json:"skills"`
	SalaryMin     int       `json:"salary_min"`
	SalaryMax     int       `json:"salary_max"`
	PublishedAt   time.Time `json:"published_at"`
	SpecialtyCode string    `json:"specialty_code"`
	CompanyID     string    `json:"company_id"`
	CompanyName   string    `json:"company_name"`
	CompanyLogoID string    `json:"company_logo_id,omitempty"`
}

func ConvertToItem(rec dbmodels.Vacancy) VacancyItem {
	item := VacancyItem{
		ID:            rec.ID,
		Title:         rec.Title,
		Skills:        rec.Skills,
		SalaryMin:     rec.SalaryMin,
		SalaryMax:     rec.SalaryMax,
		PublishedAt:   rec.PublishedAt,
		SpecialtyCode: rec.SpecialtyCode,
		CompanyID:     rec.CompanyID,
	}
	if rec.Company != nil {
		item.CompanyName = rec.Company.Name
		item.CompanyLogoID = rec.Company.LogoID
	}
	return item
}

// VacancyView - страница вакансии
type VacancyView struct {
	VacancyItem
	Description     string `json:"description"`
	ApplicationSent bool   `json:"application_sent"` // текущий пользователь уже откликался
}

func ConvertToView(rec dbmodels.Vacancy) VacancyView {
	return VacancyView{
		VacancyItem: ConvertToItem(rec),
		Description: rec.Description,
	}
}

// MyVacancyItem - вакансия владельца компании с количеством откликов
type MyVacancyItem struct {
	VacancyItem
	Description      string `json:"description"`
	ApplicationCount int64  `json:"application_count"`
}

func ConvertToMyItem(rec dbmodels.VacancyExt) MyVacancyItem {
	return MyVacancyItem{
		VacancyItem:      ConvertToItem(rec.Vacancy),
		Description:      rec.Description,
		ApplicationCount: rec.ApplicationCount,
	}
}

// MyVacancyView - страница вакансии для владельца компании, с откликами
type MyVacancyView struct {
	VacancyView
	Applications []applicationapimodels.ApplicationView `json:"applications"`
}

// VacancyFilter - фильтр публичного списка вакансий
type VacancyFilter struct {
	Search string `json:"s"`    // подстрока в названии или описании, регистр не учитывается
	Page   int    `json:"page"` // страница (1,2,3..)
}

func (r VacancyFilter) GetPage() int {
	if r.Page > 0 {
		return r.Page
	}
	return 1
}
