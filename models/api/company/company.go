package companyapimodels

import (
	"job-board-backend/lib/utils/validation"
	"job-board-backend/models"
	vacancyapimodels "job-board-backend/models/api/vacancy"
	dbmodels "job-board-backend/models/db"
)

// CompanyData - данные формы создания/изменения компании.
// Владелец берется из токена, клиентом не передается.
type CompanyData struct {
	Name          string               `json:"name" validate:"required,max=100"`       // Не более 100 символов
	Location      string               `json:"location" validate:"required,max=25"`    // Город, не более 25 символов
	Description   string               `json:"description" validate:"required,max=5000"`
	EmployeeCount models.EmployeeCount `json:"employee_count"`                         // Вилка количества сотрудников
}

func (r CompanyData) Validate() error {
	if err := validation.CheckStruct(r); err != nil {
		return err
	}
	if err := r.EmployeeCount.Validate(); err != nil {
		return err
	}
	return nil
}

type CompanyView struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	Location           string               `json:"location"`
	Description        string               `json:"description"`
	EmployeeCount      models.EmployeeCount `json:"employee_count"`
	EmployeeCountLabel string               `json:"employee_count_label"`
	LogoID             string               `json:"logo_id,omitempty"`
}

func Convert(rec dbmodels.Company) CompanyView {
	return CompanyView{
		ID:                 rec.ID,
		Name:               rec.Name,
		Location:           rec.Location,
		Description:        rec.Description,
		EmployeeCount:      rec.EmployeeCount,
		EmployeeCountLabel: rec.EmployeeCount.String(),
		LogoID:             rec.LogoID,
	}
}

// CompanyCard - публичная карточка компании с ее вакансиями
type CompanyCard struct {
	CompanyView
	Vacancies []vacancyapimodels.VacancyItem `json:"vacancies"`
}

// CompanyCount - компания с количеством вакансий, для главной страницы
type CompanyCount struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	LogoID       string `json:"logo_id,omitempty"`
	VacancyCount int64  `json:"vacancy_count"`
}

func ConvertWithCount(rec dbmodels.CompanyWithCount) CompanyCount {
	return CompanyCount{
		ID:           rec.ID,
		Name:         rec.Name,
		LogoID:       rec.LogoID,
		VacancyCount: rec.VacancyCount,
	}
}

// CompanyMissing - тело 404 ответа на запрос своей компании,
// флаг подсказывает клиенту показать форму создания
type CompanyMissing struct {
	HasCompany bool `json:"has_company"`
}
