package companyhandler

import (
	"context"

	"job-board-backend/db"
	"job-board-backend/lib/apperr"
	companystore "job-board-backend/lib/company/store"
	filestorage "job-board-backend/lib/file-storage"
	vacancystore "job-board-backend/lib/vacancy/store"
	companyapimodels "job-board-backend/models/api/company"
	vacancyapimodels "job-board-backend/models/api/vacancy"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	Create(ownerID string, data companyapimodels.CompanyData) (id string, err error)
	GetMy(ownerID string) (view companyapimodels.CompanyView, err error)
	Update(ownerID string, data companyapimodels.CompanyData) error
	Delete(ownerID string) error
	GetCard(companyID string) (view companyapimodels.CompanyCard, err error)
	TopWithVacancyCounts(limit int) (list []companyapimodels.CompanyCount, err error)
	UploadLogo(ctx context.Context, ownerID, fileName, contentType string, fileBody []byte) (logoID string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:        companystore.NewInstance(db.DB),
		vacancyStore: vacancystore.NewInstance(db.DB),
	}
}

type impl struct {
	store        companystore.Provider
	vacancyStore vacancystore.Provider
}

func (i impl) Create(ownerID string, data companyapimodels.CompanyData) (id string, err error) {
	rec := dbmodels.Company{
		Name:          data.Name,
		Location:      data.Location,
		Description:   data.Description,
		EmployeeCount: data.EmployeeCount,
		OwnerID:       ownerID,
	}
	return i.store.Create(rec)
}

func (i impl) GetMy(ownerID string) (view companyapimodels.CompanyView, err error) {
	rec, err := i.store.GetByOwner(ownerID)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, apperr.NotFound("компания не найдена")
	}
	return companyapimodels.Convert(*rec), nil
}

func (i impl) Update(ownerID string, data companyapimodels.CompanyData) error {
	updMap := map[string]interface{}{
		"name":           data.Name,
		"location":       data.Location,
		"description":    data.Description,
		"employee_count": data.EmployeeCount,
	}
	return i.store.Update(ownerID, updMap)
}

func (i impl) Delete(ownerID string) error {
	return i.store.DeleteByOwner(ownerID)
}

// GetCard - публичная карточка компании с ее вакансиями
func (i impl) GetCard(companyID string) (view companyapimodels.CompanyCard, err error) {
	rec, err := i.store.GetByID(companyID)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, apperr.NotFound("компания не найдена")
	}
	view.CompanyView = companyapimodels.Convert(*rec)
	vacancies, err := i.vacancyStore.ListByCompany(companyID)
	if err != nil {
		return view, err
	}
	view.Vacancies = make([]vacancyapimodels.VacancyItem, 0, len(vacancies))
	for _, vacancy := range vacancies {
		view.Vacancies = append(view.Vacancies, vacancyapimodels.ConvertToItem(vacancy))
	}
	return view, nil
}

func (i impl) TopWithVacancyCounts(limit int) (list []companyapimodels.CompanyCount, err error) {
	recList, err := i.store.ListWithVacancyCounts(limit)
	if err != nil {
		return nil, err
	}
	result := make([]companyapimodels.CompanyCount, 0, len(recList))
	for _, rec := range recList {
		result = append(result, companyapimodels.ConvertWithCount(rec))
	}
	return result, nil
}

func (i impl) UploadLogo(ctx context.Context, ownerID, fileName, contentType string, fileBody []byte) (logoID string, err error) {
	rec, err := i.store.GetByOwner(ownerID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", apperr.NotFound("компания не найдена")
	}
	logoID, err = filestorage.Instance.UploadFile(ctx, fileName, dbmodels.CompanyLogo, contentType, fileBody)
	if err != nil {
		return "", err
	}
	err = i.store.SetLogo(ownerID, logoID)
	if err != nil {
		return "", err
	}
	return logoID, nil
}
