package vacancyhandler

import (
	"bytes"
	"time"

	"job-board-backend/db"
	"job-board-backend/lib/apperr"
	applicationstore "job-board-backend/lib/application/store"
	companystore "job-board-backend/lib/company/store"
	xlsexport "job-board-backend/lib/export/xls"
	specialtystore "job-board-backend/lib/specialty/store"
	vacancystore "job-board-backend/lib/vacancy/store"
	applicationapimodels "job-board-backend/models/api/application"
	vacancyapimodels "job-board-backend/models/api/vacancy"
	dbmodels "job-board-backend/models/db"
)

// публичные списки отдаются короткими страницами
const listPageSize = 3

type Provider interface {
	List(filter vacancyapimodels.VacancyFilter) (list []vacancyapimodels.VacancyItem, rowCount int64, err error)
	ListBySpecialty(specialtyCode string, page int) (list []vacancyapimodels.VacancyItem, rowCount int64, err error)
	GetByID(vacancyID, userID string) (view vacancyapimodels.VacancyView, err error)
	MyList(ownerID string) (list []vacancyapimodels.MyVacancyItem, err error)
	GetMy(ownerID, vacancyID string) (view vacancyapimodels.MyVacancyView, err error)
	Create(ownerID string, data vacancyapimodels.VacancyData) (id string, err error)
	Update(ownerID, vacancyID string, data vacancyapimodels.VacancyData) error
	Delete(ownerID, vacancyID string) error
	Export(ownerID string) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            vacancystore.NewInstance(db.DB),
		companyStore:     companystore.NewInstance(db.DB),
		specialtyStore:   specialtystore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            vacancystore.Provider
	companyStore     companystore.Provider
	specialtyStore   specialtystore.Provider
	applicationStore applicationstore.Provider
}

func (i impl) List(filter vacancyapimodels.VacancyFilter) (list []vacancyapimodels.VacancyItem, rowCount int64, err error) {
	storeFilter := vacancystore.ListFilter{
		Search: filter.Search,
	}
	return i.list(storeFilter, filter.GetPage())
}

// ListBySpecialty возвращает вакансии специализации, неизвестный код - 404
func (i impl) ListBySpecialty(specialtyCode string, page int) (list []vacancyapimodels.VacancyItem, rowCount int64, err error) {
	specialty, err := i.specialtyStore.GetByCode(specialtyCode)
	if err != nil {
		return nil, 0, err
	}
	if specialty == nil {
		return nil, 0, apperr.NotFound("специализация не найдена")
	}
	if page < 1 {
		page = 1
	}
	storeFilter := vacancystore.ListFilter{
		SpecialtyCode: specialtyCode,
	}
	return i.list(storeFilter, page)
}

func (i impl) list(filter vacancystore.ListFilter, page int) (list []vacancyapimodels.VacancyItem, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(filter, page, listPageSize)
	if err != nil {
		return nil, 0, err
	}
	list = make([]vacancyapimodels.VacancyItem, 0, len(recList))
	for _, rec := range recList {
		list = append(list, vacancyapimodels.ConvertToItem(rec))
	}
	return list, rowCount, nil
}

// GetByID - страница вакансии, для авторизованного пользователя
// дополнительно отмечается наличие его отклика
func (i impl) GetByID(vacancyID, userID string) (view vacancyapimodels.VacancyView, err error) {
	rec, err := i.store.GetByID(vacancyID)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, apperr.NotFound("вакансия не найдена")
	}
	view = vacancyapimodels.ConvertToView(*rec)
	if userID != "" {
		application, err := i.applicationStore.GetByVacancyAndUser(vacancyID, userID)
		if err != nil {
			return view, err
		}
		view.ApplicationSent = application != nil
	}
	return view, nil
}

func (i impl) MyList(ownerID string) (list []vacancyapimodels.MyVacancyItem, err error) {
	company, err := i.getCompany(ownerID)
	if err != nil {
		return nil, err
	}
	recList, err := i.store.ListWithApplicationCounts(company.ID)
	if err != nil {
		return nil, err
	}
	list = make([]vacancyapimodels.MyVacancyItem, 0, len(recList))
	for _, rec := range recList {
		list = append(list, vacancyapimodels.ConvertToMyItem(rec))
	}
	return list, nil
}

// GetMy - вакансия владельца компании вместе с ее откликами
func (i impl) GetMy(ownerID, vacancyID string) (view vacancyapimodels.MyVacancyView, err error) {
	_, rec, err := i.checkOwner(ownerID, vacancyID)
	if err != nil {
		return view, err
	}
	view.VacancyView = vacancyapimodels.ConvertToView(*rec)
	recList, err := i.applicationStore.ListByVacancy(vacancyID)
	if err != nil {
		return view, err
	}
	view.Applications = make([]applicationapimodels.ApplicationView, 0, len(recList))
	for _, application := range recList {
		view.Applications = append(view.Applications, applicationapimodels.Convert(application))
	}
	return view, nil
}

func (i impl) Create(ownerID string, data vacancyapimodels.VacancyData) (id string, err error) {
	company, err := i.getCompany(ownerID)
	if err != nil {
		return "", err
	}
	if err = i.checkSpecialty(data.SpecialtyCode); err != nil {
		return "", err
	}
	rec := dbmodels.Vacancy{
		Title:         data.Title,
		Skills:        data.Skills,
		Description:   data.Description,
		SalaryMin:     data.SalaryMin,
		SalaryMax:     data.SalaryMax,
		PublishedAt:   time.Now(),
		CompanyID:     company.ID,
		SpecialtyCode: data.SpecialtyCode,
	}
	return i.store.Create(rec)
}

// Update изменяет вакансию, дата публикации при этом не сбрасывается
func (i impl) Update(ownerID, vacancyID string, data vacancyapimodels.VacancyData) error {
	company, _, err := i.checkOwner(ownerID, vacancyID)
	if err != nil {
		return err
	}
	if err = i.checkSpecialty(data.SpecialtyCode); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"title":          data.Title,
		"skills":         data.Skills,
		"description":    data.Description,
		"salary_min":     data.SalaryMin,
		"salary_max":     data.SalaryMax,
		"specialty_code": data.SpecialtyCode,
	}
	return i.store.Update(company.ID, vacancyID, updMap)
}

func (i impl) Delete(ownerID, vacancyID string) error {
	company, _, err := i.checkOwner(ownerID, vacancyID)
	if err != nil {
		return err
	}
	return i.store.Delete(company.ID, vacancyID)
}

func (i impl) Export(ownerID string) (*bytes.Buffer, error) {
	company, err := i.getCompany(ownerID)
	if err != nil {
		return nil, err
	}
	recList, err := i.store.ListWithApplicationCounts(company.ID)
	if err != nil {
		return nil, err
	}
	return xlsexport.Instance.ExportVacancyList(recList)
}

func (i impl) getCompany(ownerID string) (*dbmodels.Company, error) {
	company, err := i.companyStore.GetByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperr.NotFound("компания не найдена")
	}
	return company, nil
}

// checkOwner проверяет что вакансия существует и принадлежит компании владельца.
// Чужая вакансия - 403, отсутствующая - 404.
func (i impl) checkOwner(ownerID, vacancyID string) (*dbmodels.Company, *dbmodels.Vacancy, error) {
	company, err := i.getCompany(ownerID)
	if err != nil {
		return nil, nil, err
	}
	rec, err := i.store.GetByID(vacancyID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, apperr.NotFound("вакансия не найдена")
	}
	if rec.CompanyID != company.ID {
		return nil, nil, apperr.Forbidden("вакансия принадлежит другой компании")
	}
	return company, rec, nil
}

func (i impl) checkSpecialty(specialtyCode string) error {
	specialty, err := i.specialtyStore.GetByCode(specialtyCode)
	if err != nil {
		return err
	}
	if specialty == nil {
		return apperr.NewValidationError("specialty_code", "неизвестная специализация")
	}
	return nil
}
