package vacancyhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"job-board-backend/lib/apperr"
	vacancystore "job-board-backend/lib/vacancy/store"
	vacancyapimodels "job-board-backend/models/api/vacancy"
	dbmodels "job-board-backend/models/db"
)

type fakeVacancyStore struct {
	recs    map[string]*dbmodels.Vacancy
	updated map[string]map[string]interface{}
	deleted []string
}

func (f *fakeVacancyStore) Create(rec dbmodels.Vacancy) (string, error) {
	rec.ID = "v-new"
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeVacancyStore) GetByID(id string) (*dbmodels.Vacancy, error) {
	return f.recs[id], nil
}

func (f *fakeVacancyStore) Update(companyID, id string, updMap map[string]interface{}) error {
	rec := f.recs[id]
	if rec == nil || rec.CompanyID != companyID {
		return apperr.NotFound("вакансия не найдена")
	}
	if f.updated == nil {
		f.updated = map[string]map[string]interface{}{}
	}
	f.updated[id] = updMap
	return nil
}

func (f *fakeVacancyStore) Delete(companyID, id string) error {
	rec := f.recs[id]
	if rec == nil || rec.CompanyID != companyID {
		return apperr.NotFound("вакансия не найдена")
	}
	delete(f.recs, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeVacancyStore) List(filter vacancystore.ListFilter, page, limit int) ([]dbmodels.Vacancy, error) {
	list := []dbmodels.Vacancy{}
	for _, rec := range f.recs {
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakeVacancyStore) ListCount(filter vacancystore.ListFilter) (int64, error) {
	return int64(len(f.recs)), nil
}

func (f *fakeVacancyStore) ListByCompany(companyID string) ([]dbmodels.Vacancy, error) {
	list := []dbmodels.Vacancy{}
	for _, rec := range f.recs {
		if rec.CompanyID == companyID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeVacancyStore) ListWithApplicationCounts(companyID string) ([]dbmodels.VacancyExt, error) {
	list := []dbmodels.VacancyExt{}
	for _, rec := range f.recs {
		if rec.CompanyID == companyID {
			list = append(list, dbmodels.VacancyExt{Vacancy: *rec, ApplicationCount: 2})
		}
	}
	return list, nil
}

type fakeCompanyStore struct {
	byOwner map[string]*dbmodels.Company
}

func (f *fakeCompanyStore) Create(rec dbmodels.Company) (string, error) { return "", nil }
func (f *fakeCompanyStore) GetByID(id string) (*dbmodels.Company, error) {
	for _, rec := range f.byOwner {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}
func (f *fakeCompanyStore) GetByOwner(ownerID string) (*dbmodels.Company, error) {
	return f.byOwner[ownerID], nil
}
func (f *fakeCompanyStore) Update(ownerID string, updMap map[string]interface{}) error { return nil }
func (f *fakeCompanyStore) DeleteByOwner(ownerID string) error                         { return nil }
func (f *fakeCompanyStore) SetLogo(ownerID, logoID string) error                       { return nil }
func (f *fakeCompanyStore) ListWithVacancyCounts(limit int) ([]dbmodels.CompanyWithCount, error) {
	return nil, nil
}

type fakeSpecialtyStore struct {
	codes map[string]bool
}

func (f *fakeSpecialtyStore) GetByCode(code string) (*dbmodels.Specialty, error) {
	if !f.codes[code] {
		return nil, nil
	}
	return &dbmodels.Specialty{Code: code, Title: code}, nil
}
func (f *fakeSpecialtyStore) List() ([]dbmodels.Specialty, error) { return nil, nil }
func (f *fakeSpecialtyStore) ListWithVacancyCounts(limit int) ([]dbmodels.SpecialtyWithCount, error) {
	return nil, nil
}

type fakeApplicationStore struct {
	recs map[string]*dbmodels.Application
}

func (f *fakeApplicationStore) Upsert(rec dbmodels.Application) (string, bool, error) {
	return "", false, nil
}
func (f *fakeApplicationStore) GetByVacancyAndUser(vacancyID, userID string) (*dbmodels.Application, error) {
	return f.recs[vacancyID+"/"+userID], nil
}
func (f *fakeApplicationStore) ListByVacancy(vacancyID string) ([]dbmodels.Application, error) {
	list := []dbmodels.Application{}
	for _, rec := range f.recs {
		if rec.VacancyID == vacancyID {
			list = append(list, *rec)
		}
	}
	return list, nil
}
func (f *fakeApplicationStore) CountByVacancy(vacancyID string) (int64, error) { return 0, nil }

func newTestHandler() (impl, *fakeVacancyStore) {
	vacancies := &fakeVacancyStore{recs: map[string]*dbmodels.Vacancy{
		"v-1": {
			BaseModel: dbmodels.BaseModel{ID: "v-1"},
			Title:     "Разработчик Go",
			CompanyID: "c-1",
		},
		"v-2": {
			BaseModel: dbmodels.BaseModel{ID: "v-2"},
			Title:     "Разработчик Python",
			CompanyID: "c-2",
		},
	}}
	handler := impl{
		store: vacancies,
		companyStore: &fakeCompanyStore{byOwner: map[string]*dbmodels.Company{
			"owner-1": {BaseModel: dbmodels.BaseModel{ID: "c-1"}, Name: "Рога и копыта", OwnerID: "owner-1"},
		}},
		specialtyStore:   &fakeSpecialtyStore{codes: map[string]bool{"backend": true}},
		applicationStore: &fakeApplicationStore{recs: map[string]*dbmodels.Application{}},
	}
	return handler, vacancies
}

func validData() vacancyapimodels.VacancyData {
	return vacancyapimodels.VacancyData{
		Title:         "Разработчик Go",
		SpecialtyCode: "backend",
		SalaryMin:     100000,
		SalaryMax:     200000,
		Skills:        "Go, PostgreSQL",
		Description:   "Разработка сервиса",
	}
}

func TestVacancyHandler(t *testing.T) {
	t.Run(`create without company check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		_, err := handler.Create("owner-without-company", validData())
		require.True(t, apperr.IsNotFound(err))
	})

	t.Run(`create with unknown specialty check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		data := validData()
		data.SpecialtyCode = "astrology"
		_, err := handler.Create("owner-1", data)
		vErr, ok := apperr.AsValidation(err)
		require.True(t, ok)
		require.Contains(t, vErr.Fields, "specialty_code")
	})

	t.Run(`create check`, func(t *testing.T) {
		handler, vacancies := newTestHandler()
		id, err := handler.Create("owner-1", validData())
		require.Nil(t, err)
		rec := vacancies.recs[id]
		require.Equal(t, "c-1", rec.CompanyID)
		require.False(t, rec.PublishedAt.IsZero())
	})

	t.Run(`update foreign vacancy check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		err := handler.Update("owner-1", "v-2", validData())
		require.True(t, apperr.IsForbidden(err))
	})

	t.Run(`update missing vacancy check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		err := handler.Update("owner-1", "v-404", validData())
		require.True(t, apperr.IsNotFound(err))
	})

	t.Run(`update keeps published date check`, func(t *testing.T) {
		handler, vacancies := newTestHandler()
		err := handler.Update("owner-1", "v-1", validData())
		require.Nil(t, err)
		require.NotContains(t, vacancies.updated["v-1"], "published_at")
	})

	t.Run(`delete foreign vacancy check`, func(t *testing.T) {
		handler, vacancies := newTestHandler()
		err := handler.Delete("owner-1", "v-2")
		require.True(t, apperr.IsForbidden(err))
		require.Empty(t, vacancies.deleted)
	})

	t.Run(`delete check`, func(t *testing.T) {
		handler, vacancies := newTestHandler()
		err := handler.Delete("owner-1", "v-1")
		require.Nil(t, err)
		require.Equal(t, []string{"v-1"}, vacancies.deleted)
	})

	t.Run(`list by unknown specialty check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		_, _, err := handler.ListBySpecialty("astrology", 1)
		require.True(t, apperr.IsNotFound(err))
	})

	t.Run(`get with application mark check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		applications := handler.applicationStore.(*fakeApplicationStore)
		applications.recs["v-1/user-1"] = &dbmodels.Application{VacancyID: "v-1"}

		view, err := handler.GetByID("v-1", "user-1")
		require.Nil(t, err)
		require.True(t, view.ApplicationSent)

		view, err = handler.GetByID("v-1", "user-2")
		require.Nil(t, err)
		require.False(t, view.ApplicationSent)

		view, err = handler.GetByID("v-1", "")
		require.Nil(t, err)
		require.False(t, view.ApplicationSent)
	})

	t.Run(`get my vacancy with applications check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		applications := handler.applicationStore.(*fakeApplicationStore)
		applications.recs["v-1/user-1"] = &dbmodels.Application{
			BaseModel:       dbmodels.BaseModel{ID: "a-1"},
			VacancyID:       "v-1",
			WrittenUsername: "Иванов Иван",
		}

		view, err := handler.GetMy("owner-1", "v-1")
		require.Nil(t, err)
		require.Equal(t, "v-1", view.ID)
		require.Len(t, view.Applications, 1)
		require.Equal(t, "Иванов Иван", view.Applications[0].WrittenUsername)
	})

	t.Run(`get my foreign vacancy check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		_, err := handler.GetMy("owner-1", "v-2")
		require.True(t, apperr.IsForbidden(err))
	})

	t.Run(`get my missing vacancy check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		_, err := handler.GetMy("owner-1", "v-404")
		require.True(t, apperr.IsNotFound(err))
	})

	t.Run(`my list check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		list, err := handler.MyList("owner-1")
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, int64(2), list[0].ApplicationCount)
	})
}
