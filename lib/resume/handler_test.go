package resumehandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"job-board-backend/lib/apperr"
	"job-board-backend/models"
	resumeapimodels "job-board-backend/models/api/resume"
	dbmodels "job-board-backend/models/db"
)

type fakeResumeStore struct {
	byUser map[string]*dbmodels.Resume
}

func (f *fakeResumeStore) Create(rec dbmodels.Resume) (string, error) {
	if f.byUser[rec.UserID] != nil {
		return "", apperr.Conflict("резюме уже создано")
	}
	rec.ID = "r-new"
	f.byUser[rec.UserID] = &rec
	return rec.ID, nil
}

func (f *fakeResumeStore) GetByUser(userID string) (*dbmodels.Resume, error) {
	return f.byUser[userID], nil
}

func (f *fakeResumeStore) Update(userID string, updMap map[string]interface{}) error {
	if f.byUser[userID] == nil {
		return apperr.NotFound("резюме не найдено")
	}
	return nil
}

func (f *fakeResumeStore) DeleteByUser(userID string) error {
	if f.byUser[userID] == nil {
		return apperr.NotFound("резюме не найдено")
	}
	delete(f.byUser, userID)
	return nil
}

func (f *fakeResumeStore) List(page, limit int) ([]dbmodels.Resume, error) {
	list := []dbmodels.Resume{}
	for _, rec := range f.byUser {
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakeResumeStore) ListCount() (int64, error) {
	return int64(len(f.byUser)), nil
}

type fakeCompanyStore struct {
	byOwner map[string]*dbmodels.Company
}

func (f *fakeCompanyStore) Create(rec dbmodels.Company) (string, error)  { return "", nil }
func (f *fakeCompanyStore) GetByID(id string) (*dbmodels.Company, error) { return nil, nil }
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

func newTestHandler() impl {
	return impl{
		store: &fakeResumeStore{byUser: map[string]*dbmodels.Resume{
			"user-1": {
				BaseModel:     dbmodels.BaseModel{ID: "r-1"},
				UserID:        "user-1",
				Name:          "Иван",
				Surname:       "Иванов",
				Status:        models.StatusSearch,
				SpecialtyCode: "backend",
				Grade:         models.GradeMiddle,
			},
		}},
		companyStore: &fakeCompanyStore{byOwner: map[string]*dbmodels.Company{
			"owner-1": {BaseModel: dbmodels.BaseModel{ID: "c-1"}, OwnerID: "owner-1"},
		}},
		specialtyStore: &fakeSpecialtyStore{codes: map[string]bool{"backend": true}},
	}
}

func validData() resumeapimodels.ResumeData {
	return resumeapimodels.ResumeData{
		Name:          "Петр",
		Surname:       "Петров",
		Status:        models.StatusSearch,
		SpecialtyCode: "backend",
		Salary:        150000,
		Grade:         models.GradeSenior,
		Education:     "МГУ",
		Experience:    "5 лет разработки",
		Portfolio:     "https://example.com/petrov",
	}
}

func TestResumeHandler(t *testing.T) {
	t.Run(`get my missing check`, func(t *testing.T) {
		handler := newTestHandler()
		_, err := handler.GetMy("user-without-resume")
		require.True(t, apperr.IsNotFound(err))
	})

	t.Run(`get my check`, func(t *testing.T) {
		handler := newTestHandler()
		view, err := handler.GetMy("user-1")
		require.Nil(t, err)
		require.Equal(t, "Ищу работу", view.StatusLabel)
		require.Equal(t, "Миддл", view.GradeLabel)
	})

	t.Run(`second resume conflict check`, func(t *testing.T) {
		handler := newTestHandler()
		_, err := handler.Create("user-1", validData())
		require.True(t, apperr.IsConflict(err))
	})

	t.Run(`create with unknown specialty check`, func(t *testing.T) {
		handler := newTestHandler()
		data := validData()
		data.SpecialtyCode = "astrology"
		_, err := handler.Create("user-2", data)
		vErr, ok := apperr.AsValidation(err)
		require.True(t, ok)
		require.Contains(t, vErr.Fields, "specialty_code")
	})

	t.Run(`create check`, func(t *testing.T) {
		handler := newTestHandler()
		id, err := handler.Create("user-2", validData())
		require.Nil(t, err)
		require.Equal(t, "r-new", id)
	})

	t.Run(`list all without company check`, func(t *testing.T) {
		handler := newTestHandler()
		_, _, err := handler.ListAll("user-1", 1)
		require.True(t, apperr.IsForbidden(err))
	})

	t.Run(`list all check`, func(t *testing.T) {
		handler := newTestHandler()
		list, rowCount, err := handler.ListAll("owner-1", 1)
		require.Nil(t, err)
		require.Equal(t, int64(1), rowCount)
		require.Len(t, list, 1)
	})
}
