package resumehandler

import (
	"fmt"

	"job-board-backend/db"
	"job-board-backend/lib/apperr"
	companystore "job-board-backend/lib/company/store"
	pdfexport "job-board-backend/lib/export/pdf"
	resumestore "job-board-backend/lib/resume/store"
	specialtystore "job-board-backend/lib/specialty/store"
	resumeapimodels "job-board-backend/models/api/resume"
	dbmodels "job-board-backend/models/db"
)

const listPageSize = 3

type Provider interface {
	GetMy(userID string) (view resumeapimodels.ResumeView, err error)
	Create(userID string, data resumeapimodels.ResumeData) (id string, err error)
	Update(userID string, data resumeapimodels.ResumeData) error
	Delete(userID string) error
	ExportPDF(userID string) (pdfFile []byte, fileName string, err error)
	ListAll(requesterID string, page int) (list []resumeapimodels.ResumeView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          resumestore.NewInstance(db.DB),
		companyStore:   companystore.NewInstance(db.DB),
		specialtyStore: specialtystore.NewInstance(db.DB),
	}
}

type impl struct {
	store          resumestore.Provider
	companyStore   companystore.Provider
	specialtyStore specialtystore.Provider
}

func (i impl) GetMy(userID string) (view resumeapimodels.ResumeView, err error) {
	rec, err := i.store.GetByUser(userID)
	if err != nil {
		return view, err
	}
	if rec == nil {
		return view, apperr.NotFound("резюме не найдено")
	}
	return resumeapimodels.Convert(*rec), nil
}

func (i impl) Create(userID string, data resumeapimodels.ResumeData) (id string, err error) {
	if err = i.checkSpecialty(data.SpecialtyCode); err != nil {
		return "", err
	}
	rec := dbmodels.Resume{
		UserID:        userID,
		Name:          data.Name,
		Surname:       data.Surname,
		Status:        data.Status,
		SpecialtyCode: data.SpecialtyCode,
		Salary:        data.Salary,
		Grade:         data.Grade,
		Education:     data.Education,
		Experience:    data.Experience,
		Portfolio:     data.Portfolio,
	}
	return i.store.Create(rec)
}

func (i impl) Update(userID string, data resumeapimodels.ResumeData) error {
	if err := i.checkSpecialty(data.SpecialtyCode); err != nil {
		return err
	}
	updMap := map[string]interface{}{
		"name":           data.Name,
		"surname":        data.Surname,
		"status":         data.Status,
		"specialty_code": data.SpecialtyCode,
		"salary":         data.Salary,
		"grade":          data.Grade,
		"education":      data.Education,
		"experience":     data.Experience,
		"portfolio":      data.Portfolio,
	}
	return i.store.Update(userID, updMap)
}

func (i impl) Delete(userID string) error {
	return i.store.DeleteByUser(userID)
}

func (i impl) ExportPDF(userID string) (pdfFile []byte, fileName string, err error) {
	rec, err := i.store.GetByUser(userID)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "", apperr.NotFound("резюме не найдено")
	}
	pdfFile, err = pdfexport.GenerateResume(*rec)
	if err != nil {
		return nil, "", err
	}
	return pdfFile, fmt.Sprintf("%s.pdf", rec.GetFIO()), nil
}

// ListAll - база резюме, доступна только владельцам компаний
func (i impl) ListAll(requesterID string, page int) (list []resumeapimodels.ResumeView, rowCount int64, err error) {
	company, err := i.companyStore.GetByOwner(requesterID)
	if err != nil {
		return nil, 0, err
	}
	if company == nil {
		return nil, 0, apperr.Forbidden("база резюме доступна только работодателям")
	}
	rowCount, err = i.store.ListCount()
	if err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	recList, err := i.store.List(page, listPageSize)
	if err != nil {
		return nil, 0, err
	}
	list = make([]resumeapimodels.ResumeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, resumeapimodels.Convert(rec))
	}
	return list, rowCount, nil
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
