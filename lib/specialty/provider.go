package specialtyprovider

import (
	"job-board-backend/db"
	specialtystore "job-board-backend/lib/specialty/store"
	specialtyapimodels "job-board-backend/models/api/specialty"
)

type Provider interface {
	List() (list []specialtyapimodels.SpecialtyView, err error)
	TopWithVacancyCounts(limit int) (list []specialtyapimodels.SpecialtyCount, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: specialtystore.NewInstance(db.DB),
	}
}

type impl struct {
	store specialtystore.Provider
}

func (i impl) List() (list []specialtyapimodels.SpecialtyView, err error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]specialtyapimodels.SpecialtyView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, specialtyapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) TopWithVacancyCounts(limit int) (list []specialtyapimodels.SpecialtyCount, err error) {
	recList, err := i.store.ListWithVacancyCounts(limit)
	if err != nil {
		return nil, err
	}
	result := make([]specialtyapimodels.SpecialtyCount, 0, len(recList))
	for _, rec := range recList {
		result = append(result, specialtyapimodels.ConvertWithCount(rec))
	}
	return result, nil
}
