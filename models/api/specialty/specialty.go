package specialtyapimodels

import (
	dbmodels "job-board-backend/models/db"
)

type SpecialtyView struct {
	Code      string `json:"code"`
	Title     string `json:"title"`
	PictureID string `json:"picture_id,omitempty"`
}

func Convert(rec dbmodels.Specialty) SpecialtyView {
	return SpecialtyView{
		Code:      rec.Code,
		Title:     rec.Title,
		PictureID: rec.PictureID,
	}
}

// SpecialtyCount - специализация с количеством вакансий, для главной страницы
type SpecialtyCount struct {
	SpecialtyView
	VacancyCount int64 `json:"vacancy_count"`
}

func ConvertWithCount(rec dbmodels.SpecialtyWithCount) SpecialtyCount {
	return SpecialtyCount{
		SpecialtyView: Convert(rec.Specialty),
		VacancyCount:  rec.VacancyCount,
	}
}
