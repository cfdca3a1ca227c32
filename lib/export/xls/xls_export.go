package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "job-board-backend/models/db"
)

type Provider interface {
	ExportVacancyList(list []dbmodels.VacancyExt) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var vacancyHeaders = []string{"Вакансия", "Специализация", "Зарплата", "Навыки", "Дата публикации", "Откликов"}

func (i impl) ExportVacancyList(list []dbmodels.VacancyExt) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, vacancyHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		row, err = writeVacancyData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Вакансии")
	return f.WriteToBuffer()
}

func writeVacancyData(f *excelize.File, sheet string, list []dbmodels.VacancyExt, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(vacancyHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Вакансия"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Title); err != nil {
			return row, err
		}

		// "Специализация"
		col++
		if item.Specialty != nil {
			if err := writeColumn(f, sheet, col, row, item.Specialty.Title); err != nil {
				return row, err
			}
		}

		// "Зарплата"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v - %v", item.SalaryMin, item.SalaryMax)); err != nil {
			return row, err
		}

		// "Навыки"
		col++
		if err := writeColumn(f, sheet, col, row, item.Skills); err != nil {
			return row, err
		}

		// "Дата публикации"
		col++
		if !item.PublishedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.PublishedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Откликов"
		col++
		if err := writeColumn(f, sheet, col, row, item.ApplicationCount); err != nil {
			return row, err
		}
	}
	return row, nil
}
