package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	dbmodels "job-board-backend/models/db"
)

func TestExportVacancyList(t *testing.T) {
	NewHandler()

	t.Run(`empty list check`, func(t *testing.T) {
		buf, err := Instance.ExportVacancyList(nil)
		require.Nil(t, err)
		require.NotZero(t, buf.Len())
	})

	t.Run(`filled list check`, func(t *testing.T) {
		list := []dbmodels.VacancyExt{
			{
				Vacancy: dbmodels.Vacancy{
					BaseModel:   dbmodels.BaseModel{ID: "v-1"},
					Title:       "Разработчик Go",
					Skills:      "Go, PostgreSQL",
					SalaryMin:   100000,
					SalaryMax:   200000,
					PublishedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
					Specialty:   &dbmodels.Specialty{Code: "backend", Title: "Бэкенд"},
				},
				ApplicationCount: 3,
			},
		}
		buf, err := Instance.ExportVacancyList(list)
		require.Nil(t, err)
		require.NotZero(t, buf.Len())
	})
}
