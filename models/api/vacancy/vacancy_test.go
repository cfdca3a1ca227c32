package vacancyapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"job-board-backend/lib/apperr"
)

func validData() VacancyData {
	return VacancyData{
		Title:         "Разработчик Go",
		SpecialtyCode: "backend",
		SalaryMin:     100000,
		SalaryMax:     200000,
		Skills:        "Go, PostgreSQL, Docker",
		Description:   "Разработка сервиса вакансий",
	}
}

func TestVacancyData(t *testing.T) {
	t.Run(`valid check`, func(t *testing.T) {
		require.Nil(t, validData().Validate())
	})

	t.Run(`salary range check`, func(t *testing.T) {
		data := validData()
		data.SalaryMin = 300000
		err := data.Validate()
		vErr, ok := apperr.AsValidation(err)
		require.True(t, ok)
		require.Contains(t, vErr.Fields, "salary_min")
	})

	t.Run(`skills symbols check`, func(t *testing.T) {
		data := validData()
		data.Skills = "Go/PostgreSQL"
		err := data.Validate()
		vErr, ok := apperr.AsValidation(err)
		require.True(t, ok)
		require.Contains(t, vErr.Fields, "skills")
	})

	t.Run(`filter page check`, func(t *testing.T) {
		require.Equal(t, 1, VacancyFilter{}.GetPage())
		require.Equal(t, 1, VacancyFilter{Page: -5}.GetPage())
		require.Equal(t, 3, VacancyFilter{Page: 3}.GetPage())
	})
}
