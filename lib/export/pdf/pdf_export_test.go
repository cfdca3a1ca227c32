package pdfexport

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"job-board-backend/models"
	dbmodels "job-board-backend/models/db"
)

func testResume() dbmodels.Resume {
	return dbmodels.Resume{
		BaseModel:     dbmodels.BaseModel{ID: "r-1"},
		UserID:        "user-1",
		Name:          "Иван",
		Surname:       "Иванов",
		Status:        models.StatusSearch,
		SpecialtyCode: "backend",
		Specialty:     &dbmodels.Specialty{Code: "backend", Title: "Бэкенд"},
		Salary:        150000,
		Grade:         models.GradeMiddle,
		Education:     "МГУ",
		Experience:    "5 лет разработки",
		Portfolio:     "https://example.com/ivanov",
	}
}

func TestGenerateResume(t *testing.T) {
	defer func(dir string) { fontDir = dir }(fontDir)
	fontDir = filepath.Join("..", "..", "..", "static", "font")

	t.Run(`generate check`, func(t *testing.T) {
		pdfFile, err := GenerateResume(testResume())
		require.Nil(t, err)
		require.True(t, len(pdfFile) > 4)
		require.Equal(t, "%PDF", string(pdfFile[:4]))
	})

	t.Run(`empty sections check`, func(t *testing.T) {
		rec := testResume()
		rec.Education = ""
		rec.Experience = ""
		rec.Portfolio = ""
		pdfFile, err := GenerateResume(rec)
		require.Nil(t, err)
		require.NotEmpty(t, pdfFile)
	})

	t.Run(`missing fonts check`, func(t *testing.T) {
		defer func(dir string) { fontDir = dir }(fontDir)
		fontDir = t.TempDir()
		_, err := GenerateResume(testResume())
		require.NotNil(t, err)
	})
}
