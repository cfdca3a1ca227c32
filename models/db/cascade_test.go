package dbmodels

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// newDryRunDB собирает SQL удалений без выполнения, чтобы проверить
// каскадные хуки AfterDelete
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	require.Nil(t, err)

	executed := &[]string{}
	record := func(tx *gorm.DB) {
		*executed = append(*executed, tx.Statement.SQL.String())
	}
	require.Nil(t, db.Callback().Delete().After("gorm:delete").Register("record_delete", record))
	require.Nil(t, db.Callback().Raw().After("gorm:raw").Register("record_raw", record))
	return db, executed
}

func TestCascadeDelete(t *testing.T) {
	t.Run(`company cascade check`, func(t *testing.T) {
		db, executed := newDryRunDB(t)
		err := db.Delete(&Company{BaseModel: BaseModel{ID: "c-1"}}).Error
		require.Nil(t, err)

		all := strings.Join(*executed, "; ")
		require.Contains(t, all, "DELETE FROM applications WHERE vacancy_id IN (SELECT id FROM vacancies WHERE company_id = ?)")
		require.Contains(t, all, "vacancies")
		require.Contains(t, all, "company_id")
	})

	t.Run(`vacancy cascade check`, func(t *testing.T) {
		db, executed := newDryRunDB(t)
		err := db.Delete(&Vacancy{BaseModel: BaseModel{ID: "v-1"}}).Error
		require.Nil(t, err)

		all := strings.Join(*executed, "; ")
		require.Contains(t, all, "applications")
		require.Contains(t, all, "vacancy_id")
	})

	t.Run(`batch delete without id check`, func(t *testing.T) {
		// хук с пустым идентификатором не должен трогать чужие отклики
		db, executed := newDryRunDB(t)
		err := db.Where("company_id = ?", "c-1").Delete(&Vacancy{}).Error
		require.Nil(t, err)

		all := strings.Join(*executed, "; ")
		require.NotContains(t, all, "applications")
	})
}
