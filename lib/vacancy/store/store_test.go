package vacancystore

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
	dbmodels "job-board-backend/models/db"
)

func newDryRunStore(t *testing.T) impl {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{
		DryRun:                 true,
		SkipDefaultTransaction: true,
	})
	require.Nil(t, err)
	return impl{db: db}
}

func TestListFilterSQL(t *testing.T) {
	t.Run(`search filter check`, func(t *testing.T) {
		store := newDryRunStore(t)
		tx := store.db.Model(&dbmodels.Vacancy{})
		store.addFilter(tx, ListFilter{Search: "GoLand"})

		stmt := tx.Find(&[]dbmodels.Vacancy{}).Statement
		require.Contains(t, stmt.SQL.String(), "LOWER(title) like ? OR LOWER(description) like ?")
		// подстрока приводится к нижнему регистру на стороне сервиса
		require.Contains(t, stmt.Vars, "%goland%")
	})

	t.Run(`specialty filter check`, func(t *testing.T) {
		store := newDryRunStore(t)
		tx := store.db.Model(&dbmodels.Vacancy{})
		store.addFilter(tx, ListFilter{SpecialtyCode: "backend"})

		stmt := tx.Find(&[]dbmodels.Vacancy{}).Statement
		require.Contains(t, stmt.SQL.String(), "specialty_code = ?")
		require.Contains(t, stmt.Vars, "backend")
	})

	t.Run(`empty filter check`, func(t *testing.T) {
		store := newDryRunStore(t)
		tx := store.db.Model(&dbmodels.Vacancy{})
		store.addFilter(tx, ListFilter{})

		stmt := tx.Find(&[]dbmodels.Vacancy{}).Statement
		require.NotContains(t, stmt.SQL.String(), "LOWER(title)")
		require.NotContains(t, stmt.SQL.String(), "specialty_code")
	})
}
