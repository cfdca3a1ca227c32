package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDictConst(t *testing.T) {
	t.Run(`employee count check`, func(t *testing.T) {
		require.Nil(t, EmployeeCount(1).Validate())
		require.Nil(t, EmployeeCount(5).Validate())
		require.NotNil(t, EmployeeCount(0).Validate())
		require.NotNil(t, EmployeeCount(6).Validate())
		require.Equal(t, "1000+", EmployeeCount(5).String())
	})

	t.Run(`resume grade check`, func(t *testing.T) {
		require.Nil(t, ResumeGrade(1).Validate())
		require.NotNil(t, ResumeGrade(6).Validate())
	})

	t.Run(`resume status check`, func(t *testing.T) {
		require.Nil(t, ResumeStatus(3).Validate())
		require.NotNil(t, ResumeStatus(4).Validate())
	})
}
