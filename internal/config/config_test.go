package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejectsBadScaleFactor(t *testing.T) {
	c := Default()
	c.ScaleFactor = 0
	require.Error(t, c.Validate())
}

func TestValidateRejectsUnknownTable(t *testing.T) {
	c := Default()
	c.Tables = []string{"widgets"}
	require.Error(t, c.Validate())
}

func TestValidateRejectsDuplicateTable(t *testing.T) {
	c := Default()
	c.Tables = []string{"nation", "nation"}
	require.Error(t, c.Validate())
}

func TestValidateRejectsOutOfRangePartition(t *testing.T) {
	c := Default()
	c.Part = 5
	c.PartCount = 4
	require.Error(t, c.Validate())
}

func TestValidateRejectsColumnarFormat(t *testing.T) {
	c := Default()
	c.OutputFormat = FormatColumnar
	require.Error(t, c.Validate())
}

func TestSortedTablesMatchesCanonicalOrder(t *testing.T) {
	c := Default()
	c.Tables = []string{"lineitem", "region", "nation", "orders"}
	require.Equal(t, []string{"nation", "region", "orders", "lineitem"}, c.SortedTables())
}

func TestIsExplicitPartition(t *testing.T) {
	require.False(t, Default().IsExplicitPartition())

	c := Default()
	c.Part, c.PartCount = 2, 4
	require.True(t, c.IsExplicitPartition())
}
