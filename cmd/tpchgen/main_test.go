package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rishav/tpchgen/internal/dist"
	"github.com/rishav/tpchgen/internal/textpool"
)

func testFixtures(t *testing.T) (*dist.Distributions, *textpool.Pool) {
	t.Helper()
	d, err := dist.Default()
	require.NoError(t, err)
	return d, textpool.New(1<<16, d)
}

func TestTableRowsHeadersMatchFirstRowColumnCount(t *testing.T) {
	d, pool := testFixtures(t)

	for _, table := range []string{"region", "nation", "part", "supplier", "partsupp", "customer", "orders", "lineitem"} {
		headers, next, err := tableRows(table, 0.01, d, pool, 1, 1)
		require.NoError(t, err, table)

		row, ok := next()
		require.True(t, ok, table)
		require.Len(t, row.Columns(), len(headers), table)
	}
}

func TestTableRowsRejectsUnknownTable(t *testing.T) {
	d, pool := testFixtures(t)
	_, _, err := tableRows("widgets", 1, d, pool, 1, 1)
	require.Error(t, err)
}

func TestOutputExtension(t *testing.T) {
	require.Equal(t, ".tbl", outputExtension("tbl"))
	require.Equal(t, ".csv", outputExtension("csv"))
}
