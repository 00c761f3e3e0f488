package format

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubRow []string

func (s stubRow) Columns() []string { return s }

func TestDecimalString(t *testing.T) {
	cases := map[Decimal]string{
		0:            "0.00",
		1:            "0.01",
		-1:           "-0.01",
		999999999999: "9999999999.99",
		-999999999999: "-9999999999.99",
	}
	for in, want := range cases {
		require.Equal(t, want, in.String())
	}
}

func TestWriterTBLFormat(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, TBL, nil)
	require.NoError(t, w.WriteRow(stubRow{"1", "ALGERIA", "0"}))
	require.NoError(t, w.Flush())
	require.Equal(t, "1|ALGERIA|0|\n", buf.String())
}

func TestWriterCSVFormat(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, CSV, []string{"r_regionkey", "r_name"})
	require.NoError(t, w.WriteRow(stubRow{"0", "AFRICA"}))
	require.NoError(t, w.WriteRow(stubRow{"1", "AMERICA"}))
	require.NoError(t, w.Flush())
	require.Equal(t, "r_regionkey,r_name\n0,AFRICA\n1,AMERICA\n", buf.String())
}
