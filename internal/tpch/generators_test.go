package tpch

import (
	"strings"
	"testing"

	"github.com/rishav/tpchgen/internal/dist"
	"github.com/rishav/tpchgen/internal/textpool"
	"github.com/stretchr/testify/require"
)

const testScaleFactor = 0.01

func testFixtures(t *testing.T) (*dist.Distributions, *textpool.Pool) {
	t.Helper()
	d, err := dist.Default()
	require.NoError(t, err)
	return d, textpool.New(1<<20, d)
}

func collectParts(t *testing.T, sf float64, part, partCount int32) []Part {
	d, pool := testFixtures(t)
	g := NewPartGenerator(d, pool, sf, part, partCount)
	var rows []Part
	for {
		row, ok := g.Next()
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	return rows
}

func TestPartGeneratorCardinalityAndDeterminism(t *testing.T) {
	rows := collectParts(t, testScaleFactor, 1, 1)
	require.Len(t, rows, int(PartScaleBase*testScaleFactor))

	rows2 := collectParts(t, testScaleFactor, 1, 1)
	require.Equal(t, rows, rows2)

	for i, r := range rows {
		require.Equal(t, int64(i+1), r.PartKey)
		require.GreaterOrEqual(t, r.Size, int32(1))
		require.LessOrEqual(t, r.Size, int32(50))
	}
}

func TestPartGeneratorPartitioningIsContiguous(t *testing.T) {
	whole := collectParts(t, testScaleFactor, 1, 1)

	var parts []Part
	for p := int32(1); p <= 4; p++ {
		parts = append(parts, collectParts(t, testScaleFactor, p, 4)...)
	}
	require.Equal(t, whole, parts)
}

func collectSuppliers(t *testing.T, sf float64, part, partCount int32) []Supplier {
	d, pool := testFixtures(t)
	g := NewSupplierGenerator(d, pool, sf, part, partCount)
	var rows []Supplier
	for {
		row, ok := g.Next()
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	return rows
}

func TestSupplierGeneratorCardinalityAndFields(t *testing.T) {
	rows := collectSuppliers(t, testScaleFactor, 1, 1)
	require.Len(t, rows, int(SupplierScaleBase*testScaleFactor))

	for i, r := range rows {
		require.Equal(t, int64(i+1), r.SuppKey)
		require.GreaterOrEqual(t, r.NationKey, int64(0))
		require.LessOrEqual(t, r.NationKey, int64(24))
	}
}

func TestSupplierGeneratorIsDeterministic(t *testing.T) {
	require.Equal(t, collectSuppliers(t, testScaleFactor, 1, 1), collectSuppliers(t, testScaleFactor, 1, 1))
}

func TestSupplierGeneratorEmbedsBBBPhraseInSomeComments(t *testing.T) {
	rows := collectSuppliers(t, 1.0, 1, 1)
	found := 0
	for _, r := range rows {
		if containsBBB(r.Comment) {
			found++
		}
	}
	require.Greater(t, found, 0)
}

func containsBBB(s string) bool {
	return strings.Contains(s, "Customer") && (strings.Contains(s, "Complaints") || strings.Contains(s, "Recommends"))
}

func collectPartSupps(t *testing.T, sf float64, part, partCount int32) []PartSupp {
	d, pool := testFixtures(t)
	g := NewPartSuppGenerator(d, pool, sf, part, partCount)
	var rows []PartSupp
	for {
		row, ok := g.Next()
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	return rows
}

func TestPartSuppGeneratorFourRowsPerPart(t *testing.T) {
	rows := collectPartSupps(t, testScaleFactor, 1, 1)
	partCount := int(PartScaleBase * testScaleFactor)
	require.Len(t, rows, partCount*partsuppRowsPerPartKey)

	for i, r := range rows {
		wantPartKey := int64(i/partsuppRowsPerPartKey) + 1
		require.Equal(t, wantPartKey, r.PartKey)
		require.GreaterOrEqual(t, r.SuppKey, int64(1))
	}
}

func collectCustomers(t *testing.T, sf float64, part, partCount int32) []Customer {
	d, pool := testFixtures(t)
	g := NewCustomerGenerator(d, pool, sf, part, partCount)
	var rows []Customer
	for {
		row, ok := g.Next()
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	return rows
}

func TestCustomerGeneratorCardinality(t *testing.T) {
	rows := collectCustomers(t, testScaleFactor, 1, 1)
	require.Len(t, rows, int(CustomerScaleBase*testScaleFactor))
	for i, r := range rows {
		require.Equal(t, int64(i+1), r.CustKey)
	}
}

func collectOrdersAndLines(t *testing.T, sf float64, part, partCount int32) []OrderWithLines {
	d, pool := testFixtures(t)
	g := NewOrdersAndLines(d, pool, sf, part, partCount)
	var rows []OrderWithLines
	for {
		row, ok := g.Next()
		if !ok {
			break
		}
		rows = append(rows, row)
	}
	return rows
}

func TestOrdersAndLinesCardinalityAndLineBounds(t *testing.T) {
	rows := collectOrdersAndLines(t, testScaleFactor, 1, 1)
	require.Len(t, rows, int(OrderScaleBase*testScaleFactor))

	totalLines := 0
	for _, ol := range rows {
		require.GreaterOrEqual(t, len(ol.Lines), 1)
		require.LessOrEqual(t, len(ol.Lines), lineCountMax)
		totalLines += len(ol.Lines)

		require.NotEqual(t, int64(0), ol.Order.CustKey%3, "customer mortality: no order should reference a multiple-of-3 custkey")
		require.Equal(t, ol.Order.OrderKey%32 < 8, true)

		for _, l := range ol.Lines {
			require.Equal(t, ol.Order.OrderKey, l.OrderKey)
		}
	}
	require.GreaterOrEqual(t, totalLines, len(rows)*lineCountMin)
	require.LessOrEqual(t, totalLines, len(rows)*lineCountMax)
}

func TestOrdersAndLinesIsDeterministic(t *testing.T) {
	require.Equal(t,
		collectOrdersAndLines(t, testScaleFactor, 1, 1),
		collectOrdersAndLines(t, testScaleFactor, 1, 1))
}

func TestOrdersAndLinesOrderStatusMatchesLineStatuses(t *testing.T) {
	rows := collectOrdersAndLines(t, testScaleFactor, 1, 1)
	for _, ol := range rows {
		allF, allO := true, true
		for _, l := range ol.Lines {
			if l.LineStatus != "F" {
				allF = false
			}
			if l.LineStatus != "O" {
				allO = false
			}
		}
		switch {
		case allF:
			require.Equal(t, "F", ol.Order.OrderStatus)
		case allO:
			require.Equal(t, "O", ol.Order.OrderStatus)
		default:
			require.Equal(t, "P", ol.Order.OrderStatus)
		}
	}
}

func TestApplyCustomerMortalitySkipsMultiplesOfThree(t *testing.T) {
	for k := int64(1); k < 1000; k++ {
		got := applyCustomerMortality(k, 1000)
		require.NotEqual(t, int64(0), got%3)
		require.GreaterOrEqual(t, got, int64(1))
		require.LessOrEqual(t, got, int64(1000))
	}
}
