package tpch

import (
	"strconv"

	"github.com/rishav/tpchgen/internal/dates"
)

// Scale-base row counts per table at scale factor 1, per the TPC-H
// specification.
const (
	PartScaleBase     = 200_000
	SupplierScaleBase = 10_000
	CustomerScaleBase = 150_000
	OrderScaleBase    = 1_500_000

	RegionCount = 5
	NationCount = 25
)

// ScaleFactor is a display wrapper for a dataset's scale factor, used only
// for CLI/log messages. Canonical scale factors render as their approximate
// dataset size ("10 GB"); anything else, including the fractional scale
// factors used throughout testing, renders as the bare number.
type ScaleFactor float64

// String implements fmt.Stringer.
func (s ScaleFactor) String() string {
	switch s {
	case 1, 10, 30, 100, 300, 1000, 3000, 10000, 30000, 100000:
		return strconv.FormatInt(int64(s), 10) + " GB"
	default:
		return strconv.FormatFloat(float64(s), 'g', -1, 64)
	}
}

// partition captures the row range a single generator instance owns:
// rows [startIndex, startIndex+rowCount) of a scaleBase*scaleFactor table.
type partition struct {
	startIndex int64
	rowCount   int64
}

func newPartition(scaleBase int64, scaleFactor float64, part, partCount int32) partition {
	return partition{
		startIndex: dates.CalculateStartIndex(scaleBase, scaleFactor, part, partCount),
		rowCount:   dates.CalculateRowCount(scaleBase, scaleFactor, part, partCount),
	}
}

// SupplierCount returns the total number of suppliers at scaleFactor,
// floor(SupplierScaleBase*scaleFactor) — the modulus PARTSUPP and LINEITEM
// both use to derive supplier keys from part keys.
func SupplierCount(scaleFactor float64) int64 {
	return int64(float64(SupplierScaleBase) * scaleFactor)
}

// Use64BitKeyRng reports whether scale factor sf is large enough that
// dbgen switches customer/part key generation to the 64-bit RNG.
func Use64BitKeyRng(scaleFactor float64) bool {
	return scaleFactor >= 30000
}

// estimatedLineItemsPerOrder approximates LINEITEM's cardinality for chunk
// planning only. line_count is drawn uniformly from [1,7] per order, so the
// expected row count per order is the midpoint; the real count is whatever
// each order's draw produces, and chunk sizing only needs to be close enough
// to target ~15 MiB, not exact.
const estimatedLineItemsPerOrder = 4

// TableRowCount returns table's total row count at scaleFactor, used by the
// chunk planner to estimate output size before generation. LINEITEM's count
// is an estimate (actual cardinality depends on each order's random
// line_count draw); every other table's count is exact.
func TableRowCount(table string, scaleFactor float64) int64 {
	switch table {
	case "region":
		return RegionCount
	case "nation":
		return NationCount
	case "part":
		return int64(float64(PartScaleBase) * scaleFactor)
	case "supplier":
		return SupplierCount(scaleFactor)
	case "partsupp":
		return int64(float64(PartScaleBase)*scaleFactor) * partsuppRowsPerPartKey
	case "customer":
		return int64(float64(CustomerScaleBase) * scaleFactor)
	case "orders":
		return int64(float64(OrderScaleBase) * scaleFactor)
	case "lineitem":
		return int64(float64(OrderScaleBase)*scaleFactor) * estimatedLineItemsPerOrder
	default:
		return 0
	}
}
