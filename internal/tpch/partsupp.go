package tpch

import (
	"fmt"

	"github.com/rishav/tpchgen/internal/dist"
	"github.com/rishav/tpchgen/internal/format"
	"github.com/rishav/tpchgen/internal/rng"
	"github.com/rishav/tpchgen/internal/textpool"
)

const (
	partsuppAvailQtySeed   = 1671059989
	partsuppSupplyCostSeed = 1051288424
	partsuppCommentSeed    = 1961692154

	partsuppAvailQtyLo     = 1
	partsuppAvailQtyHi     = 9999
	partsuppSupplyCostLo   = 100
	partsuppSupplyCostHi   = 100000
	partsuppCommentAvgLen  = 124
	partsuppRowsPerPartKey = 4
)

// PartSupp is the PARTSUPP table row.
type PartSupp struct {
	PartKey    int64
	SuppKey    int64
	AvailQty   int32
	SupplyCost format.Decimal
	Comment    string
}

// Columns renders the row in TPC-H column order.
func (ps PartSupp) Columns() []string {
	return []string{
		fmt.Sprintf("%d", ps.PartKey),
		fmt.Sprintf("%d", ps.SuppKey),
		fmt.Sprintf("%d", ps.AvailQty),
		ps.SupplyCost.String(),
		ps.Comment,
	}
}

// PartSuppGenerator iterates PARTSUPP's four rows per part key. Each part
// key cycle draws all three columns four times before a single
// row_finished() call, so every underlying generator is constructed with
// expectedRowCount=4.
type PartSuppGenerator struct {
	p             partition
	supplierCount int64

	availQty   *rng.BoundedInt
	supplyCost *rng.BoundedInt
	comment    *textpool.RandomText

	partIndex int64
	subRow    int64
}

// NewPartSuppGenerator creates a PARTSUPP row iterator over the part-key
// partition (part, partCount) at the given scale factor.
func NewPartSuppGenerator(d *dist.Distributions, pool *textpool.Pool, scaleFactor float64, part, partCount int32) *PartSuppGenerator {
	p := newPartition(PartScaleBase, scaleFactor, part, partCount)
	g := &PartSuppGenerator{
		p:             p,
		supplierCount: SupplierCount(scaleFactor),
		availQty:      rng.NewBoundedInt(partsuppAvailQtySeed, partsuppAvailQtyLo, partsuppAvailQtyHi, partsuppRowsPerPartKey),
		supplyCost:    rng.NewBoundedInt(partsuppSupplyCostSeed, partsuppSupplyCostLo, partsuppSupplyCostHi, partsuppRowsPerPartKey),
		comment:       textpool.NewRandomText(partsuppCommentSeed, pool, partsuppCommentAvgLen, partsuppRowsPerPartKey),
		partIndex:     p.startIndex,
	}
	g.availQty.AdvanceRows(p.startIndex)
	g.supplyCost.AdvanceRows(p.startIndex)
	g.comment.AdvanceRows(p.startIndex)
	return g
}

// Next returns the next row, or ok=false once the partition is exhausted.
func (g *PartSuppGenerator) Next() (PartSupp, bool) {
	if g.partIndex >= g.p.startIndex+g.p.rowCount {
		return PartSupp{}, false
	}
	partKey := g.partIndex + 1

	row := PartSupp{
		PartKey:    partKey,
		SuppKey:    SelectPartSupplier(partKey, g.subRow, g.supplierCount),
		AvailQty:   g.availQty.NextValue(),
		SupplyCost: format.NewDecimalFromCents(int64(g.supplyCost.NextValue())),
		Comment:    g.comment.NextValue(),
	}

	g.subRow++
	if g.subRow == partsuppRowsPerPartKey {
		g.subRow = 0
		g.availQty.RowFinished()
		g.supplyCost.RowFinished()
		g.comment.RowFinished()
		g.partIndex++
	}

	return row, true
}
