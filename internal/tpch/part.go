package tpch

import (
	"strconv"

	"github.com/rishav/tpchgen/internal/column"
	"github.com/rishav/tpchgen/internal/dist"
	"github.com/rishav/tpchgen/internal/format"
	"github.com/rishav/tpchgen/internal/rng"
	"github.com/rishav/tpchgen/internal/textpool"
)

const (
	partNameSeed         = 709314158
	partManufacturerSeed = 1
	partBrandSeed        = 46831694
	partTypeSeed         = 1841581359
	partSizeSeed         = 1193163244
	partContainerSeed    = 727633698
	partCommentSeed      = 804159733

	partNameWordCount  = 5
	partManufacturerLo = 1
	partManufacturerHi = 5
	partBrandLo        = 1
	partBrandHi        = 5
	partSizeLo         = 1
	partSizeHi         = 50
	partCommentAvgLen  = 14
)

// Part is the PART table row.
type Part struct {
	PartKey     int64
	Name        string
	Mfgr        string
	Brand       string
	Type        string
	Size        int32
	Container   string
	RetailPrice format.Decimal
	Comment     string
}

// Columns renders the row in TPC-H column order.
func (p Part) Columns() []string {
	return []string{
		strconv.FormatInt(p.PartKey, 10),
		p.Name,
		p.Mfgr,
		p.Brand,
		p.Type,
		strconv.FormatInt(int64(p.Size), 10),
		p.Container,
		p.RetailPrice.String(),
		p.Comment,
	}
}

// PartGenerator iterates PART's scale-factor-sized row range.
type PartGenerator struct {
	p partition

	name         *column.RandomStringSequence
	manufacturer *rng.BoundedInt
	brand        *rng.BoundedInt
	typ          *column.RandomString
	size         *rng.BoundedInt
	container    *column.RandomString
	comment      *textpool.RandomText

	index int64
}

// NewPartGenerator creates a PART row iterator over partition (part,
// partCount) at the given scale factor.
func NewPartGenerator(d *dist.Distributions, pool *textpool.Pool, scaleFactor float64, part, partCount int32) *PartGenerator {
	p := newPartition(PartScaleBase, scaleFactor, part, partCount)
	g := &PartGenerator{
		p:            p,
		name:         column.NewRandomStringSequence(partNameSeed, d.PartColors, partNameWordCount, 1),
		manufacturer: rng.NewBoundedInt(partManufacturerSeed, partManufacturerLo, partManufacturerHi, 1),
		brand:        rng.NewBoundedInt(partBrandSeed, partBrandLo, partBrandHi, 1),
		typ:          column.NewRandomString(partTypeSeed, d.PartTypes, 1),
		size:         rng.NewBoundedInt(partSizeSeed, partSizeLo, partSizeHi, 1),
		container:    column.NewRandomString(partContainerSeed, d.PartContainers, 1),
		comment:      textpool.NewRandomText(partCommentSeed, pool, partCommentAvgLen, 1),
		index:        p.startIndex,
	}
	g.name.AdvanceRows(p.startIndex)
	g.manufacturer.AdvanceRows(p.startIndex)
	g.brand.AdvanceRows(p.startIndex)
	g.typ.AdvanceRows(p.startIndex)
	g.size.AdvanceRows(p.startIndex)
	g.container.AdvanceRows(p.startIndex)
	g.comment.AdvanceRows(p.startIndex)
	return g
}

// Next returns the next row, or ok=false once the partition is exhausted.
func (g *PartGenerator) Next() (Part, bool) {
	if g.index >= g.p.startIndex+g.p.rowCount {
		return Part{}, false
	}
	partKey := g.index + 1

	mfgr := g.manufacturer.NextValue()
	brand := g.brand.NextValue()

	row := Part{
		PartKey:     partKey,
		Name:        g.name.NextValue(),
		Mfgr:        "Manufacturer#" + strconv.FormatInt(int64(mfgr), 10),
		Brand:       "Brand#" + strconv.FormatInt(int64(mfgr)*10+int64(brand), 10),
		Type:        g.typ.NextValue(),
		Size:        g.size.NextValue(),
		Container:   g.container.NextValue(),
		RetailPrice: format.NewDecimalFromCents(CalculatePartPrice(partKey)),
		Comment:     g.comment.NextValue(),
	}

	g.name.RowFinished()
	g.manufacturer.RowFinished()
	g.brand.RowFinished()
	g.typ.RowFinished()
	g.size.RowFinished()
	g.container.RowFinished()
	g.comment.RowFinished()

	g.index++
	return row, true
}
