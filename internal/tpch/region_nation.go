package tpch

import (
	"strconv"

	"github.com/rishav/tpchgen/internal/dist"
	"github.com/rishav/tpchgen/internal/textpool"
)

const (
	regionCommentSeed         = 1500869201
	nationCommentSeed         = 606179079
	regionNationCommentAvgLen = 72
)

// Region is the REGION table row.
type Region struct {
	RegionKey int64
	Name      string
	Comment   string
}

// Columns renders the row in TPC-H column order.
func (r Region) Columns() []string {
	return []string{strconv.FormatInt(r.RegionKey, 10), r.Name, r.Comment}
}

// RegionGenerator iterates REGION's fixed 5-row population. REGION is
// never partitioned in practice (its cardinality is tiny), but the
// generator still honors (part, partCount) for interface consistency with
// the other tables.
type RegionGenerator struct {
	regions *dist.Distribution
	comment *textpool.RandomText
	index   int
	end     int
}

// NewRegionGenerator creates a REGION row iterator over partition (part,
// partCount) of the fixed 5-row population.
func NewRegionGenerator(d *dist.Distributions, pool *textpool.Pool, part, partCount int32) *RegionGenerator {
	p := newPartition(RegionCount, 1.0, part, partCount)
	g := &RegionGenerator{
		regions: d.Regions,
		comment: textpool.NewRandomText(regionCommentSeed, pool, regionNationCommentAvgLen, 1),
		index:   int(p.startIndex),
		end:     int(p.startIndex + p.rowCount),
	}
	g.comment.AdvanceRows(p.startIndex)
	return g
}

// Next returns the next row, or ok=false once the partition is exhausted.
func (g *RegionGenerator) Next() (Region, bool) {
	if g.index >= g.end {
		return Region{}, false
	}
	r := Region{
		RegionKey: int64(g.index),
		Name:      g.regions.Value(g.index),
		Comment:   g.comment.NextValue(),
	}
	g.comment.RowFinished()
	g.index++
	return r, true
}

// Nation is the NATION table row.
type Nation struct {
	NationKey int64
	Name      string
	RegionKey int64
	Comment   string
}

// Columns renders the row in TPC-H column order.
func (n Nation) Columns() []string {
	return []string{
		strconv.FormatInt(n.NationKey, 10),
		n.Name,
		strconv.FormatInt(n.RegionKey, 10),
		n.Comment,
	}
}

// NationGenerator iterates NATION's fixed 25-row population. n_regionkey
// is the distribution's raw (non-cumulative) weight for that position, not
// a sampled value: nations is a position-only distribution.
type NationGenerator struct {
	nations *dist.Distribution
	comment *textpool.RandomText
	index   int
	end     int
}

// NewNationGenerator creates a NATION row iterator over partition (part,
// partCount) of the fixed 25-row population.
func NewNationGenerator(d *dist.Distributions, pool *textpool.Pool, part, partCount int32) *NationGenerator {
	p := newPartition(NationCount, 1.0, part, partCount)
	g := &NationGenerator{
		nations: d.Nations,
		comment: textpool.NewRandomText(nationCommentSeed, pool, regionNationCommentAvgLen, 1),
		index:   int(p.startIndex),
		end:     int(p.startIndex + p.rowCount),
	}
	g.comment.AdvanceRows(p.startIndex)
	return g
}

// Next returns the next row, or ok=false once the partition is exhausted.
func (g *NationGenerator) Next() (Nation, bool) {
	if g.index >= g.end {
		return Nation{}, false
	}
	n := Nation{
		NationKey: int64(g.index),
		Name:      g.nations.Value(g.index),
		RegionKey: int64(g.nations.Weight(g.index)),
		Comment:   g.comment.NextValue(),
	}
	g.comment.RowFinished()
	g.index++
	return n, true
}
