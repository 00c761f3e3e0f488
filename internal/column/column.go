// Package column implements the shared column-generator capability set
// every TPC-H table builds its rows from: a small number of concrete types
// (not an interface hierarchy), each exposing NextValue/RowFinished/
// AdvanceRows, each wired to its own dedicated RNG so partitioning one
// column's draws never perturbs another's.
package column

import (
	"strings"

	"github.com/rishav/tpchgen/internal/dist"
	"github.com/rishav/tpchgen/internal/rng"
)

// RandomString draws a weighted-random value from a Distribution, one draw
// per row.
type RandomString struct {
	d   *dist.Distribution
	rng *rng.Rng32
}

// NewRandomString creates a weighted-random string column generator.
func NewRandomString(seed int64, d *dist.Distribution, expectedRowCount int32) *RandomString {
	return &RandomString{d: d, rng: rng.NewRng32(seed, int64(expectedRowCount))}
}

// NextValue returns the next weighted-random value.
func (r *RandomString) NextValue() string { return r.d.RandomValue(r.rng) }

// RowFinished advances past any unused draws for the current row.
func (r *RandomString) RowFinished() { r.rng.RowFinished() }

// AdvanceRows fast-forwards past rowCount rows.
func (r *RandomString) AdvanceRows(rowCount int64) { r.rng.AdvanceRows(rowCount) }

// RandomStringSequence draws a fixed-size, order-sensitive sample of
// distinct values from a Distribution's underlying value list (e.g. PART's
// name, five distinct color words joined by a space) via a partial
// Fisher-Yates shuffle: each step swaps a uniformly chosen remaining
// element into place, so earlier draws can still select any element and no
// value repeats.
type RandomStringSequence struct {
	values []string
	count  int
	rng    *rng.Rng32
}

// NewRandomStringSequence creates a generator drawing count distinct values
// from d's value set per row.
func NewRandomStringSequence(seed int64, d *dist.Distribution, count int, expectedRowCount int32) *RandomStringSequence {
	values := make([]string, d.Size())
	for i := 0; i < d.Size(); i++ {
		values[i] = d.Value(i)
	}
	return &RandomStringSequence{
		values: values,
		count:  count,
		rng:    rng.NewRng32(seed, int64(count)*int64(expectedRowCount)),
	}
}

// NextValue returns the next space-joined sequence of count distinct
// values.
func (s *RandomStringSequence) NextValue() string {
	pool := make([]string, len(s.values))
	copy(pool, s.values)

	picked := make([]string, s.count)
	n := int32(len(pool))
	for i := 0; i < s.count; i++ {
		j := s.rng.NextInt(0, n-1)
		picked[i] = pool[j]
		pool[j] = pool[n-1]
		n--
	}
	return strings.Join(picked, " ")
}

// RowFinished advances past any unused draws for the current row.
func (s *RandomStringSequence) RowFinished() { s.rng.RowFinished() }

// AdvanceRows fast-forwards past rowCount rows.
func (s *RandomStringSequence) AdvanceRows(rowCount int64) { s.rng.AdvanceRows(rowCount) }
