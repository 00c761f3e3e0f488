package rng

// BoundedLong draws uniformly from a fixed [lower, upper] int64 range. Used
// for customer/part key columns, which switch from the 31-bit generator to
// the 64-bit one once the scale factor pushes the key range past what
// Rng32 can address correctly (scale factor >= 30000, per dbgen).
type BoundedLong struct {
	lower, upper int64
	use64        bool
	r32          *Rng32
	r64          *Rng64
}

// NewBoundedLong creates a bounded-long column generator. use64 selects the
// 64-bit generator; dbgen sets this once scale factor >= 30000.
func NewBoundedLong(seed int64, lower, upper int64, expectedRowCount int32, use64 bool) *BoundedLong {
	b := &BoundedLong{lower: lower, upper: upper, use64: use64}
	if use64 {
		b.r64 = NewRng64(seed, expectedRowCount)
	} else {
		b.r32 = NewRng32(seed, int64(expectedRowCount))
	}
	return b
}

// NextValue returns the next bounded value.
func (b *BoundedLong) NextValue() int64 {
	if b.use64 {
		return b.r64.NextLong(b.lower, b.upper)
	}
	return int64(b.r32.NextInt(int32(b.lower), int32(b.upper)))
}

// RowFinished advances past any unused draws for the current row.
func (b *BoundedLong) RowFinished() {
	if b.use64 {
		b.r64.RowFinished()
		return
	}
	b.r32.RowFinished()
}

// AdvanceRows fast-forwards past rowCount rows.
func (b *BoundedLong) AdvanceRows(rowCount int64) {
	if b.use64 {
		b.r64.AdvanceRows(rowCount)
		return
	}
	b.r32.AdvanceRows(rowCount)
}
