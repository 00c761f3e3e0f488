// Package rng implements the pseudo-random number generators dbgen uses to
// populate TPC-H column values. Bit-exact output requires reproducing two
// generators from the reference C implementation exactly, including the
// integer-overflow and floating point rounding quirks they rely on:
//
//   - Rng32, a 31-bit multiplicative congruential generator
//     (seed = seed*16807 mod 2147483647), used for almost every column.
//   - Rng64, a 64-bit affine congruential generator
//     (seed = seed*6364136223846793005 + 1), used only for columns whose
//     domain exceeds 31 bits at large scale factors (customer keys, part
//     keys, and their foreign-key references once scale factor >= 30000).
//
// Both generators track how many draws a row is expected to consume
// (expectedUsagePerRow) and support fast-forwarding the seed by an arbitrary
// row count in O(log n) time via binary exponentiation of the multiplier.
// This is what lets the chunk pipeline start row N of a table without
// generating rows 0..N-1 first.
package rng

import "fmt"

const (
	mult32 = 16807
	mod32  = 2147483647
)

// Rng32 is the 31-bit multiplicative congruential generator dbgen calls
// "rng" internally. Every TPC-H column except the wide keys uses one of
// these.
type Rng32 struct {
	seed                int64
	usage               int64
	expectedUsagePerRow int64
}

// NewRng32 creates a generator seeded at seed, expecting uses draws per row.
func NewRng32(seed, uses int64) *Rng32 {
	return &Rng32{seed: seed, expectedUsagePerRow: uses}
}

// NextInt returns a value uniformly drawn from [lower, upper], both
// inclusive.
//
// rangeSize is deliberately truncated back to int32: the reference dbgen
// (and tpchgen's rng.rs) compute `((upper - lower) as i64 + 1) as i32`, and
// that trailing cast wraps to a negative number when upper is MaxInt32 and
// lower is 0 (2147483648 wraps to -2147483648). The wrapped, possibly
// negative rangeSize then feeds the float64 multiplication below. Bit-exact
// compatibility requires reproducing that overflow, not fixing it.
func (r *Rng32) NextInt(lower, upper int32) int32 {
	r.nextRand()

	rangeSize := int32(int64(upper-lower) + 1)
	valueInRange := int32((1.0 * float64(r.seed) / float64(mod32)) * float64(rangeSize))

	return lower + valueInRange
}

func (r *Rng32) nextRand() int64 {
	if r.usage >= r.expectedUsagePerRow {
		panic(fmt.Sprintf("rng: expected at most %d draws per row but used %d", r.expectedUsagePerRow, r.usage+1))
	}
	r.seed = (r.seed * mult32) % mod32
	r.usage++
	return r.seed
}

// RowFinished advances the seed to account for any draws a row budgeted for
// but didn't use, then resets the usage counter. Every column generator
// must call this once per row regardless of how many draws that row
// actually consumed.
func (r *Rng32) RowFinished() {
	r.advanceSeed(r.expectedUsagePerRow - r.usage)
	r.usage = 0
}

// AdvanceRows fast-forwards the seed by rowCount rows, as if RowFinished had
// been called rowCount times with a full row's draws consumed each time.
// Used to seek a generator to the first row of a partition without
// generating the rows before it.
func (r *Rng32) AdvanceRows(rowCount int64) {
	if r.usage != 0 {
		r.RowFinished()
	}
	r.advanceSeed(r.expectedUsagePerRow * rowCount)
}

func (r *Rng32) advanceSeed(count int64) {
	multiplier := int64(mult32)
	for count > 0 {
		if count%2 != 0 {
			r.seed = (multiplier * r.seed) % mod32
		}
		count /= 2
		multiplier = (multiplier * multiplier) % mod32
	}
}

// Rng64 is the 64-bit affine congruential generator used for wide columns
// (customer/part keys and their foreign keys) once the scale factor makes
// the 31-bit generator's range too small.
//
// Its fast-forward logic is NOT a 64-bit analogue of Rng32's: dbgen
// fast-forwards this generator using the 32-bit multiplier and modulus,
// even though next_rand itself runs the 64-bit recurrence. This asymmetry
// is a property of the reference implementation, not a simplification, and
// must be preserved for bit-exact output.
type Rng64 struct {
	seed                int64
	usage               int32
	expectedUsagePerRow int32
}

const (
	mult64     = 6364136223846793005
	mult64Seed = mult32
	mod64Seed  = mod32
	incr64     = 1
)

// NewRng64 creates a generator seeded at seed, expecting uses draws per row.
func NewRng64(seed int64, uses int32) *Rng64 {
	return &Rng64{seed: seed, expectedUsagePerRow: uses}
}

// NextLong returns a value uniformly drawn from [lower, upper], both
// inclusive.
func (r *Rng64) NextLong(lower, upper int64) int64 {
	r.nextRand()
	valueInRange := absInt64(r.seed) % (upper - lower + 1)
	return lower + valueInRange
}

func (r *Rng64) nextRand() int64 {
	r.seed = r.seed*mult64 + incr64
	r.usage++
	return r.seed
}

// RowFinished advances the seed to account for unused draws in the current
// row and resets the usage counter.
func (r *Rng64) RowFinished() {
	r.advanceSeed32(int64(r.expectedUsagePerRow - r.usage))
	r.usage = 0
}

// AdvanceRows fast-forwards the seed by rowCount rows.
func (r *Rng64) AdvanceRows(rowCount int64) {
	if r.usage != 0 {
		r.RowFinished()
	}
	r.advanceSeed32(int64(r.expectedUsagePerRow) * rowCount)
}

func (r *Rng64) advanceSeed32(count int64) {
	multiplier := int64(mult64Seed)
	for count > 0 {
		if count%2 != 0 {
			r.seed = (multiplier * r.seed) % mod64Seed
		}
		count /= 2
		multiplier = (multiplier * multiplier) % mod64Seed
	}
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// BoundedInt draws uniformly from a fixed [lower, upper] range, one draw per
// row.
type BoundedInt struct {
	lower, upper int32
	rng          *Rng32
}

// NewBoundedInt creates a bounded-int column generator.
func NewBoundedInt(seed int64, lower, upper int32, expectedRowCount int32) *BoundedInt {
	return &BoundedInt{lower: lower, upper: upper, rng: NewRng32(seed, int64(expectedRowCount))}
}

// NextValue returns the next bounded value.
func (b *BoundedInt) NextValue() int32 { return b.rng.NextInt(b.lower, b.upper) }

// RowFinished advances past any unused draws for the current row.
func (b *BoundedInt) RowFinished() { b.rng.RowFinished() }

// AdvanceRows fast-forwards past rowCount rows.
func (b *BoundedInt) AdvanceRows(rowCount int64) { b.rng.AdvanceRows(rowCount) }

// PhoneNumber generates TPC-H formatted phone numbers
// ("CC-EEE-EEE-EEEE", country code derived from nation key).
type PhoneNumber struct {
	rng *Rng32
}

const phoneNationsMax = 90

// NewPhoneNumber creates a phone-number generator drawing 3 values per row
// (area/exchange/number), across expectedRowCount rows.
func NewPhoneNumber(seed int64, expectedRowCount int32) *PhoneNumber {
	return &PhoneNumber{rng: NewRng32(seed, 3*int64(expectedRowCount))}
}

// NextValue renders the next phone number for the given nation key.
func (p *PhoneNumber) NextValue(nationKey int64) string {
	country := 10 + (nationKey % phoneNationsMax)
	exch1 := p.rng.NextInt(100, 999)
	exch2 := p.rng.NextInt(100, 999)
	num := p.rng.NextInt(1000, 9999)
	return fmt.Sprintf("%02d-%03d-%03d-%04d", country, exch1, exch2, num)
}

// RowFinished advances past any unused draws for the current row.
func (p *PhoneNumber) RowFinished() { p.rng.RowFinished() }

// AdvanceRows fast-forwards past rowCount rows.
func (p *PhoneNumber) AdvanceRows(rowCount int64) { p.rng.AdvanceRows(rowCount) }

var alphanumDict = []byte(
	"0123456789abcdefghijklmnopqrstuvwxyz ABCDEFGHIJKLMNOPQRSTUVWXYZ,")

const (
	alphanumLowMultiplier  = 0.4
	alphanumHighMultiplier = 1.6
	alphanumUsagePerRow    = 9
)

// AlphaNumeric generates random strings over dbgen's 64-character dictionary
// (used for the customer and supplier address columns; comment columns are
// drawn from the text pool instead).
type AlphaNumeric struct {
	minLen, maxLen int32
	rng            *Rng32
}

// NewAlphaNumeric creates a generator whose output length varies between
// 0.4x and 1.6x avgLen, drawing alphanumUsagePerRow values per row.
func NewAlphaNumeric(seed int64, avgLen int, expectedRowCount int32) *AlphaNumeric {
	return &AlphaNumeric{
		minLen: int32(float64(avgLen) * alphanumLowMultiplier),
		maxLen: int32(float64(avgLen) * alphanumHighMultiplier),
		rng:    NewRng32(seed, alphanumUsagePerRow*int64(expectedRowCount)),
	}
}

// NextValue returns the next random alphanumeric string.
func (a *AlphaNumeric) NextValue() string {
	size := a.rng.NextInt(a.minLen, a.maxLen)
	buf := make([]byte, size)

	var index int32
	for i := int32(0); i < size; i++ {
		if i%5 == 0 {
			index = a.rng.NextInt(0, 1<<31-1)
		}
		buf[i] = alphanumDict[index&0x3f]
		index >>= 6
	}
	return string(buf)
}

// RowFinished advances past any unused draws for the current row.
func (a *AlphaNumeric) RowFinished() { a.rng.RowFinished() }

// AdvanceRows fast-forwards past rowCount rows.
func (a *AlphaNumeric) AdvanceRows(rowCount int64) { a.rng.AdvanceRows(rowCount) }
