// Package format renders TPC-H rows as TBL ('|'-terminated, pipe-separated)
// or CSV (comma-separated, header row) records, and defines the fixed-point
// Decimal type every money and scaled-quantity column uses.
package format

import "strconv"

// Decimal is a fixed-point number stored as cents (two implied decimal
// places), matching how dbgen represents money and scaled-quantity columns
// internally. Using int64 cents instead of float64 avoids any binary
// floating point rounding drift across the billions of rows a large scale
// factor generates.
type Decimal int64

// NewDecimalFromCents wraps a raw cents value.
func NewDecimalFromCents(cents int64) Decimal { return Decimal(cents) }

// String renders the decimal with exactly two fractional digits, e.g.
// Decimal(1) -> "0.01", Decimal(-1) -> "-0.01", Decimal(999999999999) ->
// "9999999999.99".
func (d Decimal) String() string {
	v := int64(d)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := v / 100
	frac := v % 100
	return sign + strconv.FormatInt(whole, 10) + "." + zeroPad2(frac)
}

func zeroPad2(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) >= 2 {
		return s
	}
	return "0" + s
}
