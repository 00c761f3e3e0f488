// Package dates implements TPC-H's internal date representation and the
// row-count/start-index partitioning arithmetic every table generator uses
// to seek to an arbitrary chunk without generating the rows before it.
//
// TPC-H dates are tracked as small integer ordinals, not calendar dates:
//
//   - A "julian" ordinal encodes a date as year*1000 + day-of-year, using
//     TPC-H's own (non-Gregorian) leap year rule: a year is a leap year
//     when divisible by 4 and not by 100 — century years are never leap,
//     with no exception for years divisible by 400. This diverges from the
//     real Gregorian calendar in a handful of years no TPC-H date range
//     reaches, but matching dbgen means matching its rule, not fixing it.
//   - A "generate date" ordinal is a flat integer index into the table's
//     valid date range: MinGenerateDate (92001) is 1992-01-01, and the
//     range spans TotalDateRange (2557) days.
//
// Column generators draw generate-date ordinals directly from random
// number generators and only convert to a calendar date at serialization
// time.
package dates

import "time"

const (
	// GeneratedDateEpochOffset is the generate-date ordinal equivalent of
	// the Unix epoch (1970-01-01), used to translate a generate-date
	// ordinal into an epoch-relative day offset before indexing into the
	// precomputed date table.
	GeneratedDateEpochOffset = 83966
	// MinGenerateDate is the smallest valid generate-date ordinal,
	// 1992-01-01.
	MinGenerateDate = 92001
	// CurrentDate is the julian ordinal (year*1000 + day-of-year) of the day
	// dbgen treats as "now", 1995-06-17. It is not a generate-date ordinal:
	// compare generate-date ordinals against it through IsInPast.
	CurrentDate = 95168
	// TotalDateRange is the number of days spanned by the valid
	// generate-date ordinal range.
	TotalDateRange = 2557
)

var monthYearDayStart = [13]int32{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}

// IsLeapYear reports whether year is a leap year under TPC-H's simplified
// rule (divisible by 4, not by 100 — no divisible-by-400 exception).
func IsLeapYear(year int32) bool {
	return year%4 == 0 && year%100 != 0
}

// Julian converts a generate-date ordinal into TPC-H's julian ordinal
// (year*1000 + day-of-year).
func Julian(date int32) int32 {
	offset := date - MinGenerateDate
	result := int32(MinGenerateDate)

	for {
		year := result / 1000
		yearEnd := year*1000 + 365
		if IsLeapYear(year) {
			yearEnd++
		}
		if result+offset <= yearEnd {
			break
		}
		offset -= yearEnd - result + 1
		result += 1000
	}

	return result + offset
}

// IsInPast reports whether a generate-date ordinal falls on or before
// CurrentDate.
func IsInPast(date int32) bool {
	return Julian(date) <= CurrentDate
}

var dateIndex = buildDateIndex()

func buildDateIndex() []time.Time {
	dates := make([]time.Time, TotalDateRange)
	for i := int32(0); i < TotalDateRange; i++ {
		dates[i] = makeDate(i + 1)
	}
	return dates
}

func makeDate(index int32) time.Time {
	j := Julian(index + MinGenerateDate - 1)
	y := j / 1000
	d := j % 1000

	m := int32(0)
	for d > monthYearDayStart[m]+leapYearAdjustment(y, m) {
		m++
	}

	dy := d - monthYearDayStart[m-1]
	if IsLeapYear(y) && m > 2 {
		dy--
	}

	return time.Date(int(1900+y), time.Month(m), int(dy), 0, 0, 0, 0, time.UTC)
}

func leapYearAdjustment(year, month int32) int32 {
	if IsLeapYear(year) && month >= 2 {
		return 1
	}
	return 0
}

// CalendarDate converts a generate-date ordinal to a calendar date.
func CalendarDate(generatedDate int32) time.Time {
	epochDate := generatedDate - GeneratedDateEpochOffset
	idx := epochDate - (MinGenerateDate - GeneratedDateEpochOffset)
	return dateIndex[idx]
}

// FormatDate renders a generate-date ordinal as an ISO-8601 date
// ("2026-07-30"), the format every TBL/CSV date column uses.
func FormatDate(generatedDate int32) string {
	return CalendarDate(generatedDate).Format("2006-01-02")
}

// CalculateRowCount returns how many rows belong to partition part of
// partCount, for a table whose full population is scaleBase*scaleFactor.
// The last partition absorbs any remainder so the parts sum exactly to the
// full population.
func CalculateRowCount(scaleBase int64, scaleFactor float64, part, partCount int32) int64 {
	total := int64(float64(scaleBase) * scaleFactor)
	rowCount := total / int64(partCount)
	if part == partCount {
		rowCount += total % int64(partCount)
	}
	return rowCount
}

// CalculateStartIndex returns the zero-based row index at which partition
// part of partCount begins.
func CalculateStartIndex(scaleBase int64, scaleFactor float64, part, partCount int32) int64 {
	total := int64(float64(scaleBase) * scaleFactor)
	rowsPerPart := total / int64(partCount)
	return rowsPerPart * int64(part-1)
}
