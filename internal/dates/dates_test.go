package dates

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinGenerateDateIs1992_01_01(t *testing.T) {
	require.Equal(t, "1992-01-01", FormatDate(MinGenerateDate))
}

func TestIsLeapYear(t *testing.T) {
	require.True(t, IsLeapYear(1992))
	require.True(t, IsLeapYear(1996))
	require.False(t, IsLeapYear(1900))
	require.False(t, IsLeapYear(1993))
	require.False(t, IsLeapYear(2000))
}

func TestCurrentDateIsInPast(t *testing.T) {
	// CurrentDate is a julian ordinal (1995-06-17); IsInPast takes the
	// generate-date ordinal of the same day.
	const currentGenerateDate = int32(93264)
	require.Equal(t, "1995-06-17", FormatDate(currentGenerateDate))
	require.True(t, IsInPast(currentGenerateDate))
	require.False(t, IsInPast(currentGenerateDate+1))
}

func TestCalculateRowCountSumsToTotal(t *testing.T) {
	const scaleBase = 25
	const partCount = int32(4)
	var sum int64
	for part := int32(1); part <= partCount; part++ {
		sum += CalculateRowCount(scaleBase, 1.0, part, partCount)
	}
	require.Equal(t, int64(scaleBase), sum)
}

func TestCalculateStartIndexIsContiguous(t *testing.T) {
	const scaleBase = 1_500_000
	const scaleFactor = 1.0
	const partCount = int32(4)

	var prevStart, prevCount int64
	for part := int32(1); part <= partCount; part++ {
		start := CalculateStartIndex(scaleBase, scaleFactor, part, partCount)
		count := CalculateRowCount(scaleBase, scaleFactor, part, partCount)
		if part > 1 {
			require.Equal(t, prevStart+prevCount, start)
		}
		prevStart, prevCount = start, count
	}
}

func TestFormatDateAdvancesMonotonically(t *testing.T) {
	prev := FormatDate(MinGenerateDate)
	for d := int32(MinGenerateDate + 1); d < MinGenerateDate+400; d++ {
		cur := FormatDate(d)
		require.Greater(t, cur, prev)
		prev = cur
	}
}
