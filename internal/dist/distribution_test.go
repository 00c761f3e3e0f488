package dist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultLoadsAllDistributions(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	require.Equal(t, 25, d.Nations.Size())
	require.Equal(t, 5, d.Regions.Size())
	require.Equal(t, 5, d.OrderPriorities.Size())
	require.Equal(t, 4, d.ShipInstructions.Size())
	require.Equal(t, 7, d.ShipModes.Size())
	require.Equal(t, 2, d.ReturnFlags.Size())
	require.Equal(t, 40, d.PartContainers.Size())
	require.Equal(t, 150, d.PartTypes.Size())
	require.Equal(t, 5, d.MarketSegments.Size())
}

func TestNationsAndRegionsArePositionalOnly(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	require.Equal(t, "ALGERIA", d.Nations.Value(0))
	require.Equal(t, int32(0), d.Nations.Weight(0))
	require.Equal(t, "UNITED STATES", d.Nations.Value(24))
	require.Equal(t, int32(1), d.Nations.Weight(24))

	require.Panics(t, func() { d.Nations.RandomValue(fixedIntStub{}) })
	require.Panics(t, func() { d.Regions.RandomValue(fixedIntStub{}) })
}

func TestReturnFlagsAreWeightedFiftyFifty(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	require.Equal(t, int32(2), d.ReturnFlags.MaxWeight())
}

type fixedIntStub struct{}

func (fixedIntStub) NextInt(lower, upper int32) int32 { return lower }

func TestLoadRejectsCountMismatch(t *testing.T) {
	doc := "BEGIN FOO\ncount|3\na|1\nb|1\nEND FOO\n"
	_, err := parseBlocks(strings.NewReader(doc))
	require.Error(t, err)
}

func TestLoadIgnoresCommentsAndBlankLines(t *testing.T) {
	doc := "# a comment\n\nBEGIN FOO\n# inner comment\na|1\n\nb|2\nEND FOO\n"
	blocks, err := parseBlocks(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	require.Equal(t, []string{"a", "b"}, blocks[0].values)
}
