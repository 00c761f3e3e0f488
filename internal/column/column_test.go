package column

import (
	"strings"
	"testing"

	"github.com/rishav/tpchgen/internal/dist"
	"github.com/stretchr/testify/require"
)

func TestRandomStringDrawsFromDistribution(t *testing.T) {
	d, err := dist.Default()
	require.NoError(t, err)

	rs := NewRandomString(727633698, d.PartContainers, 1)
	for i := 0; i < 10; i++ {
		v := rs.NextValue()
		require.NotEmpty(t, v)
		rs.RowFinished()
	}
}

func TestRandomStringSequenceProducesDistinctWords(t *testing.T) {
	d, err := dist.Default()
	require.NoError(t, err)

	seq := NewRandomStringSequence(709314158, d.PartColors, 5, 1)
	for i := 0; i < 10; i++ {
		v := seq.NextValue()
		words := strings.Fields(v)
		require.Len(t, words, 5)

		seen := map[string]bool{}
		for _, w := range words {
			require.False(t, seen[w], "word %q repeated in %q", w, v)
			seen[w] = true
		}
		seq.RowFinished()
	}
}
