package tpch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculatePartPrice(t *testing.T) {
	cases := map[int64]int64{
		1:    90100,
		10:   91001,
		100:  100010,
		1000: 90100,
	}
	for partKey, want := range cases {
		require.Equal(t, want, CalculatePartPrice(partKey), "partKey=%d", partKey)
	}
}

func TestSparseOrderKeyStaysInLowByteClasses(t *testing.T) {
	for x := int64(1); x < 10000; x++ {
		require.Contains(t, []int64{0, 1, 2, 3, 4, 5, 6, 7}, SparseOrderKey(x)%32)
	}
}

func TestSelectPartSupplierStaysInRange(t *testing.T) {
	const supplierCount = 10000
	for partKey := int64(1); partKey <= 500; partKey++ {
		for sn := int64(0); sn < 4; sn++ {
			key := SelectPartSupplier(partKey, sn, supplierCount)
			require.GreaterOrEqual(t, key, int64(1))
			require.LessOrEqual(t, key, int64(supplierCount))
		}
	}
}
