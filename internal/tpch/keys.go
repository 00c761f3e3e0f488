// Package tpch implements the eight TPC-H table generators: REGION,
// NATION, PART, SUPPLIER, PARTSUPP, CUSTOMER, ORDERS, and LINEITEM. Each
// generator is a restartable, partitionable row iterator built from
// internal/rng, internal/dist, internal/column, internal/textpool, and
// internal/dates.
package tpch

// SparseOrderKey maps a dense 1-based row index to the order key dbgen
// actually emits. The mapping drops the low 3 bits, inserts two zero bits
// above them, then restores the low 3 bits — leaving gaps so that
// o_orderkey mod 32 is always in {0..7}. This lets queries that join on
// order key ranges skip ranges known to be empty.
func SparseOrderKey(x int64) int64 {
	low := x & 7
	key := x >> 3
	key <<= 2
	key <<= 3
	key += low
	return key
}

// CalculatePartPrice returns PART's retail price in cents, as a pure
// function of the part key so LINEITEM's extended-price derivation and
// PART's own p_retailprice column can share one implementation.
func CalculatePartPrice(partKey int64) int64 {
	return 90000 + ((partKey/10)%20001) + (partKey%1000)*100
}

// SelectPartSupplier returns the 1-based supplier key PARTSUPP and
// LINEITEM both assign to (partKey, supplierNumber) at the given scale
// factor. supplierNumber ranges over [0,3] — PARTSUPP always emits all
// four; LINEITEM uses one drawn at random per line.
func SelectPartSupplier(partKey int64, supplierNumber int64, supplierCount int64) int64 {
	supplierIndex := partKey + supplierNumber*((supplierCount/4)+((partKey-1)/supplierCount))
	return (supplierIndex % supplierCount) + 1
}
