// Package pipeline implements the parallel chunk pipeline every table
// generator runs through: the table's row range is split into
// (part, part_count) slices targeting ~15 MiB of serialized output each, a
// bounded worker pool builds those slices concurrently, and a single
// ordered sink writes completed slices to the underlying writer strictly in
// chunk-index order.
//
// The ordering mechanism is adapted from the disruptor's gating-sequence
// idea (a consumer never advances past a slot it hasn't seen published) but
// traded for goroutines/channels instead of a spinning CAS loop: chunk
// generation has exactly one producer per chunk and no need for a
// lock-free ring buffer, so a buffered results channel plus a reorder map
// is the simpler idiomatic fit.
package pipeline

// TargetChunkBytes is the size every table's auto-chunking targets.
const TargetChunkBytes = 15 * 1024 * 1024

// AverageRowSize holds the per-table average row size constants the chunk
// planner uses to estimate total output size, in bytes.
var AverageRowSize = map[string]int{
	"nation":   88,
	"region":   77,
	"part":     115,
	"supplier": 140,
	"partsupp": 148,
	"customer": 160,
	"orders":   114,
	"lineitem": 128,
}

// NumChunks returns how many (part, part_count) slices table should be
// split into so each slice serializes to roughly TargetChunkBytes, given
// its row count and average row size. Always at least 1.
func NumChunks(table string, rowCount int64) int {
	avgRowSize := AverageRowSize[table]
	if avgRowSize <= 0 {
		avgRowSize = 128
	}
	totalBytes := rowCount * int64(avgRowSize)
	chunks := (totalBytes + TargetChunkBytes - 1) / TargetChunkBytes
	if chunks < 1 {
		chunks = 1
	}
	return int(chunks)
}

// Plan is the chunk layout computed for one table generation run.
type Plan struct {
	Table     string
	NumChunks int
}

// PlanTable computes a table's chunk layout. If the operator explicitly
// requested a sub-partition of the table (part, partCount != (1,1)), no
// further auto-chunking happens: the requested slice is generated and
// written as a single chunk, since the operator has already decided how the
// table is sliced (e.g. across separate processes or machines) and a
// second, internal layer of chunking would silently produce different
// boundaries than whatever coordinated that external partitioning.
func PlanTable(table string, rowCount int64, part, partCount int32) Plan {
	if part != 1 || partCount != 1 {
		return Plan{Table: table, NumChunks: 1}
	}
	return Plan{Table: table, NumChunks: NumChunks(table, rowCount)}
}
