// Package config validates the scale factor, table selection, and
// partitioning flags once at startup and turns them into an immutable
// Config value every generator and the pipeline receive by value.
package config

import (
	"fmt"
	"sort"
)

// OutputFormat selects how rows are serialized.
type OutputFormat string

const (
	FormatTBL      OutputFormat = "tbl"
	FormatCSV      OutputFormat = "csv"
	FormatColumnar OutputFormat = "columnar"
)

// Tables is the full set of table names this repository knows how to
// generate, in the order the reference dbgen emits them.
var Tables = []string{
	"nation", "region", "part", "supplier", "partsupp", "customer", "orders", "lineitem",
}

var validTableSet = func() map[string]bool {
	m := make(map[string]bool, len(Tables))
	for _, t := range Tables {
		m[t] = true
	}
	return m
}()

// Config is the validated, immutable configuration every generator and the
// chunk pipeline are constructed from.
type Config struct {
	ScaleFactor  float64
	Tables       []string
	Part         int32
	PartCount    int32
	OutputFormat OutputFormat
	OutputPath   string
	NumWorkers   int
}

// Default returns a single-partition, full-table-set, TBL-format config at
// scale factor 1, the values dbgen itself defaults to.
func Default() Config {
	return Config{
		ScaleFactor:  1,
		Tables:       append([]string(nil), Tables...),
		Part:         1,
		PartCount:    1,
		OutputFormat: FormatTBL,
		NumWorkers:   1,
	}
}

// Validate checks c for the configuration errors §7 of the specification
// treats as fatal at initialization: a bad scale factor, an unknown table
// name, an out-of-range partition, or an unsupported output format.
func (c Config) Validate() error {
	if c.ScaleFactor <= 0 {
		return fmt.Errorf("config: scale_factor must be > 0, got %v", c.ScaleFactor)
	}
	if len(c.Tables) == 0 {
		return fmt.Errorf("config: tables must not be empty")
	}
	seen := make(map[string]bool, len(c.Tables))
	for _, t := range c.Tables {
		if !validTableSet[t] {
			return fmt.Errorf("config: unknown table %q", t)
		}
		if seen[t] {
			return fmt.Errorf("config: table %q specified more than once", t)
		}
		seen[t] = true
	}
	if c.PartCount < 1 {
		return fmt.Errorf("config: part_count must be >= 1, got %d", c.PartCount)
	}
	if c.Part < 1 || c.Part > c.PartCount {
		return fmt.Errorf("config: part must be in [1, part_count=%d], got %d", c.PartCount, c.Part)
	}
	switch c.OutputFormat {
	case FormatTBL, FormatCSV:
	case FormatColumnar:
		return fmt.Errorf("config: output_format columnar is not implemented")
	default:
		return fmt.Errorf("config: unknown output_format %q", c.OutputFormat)
	}
	if c.NumWorkers < 1 {
		return fmt.Errorf("config: num_workers must be >= 1, got %d", c.NumWorkers)
	}
	return nil
}

// SortedTables returns c.Tables in the canonical dbgen emission order,
// regardless of the order the operator listed them on the command line.
func (c Config) SortedTables() []string {
	rank := make(map[string]int, len(Tables))
	for i, t := range Tables {
		rank[t] = i
	}
	out := append([]string(nil), c.Tables...)
	sort.Slice(out, func(i, j int) bool { return rank[out[i]] < rank[out[j]] })
	return out
}

// IsExplicitPartition reports whether the operator requested a specific
// slice of the table space rather than the default single-partition run.
func (c Config) IsExplicitPartition() bool {
	return c.Part != 1 || c.PartCount != 1
}
