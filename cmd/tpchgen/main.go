// Command tpchgen regenerates the TPC-H benchmark dataset bit-for-bit
// compatible with the reference dbgen tool.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/rishav/tpchgen/internal/config"
	"github.com/rishav/tpchgen/internal/dist"
	"github.com/rishav/tpchgen/internal/format"
	"github.com/rishav/tpchgen/internal/pipeline"
	"github.com/rishav/tpchgen/internal/textpool"
	"github.com/rishav/tpchgen/internal/tpch"
)

func main() {
	scaleFactor := flag.Float64P("scale-factor", "s", 1.0, "scale factor (SF=1 is ~1GB)")
	tables := flag.StringSlice("tables", append([]string(nil), config.Tables...), "tables to generate")
	part := flag.Int32P("part", "p", 1, "this generator's 1-based partition index")
	partCount := flag.Int32P("part-count", "n", 1, "total number of partitions")
	outputFormat := flag.StringP("format", "f", string(config.FormatTBL), "output format: tbl or csv")
	outputPath := flag.StringP("output-dir", "o", ".", "directory to write table files into")
	numWorkers := flag.IntP("workers", "w", 4, "number of concurrent chunk-building workers per table")
	flag.Parse()

	cfg := config.Config{
		ScaleFactor:  *scaleFactor,
		Tables:       *tables,
		Part:         *part,
		PartCount:    *partCount,
		OutputFormat: config.OutputFormat(*outputFormat),
		OutputPath:   *outputPath,
		NumWorkers:   *numWorkers,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	distributions, err := dist.Default()
	if err != nil {
		log.Fatalf("loading distributions: %v", err)
	}
	pool := textpool.New(textpool.DefaultSize, distributions)

	if err := os.MkdirAll(cfg.OutputPath, 0o755); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("received shutdown signal, canceling in-flight chunks")
		cancel()
	}()

	log.Printf("generating scale factor %s across %d table(s), %d worker(s)/table", tpch.ScaleFactor(cfg.ScaleFactor), len(cfg.Tables), cfg.NumWorkers)

	start := time.Now()
	for _, table := range cfg.SortedTables() {
		select {
		case <-ctx.Done():
			log.Fatalf("generation canceled: %v", ctx.Err())
		default:
		}
		if err := generateTable(ctx, table, cfg, distributions, pool); err != nil {
			log.Fatalf("generating %s: %v", table, err)
		}
		log.Printf("%s: done", table)
	}
	log.Printf("generated %d tables in %s", len(cfg.Tables), time.Since(start).Round(time.Millisecond))
}

// generateTable plans the chunk layout for table, builds and writes every
// chunk through the pipeline worker pool, and flushes the result to a single
// output file at cfg.OutputPath/table.ext.
func generateTable(ctx context.Context, table string, cfg config.Config, d *dist.Distributions, pool *textpool.Pool) error {
	rowCount := tpch.TableRowCount(table, cfg.ScaleFactor)
	plan := pipeline.PlanTable(table, rowCount, cfg.Part, cfg.PartCount)

	path := filepath.Join(cfg.OutputPath, table+outputExtension(cfg.OutputFormat))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	build := func(k, numChunks int) ([]byte, error) {
		if cfg.IsExplicitPartition() {
			return buildChunk(table, cfg, d, pool, int(cfg.Part), int(cfg.PartCount))
		}
		return buildChunk(table, cfg, d, pool, k, numChunks)
	}
	sink := func(data []byte) error {
		_, err := f.Write(data)
		return err
	}

	if err := pipeline.Run(ctx, plan, cfg.NumWorkers, build, sink); err != nil {
		return err
	}
	return f.Sync()
}

func outputExtension(f config.OutputFormat) string {
	if f == config.FormatCSV {
		return ".csv"
	}
	return ".tbl"
}

// buildChunk renders chunk k of numChunks for table to a byte slice, using a
// fresh generator instance scoped to that chunk's row range.
func buildChunk(table string, cfg config.Config, d *dist.Distributions, pool *textpool.Pool, k, numChunks int) ([]byte, error) {
	var buf bytes.Buffer
	kind := format.TBL
	if cfg.OutputFormat == config.FormatCSV {
		kind = format.CSV
	}

	headers, rows, err := tableRows(table, cfg.ScaleFactor, d, pool, int32(k), int32(numChunks))
	if err != nil {
		return nil, err
	}

	w := format.NewWriter(&buf, kind, headers)
	for row, ok := rows(); ok; row, ok = rows() {
		if err := w.WriteRow(row); err != nil {
			return nil, err
		}
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// tableRows dispatches to table's generator and returns its CSV header list
// alongside a pull function yielding one format.Row at a time.
func tableRows(table string, scaleFactor float64, d *dist.Distributions, pool *textpool.Pool, part, partCount int32) (headers []string, next func() (format.Row, bool), err error) {
	switch table {
	case "region":
		g := tpch.NewRegionGenerator(d, pool, part, partCount)
		return regionHeaders, func() (format.Row, bool) { return asRow(g.Next()) }, nil
	case "nation":
		g := tpch.NewNationGenerator(d, pool, part, partCount)
		return nationHeaders, func() (format.Row, bool) { return asRow(g.Next()) }, nil
	case "part":
		g := tpch.NewPartGenerator(d, pool, scaleFactor, part, partCount)
		return partHeaders, func() (format.Row, bool) { return asRow(g.Next()) }, nil
	case "supplier":
		g := tpch.NewSupplierGenerator(d, pool, scaleFactor, part, partCount)
		return supplierHeaders, func() (format.Row, bool) { return asRow(g.Next()) }, nil
	case "partsupp":
		g := tpch.NewPartSuppGenerator(d, pool, scaleFactor, part, partCount)
		return partsuppHeaders, func() (format.Row, bool) { return asRow(g.Next()) }, nil
	case "customer":
		g := tpch.NewCustomerGenerator(d, pool, scaleFactor, part, partCount)
		return customerHeaders, func() (format.Row, bool) { return asRow(g.Next()) }, nil
	case "orders":
		g := tpch.NewOrdersGenerator(d, pool, scaleFactor, part, partCount)
		return ordersHeaders, func() (format.Row, bool) { return asRow(g.Next()) }, nil
	case "lineitem":
		g := tpch.NewLineItemGenerator(d, pool, scaleFactor, part, partCount)
		return lineitemHeaders, func() (format.Row, bool) { return asRow(g.Next()) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown table %q (known: %s)", table, strings.Join(config.Tables, ", "))
	}
}

// asRow adapts a generator's (concreteRow, ok) pair to the (format.Row, bool)
// shape tableRows' pull functions share; the zero value of ok=false rows is
// never written.
func asRow[T format.Row](row T, ok bool) (format.Row, bool) {
	return row, ok
}

var (
	regionHeaders   = []string{"r_regionkey", "r_name", "r_comment"}
	nationHeaders   = []string{"n_nationkey", "n_name", "n_regionkey", "n_comment"}
	partHeaders     = []string{"p_partkey", "p_name", "p_mfgr", "p_brand", "p_type", "p_size", "p_container", "p_retailprice", "p_comment"}
	supplierHeaders = []string{"s_suppkey", "s_name", "s_address", "s_nationkey", "s_phone", "s_acctbal", "s_comment"}
	partsuppHeaders = []string{"ps_partkey", "ps_suppkey", "ps_availqty", "ps_supplycost", "ps_comment"}
	customerHeaders = []string{"c_custkey", "c_name", "c_address", "c_nationkey", "c_phone", "c_acctbal", "c_mktsegment", "c_comment"}
	ordersHeaders   = []string{"o_orderkey", "o_custkey", "o_orderstatus", "o_totalprice", "o_orderdate", "o_orderpriority", "o_clerk", "o_shippriority", "o_comment"}
	lineitemHeaders = []string{"l_orderkey", "l_partkey", "l_suppkey", "l_linenumber", "l_quantity", "l_extendedprice", "l_discount", "l_tax", "l_returnflag", "l_linestatus", "l_shipdate", "l_commitdate", "l_receiptdate", "l_shipinstruct", "l_shipmode", "l_comment"}
)
