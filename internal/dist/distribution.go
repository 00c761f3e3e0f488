// Package dist loads the weighted value distributions dbgen draws TPC-H
// enumerated columns and text-pool grammar rules from: nation and region
// names, order priorities, ship instructions/modes, return flags, part
// containers/colors/types, market segments, and the grammar/noun-phrase/
// verb-phrase/word-list rules the text pool generator uses.
//
// The distributions are stored in a single flat-file format (traditionally
// named dists.dss): one BEGIN <name> / END <name> block per distribution,
// each line inside a block either a "value|weight" pair or the special
// validation line "count|N". The default set is embedded into the binary;
// callers needing the canonical reference asset can supply their own via
// Load.
package dist

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

//go:embed dists.dss
var defaultAsset embed.FS

// Distribution is an ordered list of (value, weight) pairs. Two access
// patterns are supported:
//
//   - Positional: Value(i) / Weight(i) for distributions that are indexed
//     by definition order rather than sampled (e.g. nations, regions,
//     where the row's primary key IS the position and the stored weight
//     carries an unrelated payload — the region foreign key, for nations).
//   - Weighted-random: RandomValue(r) draws a value with probability
//     proportional to its weight, via an O(1) lookup into a fully expanded
//     selection table. Building that table requires every weight to be a
//     positive integer; a distribution with any non-positive weight can
//     only be used positionally, and RandomValue panics if called on one.
type Distribution struct {
	name     string
	values   []string
	weights  []int32
	table    []string // nil unless every weight > 0
	maxTotal int32
}

// NewDistribution builds a Distribution from ordered (value, weight) pairs.
// Order is significant: it is the file's definition order, which is also
// the row index space for position-only distributions.
func NewDistribution(name string, values []string, weights []int32) *Distribution {
	d := &Distribution{name: name, values: values, weights: weights}

	allPositive := len(values) > 0
	var cumulative int32
	cumulativeWeights := make([]int32, len(weights))
	for i, w := range weights {
		if w <= 0 {
			allPositive = false
		}
		cumulative += w
		cumulativeWeights[i] = cumulative
	}

	if allPositive {
		table := make([]string, cumulative)
		valueIndex := 0
		for i := int32(0); i < cumulative; i++ {
			if i >= cumulativeWeights[valueIndex] {
				valueIndex++
			}
			table[i] = values[valueIndex]
		}
		d.table = table
		d.maxTotal = cumulative
	}

	return d
}

// Size returns the number of distinct values.
func (d *Distribution) Size() int { return len(d.values) }

// Value returns the value at position i, in file definition order.
func (d *Distribution) Value(i int) string { return d.values[i] }

// Weight returns the raw (non-cumulative) weight declared for position i.
func (d *Distribution) Weight(i int) int32 { return d.weights[i] }

// randIntN draws a uniform int32 in [lower, upper] — the shape every column
// generator RNG in package rng exposes as NextInt.
type randIntN interface {
	NextInt(lower, upper int32) int32
}

// RandomValue draws a value with probability proportional to its weight.
// Panics if the distribution has any non-positive weight (i.e. it is
// usable only positionally).
func (d *Distribution) RandomValue(r randIntN) string {
	if d.table == nil {
		panic(fmt.Sprintf("dist: %s has no weighted selection table (positional-only distribution)", d.name))
	}
	idx := r.NextInt(0, d.maxTotal-1)
	return d.table[idx]
}

// MaxWeight returns the cumulative weight total backing the selection
// table, or 0 for a positional-only distribution.
func (d *Distribution) MaxWeight() int32 { return d.maxTotal }

// Distributions is the full named set of distributions TPC-H generation
// depends on.
type Distributions struct {
	Grammar          *Distribution
	NounPhrase       *Distribution
	VerbPhrase       *Distribution
	Prepositions     *Distribution
	Nouns            *Distribution
	Verbs            *Distribution
	Articles         *Distribution
	Adjectives       *Distribution
	Adverbs          *Distribution
	Auxiliaries      *Distribution
	Terminators      *Distribution
	OrderPriorities  *Distribution
	ShipInstructions *Distribution
	ShipModes        *Distribution
	ReturnFlags      *Distribution
	PartContainers   *Distribution
	PartColors       *Distribution
	PartTypes        *Distribution
	MarketSegments   *Distribution
	Nations          *Distribution
	Regions          *Distribution
}

// nameAliases maps each field's on-disk distribution name — the dbgen
// dists.dss asset uses short, sometimes inconsistent names for historical
// reasons (and misspells "auxiliaries").
var nameAliases = map[string]string{
	"Grammar":          "grammar",
	"NounPhrase":       "np",
	"VerbPhrase":       "vp",
	"Prepositions":     "prepositions",
	"Nouns":            "nouns",
	"Verbs":            "verbs",
	"Articles":         "articles",
	"Adjectives":       "adjectives",
	"Adverbs":          "adverbs",
	"Auxiliaries":      "auxillaries",
	"Terminators":      "terminators",
	"OrderPriorities":  "o_oprio",
	"ShipInstructions": "instruct",
	"ShipModes":        "smode",
	"ReturnFlags":      "rflag",
	"PartContainers":   "p_cntr",
	"PartColors":       "colors",
	"PartTypes":        "p_types",
	"MarketSegments":   "msegmnt",
	"Nations":          "nations",
	"Regions":          "regions",
}

type parsedBlock struct {
	name    string
	values  []string
	weights []int32
}

// Load parses a dists.dss-formatted document into a Distributions set.
// Unknown blocks (the canonical asset carries a few entries no generator
// here uses, e.g. "nations2", "Q13a", "Q13b", "category") are parsed but
// silently ignored.
func Load(r io.Reader) (*Distributions, error) {
	blocks, err := parseBlocks(r)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*Distribution, len(blocks))
	for _, b := range blocks {
		byName[strings.ToLower(b.name)] = NewDistribution(b.name, b.values, b.weights)
	}

	get := func(field string) (*Distribution, error) {
		d, ok := byName[nameAliases[field]]
		if !ok {
			return nil, fmt.Errorf("dist: distribution %q (field %s) not found in asset", nameAliases[field], field)
		}
		return d, nil
	}

	out := &Distributions{}
	fields := []struct {
		name string
		dst  **Distribution
	}{
		{"Grammar", &out.Grammar},
		{"NounPhrase", &out.NounPhrase},
		{"VerbPhrase", &out.VerbPhrase},
		{"Prepositions", &out.Prepositions},
		{"Nouns", &out.Nouns},
		{"Verbs", &out.Verbs},
		{"Articles", &out.Articles},
		{"Adjectives", &out.Adjectives},
		{"Adverbs", &out.Adverbs},
		{"Auxiliaries", &out.Auxiliaries},
		{"Terminators", &out.Terminators},
		{"OrderPriorities", &out.OrderPriorities},
		{"ShipInstructions", &out.ShipInstructions},
		{"ShipModes", &out.ShipModes},
		{"ReturnFlags", &out.ReturnFlags},
		{"PartContainers", &out.PartContainers},
		{"PartColors", &out.PartColors},
		{"PartTypes", &out.PartTypes},
		{"MarketSegments", &out.MarketSegments},
		{"Nations", &out.Nations},
		{"Regions", &out.Regions},
	}
	for _, f := range fields {
		d, err := get(f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = d
	}

	return out, nil
}

func parseBlocks(r io.Reader) ([]parsedBlock, error) {
	var blocks []parsedBlock

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var current *parsedBlock
	var expectedCount int
	haveExpectedCount := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		upper := strings.ToUpper(line)
		if strings.HasPrefix(upper, "BEGIN") {
			parts := strings.Fields(line)
			if len(parts) == 2 {
				current = &parsedBlock{name: parts[1]}
				expectedCount = -1
				haveExpectedCount = false
			}
			continue
		}

		if current == nil {
			continue
		}

		if strings.HasPrefix(upper, "END") {
			parts := strings.Fields(line)
			if len(parts) == 2 && parts[1] == current.name {
				if haveExpectedCount && expectedCount != len(current.values) {
					return nil, fmt.Errorf("dist: distribution %s declared count %d but has %d entries", current.name, expectedCount, len(current.values))
				}
				blocks = append(blocks, *current)
			}
			current = nil
			continue
		}

		parts := strings.SplitN(line, "|", 2)
		if len(parts) != 2 {
			continue
		}
		value := strings.TrimSpace(parts[0])
		weightStr := strings.TrimSpace(parts[1])
		weight, err := strconv.ParseInt(weightStr, 10, 32)
		if err != nil {
			continue
		}

		if strings.EqualFold(value, "count") {
			expectedCount = int(weight)
			haveExpectedCount = true
			continue
		}

		current.values = append(current.values, value)
		current.weights = append(current.weights, int32(weight))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dist: scanning distributions: %w", err)
	}

	return blocks, nil
}

var (
	defaultOnce sync.Once
	defaultSet  *Distributions
	defaultErr  error
)

// Default returns the process-wide default Distributions, parsed once from
// the embedded asset.
func Default() (*Distributions, error) {
	defaultOnce.Do(func() {
		f, err := defaultAsset.Open("dists.dss")
		if err != nil {
			defaultErr = fmt.Errorf("dist: opening embedded asset: %w", err)
			return
		}
		defer f.Close()
		defaultSet, defaultErr = Load(f)
	})
	return defaultSet, defaultErr
}
