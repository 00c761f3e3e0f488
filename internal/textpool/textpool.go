// Package textpool builds the 300 MiB grammar-generated English text buffer
// that every TPC-H comment/clerk-remark column draws substrings from, and
// the RandomText column generator that draws them.
//
// Every table's comment column is a random-length substring of the SAME
// pool, anchored at a position derived from that column's own RNG draw. The
// pool itself is generated once from a fixed seed (933588178) with an
// unbounded (MaxInt32) per-call usage budget, independent of scale factor
// or table — this is what makes comment text identical across scale
// factors for the rows that happen to draw the same pool offsets.
package textpool

import (
	"strings"

	"github.com/rishav/tpchgen/internal/dist"
	"github.com/rishav/tpchgen/internal/rng"
)

const (
	// DefaultSize is the pool size every generator in this repository uses.
	DefaultSize = 300 * 1024 * 1024
	// maxSentenceLength is the extra capacity the pool buffer is allocated
	// with, so the last sentence, which usually overshoots the target size,
	// fits without reallocating. New then truncates the buffer to exactly
	// size bytes, which can cut that last sentence short.
	maxSentenceLength = 256
	textPoolSeed      = 933588178
)

// Pool is an immutable buffer of grammar-generated text, shared read-only
// across every generator goroutine.
type Pool struct {
	text []byte
}

// New builds a pool of exactly size bytes using distributions d.
func New(size int, d *dist.Distributions) *Pool {
	r := rng.NewRng32(textPoolSeed, 1<<31-1)
	buf := make([]byte, 0, size+maxSentenceLength)

	for len(buf) < size {
		buf = generateSentence(d, buf, r)
	}
	return &Pool{text: buf[:size]}
}

// Size returns the pool's byte length.
func (p *Pool) Size() int { return len(p.text) }

// Slice returns the text between [begin, end).
func (p *Pool) Slice(begin, end int32) string {
	return string(p.text[begin:end])
}

func generateSentence(d *dist.Distributions, out []byte, r *rng.Rng32) []byte {
	tokens := strings.Fields(d.Grammar.RandomValue(r))

	for _, tok := range tokens {
		switch tok {
		case "V":
			out = generateVerbPhrase(d, out, r)
		case "N":
			out = generateNounPhrase(d, out, r)
		case "P":
			preposition := d.Prepositions.RandomValue(r)
			out = append(out, preposition...)
			out = append(out, " the "...)
			out = generateNounPhrase(d, out, r)
		case "T":
			out = out[:len(out)-1] // drop trailing space; terminator abuts the word
			terminator := d.Terminators.RandomValue(r)
			out = append(out, terminator...)
		default:
			panic("textpool: unknown grammar token " + tok)
		}

		if out[len(out)-1] != ' ' {
			out = append(out, ' ')
		}
	}

	return out
}

func generateVerbPhrase(d *dist.Distributions, out []byte, r *rng.Rng32) []byte {
	tokens := strings.Fields(d.VerbPhrase.RandomValue(r))

	for _, tok := range tokens {
		var source *dist.Distribution
		switch tok {
		case "D":
			source = d.Adverbs
		case "V":
			source = d.Verbs
		case "X":
			source = d.Auxiliaries
		default:
			panic("textpool: unknown verb-phrase token " + tok)
		}
		out = append(out, source.RandomValue(r)...)
		out = append(out, ' ')
	}

	return out
}

func generateNounPhrase(d *dist.Distributions, out []byte, r *rng.Rng32) []byte {
	syntax := d.NounPhrase.RandomValue(r)

	for _, c := range syntax {
		var source *dist.Distribution
		switch c {
		case 'A':
			source = d.Articles
		case 'J':
			source = d.Adjectives
		case 'D':
			source = d.Adverbs
		case 'N':
			source = d.Nouns
		case ',':
			out = out[:len(out)-1] // drop trailing space
			out = append(out, ", "...)
			continue
		case ' ':
			continue
		default:
			panic("textpool: unknown noun-phrase token " + string(c))
		}
		out = append(out, source.RandomValue(r)...)
		out = append(out, ' ')
	}

	return out
}

// RandomText draws variable-length substrings from a shared Pool, anchored
// by its own RNG seed. avgLen controls the target excerpt length the same
// way AlphaNumeric's does (0.4x-1.6x of the average).
type RandomText struct {
	pool      *Pool
	rng       *rng.Rng32
	minLen    int32
	spread    int32
	maxOffset int32
}

const (
	textLowMultiplier  = 0.4
	textHighMultiplier = 1.6
	// textUsagePerRow accounts for the two draws NextValue makes each row
	// (excerpt length, then starting offset).
	textUsagePerRow = 2
)

// NewRandomText creates a text-pool column generator. avgLen is the target
// average excerpt length in bytes.
func NewRandomText(seed int64, pool *Pool, avgLen float64, expectedRowCount int32) *RandomText {
	minLen := int32(avgLen * textLowMultiplier)
	maxLen := int32(avgLen * textHighMultiplier)
	return &RandomText{
		pool:      pool,
		rng:       rng.NewRng32(seed, textUsagePerRow*int64(expectedRowCount)),
		minLen:    minLen,
		spread:    maxLen - minLen,
		maxOffset: int32(pool.Size()) - maxLen,
	}
}

// NextValue returns the next random excerpt from the pool.
func (t *RandomText) NextValue() string {
	length := t.minLen + t.rng.NextInt(0, t.spread)
	offset := t.rng.NextInt(0, t.maxOffset)
	end := offset + length
	if end > int32(t.pool.Size()) {
		end = int32(t.pool.Size())
	}
	return t.pool.Slice(offset, end)
}

// RowFinished advances past any unused draws for the current row.
func (t *RandomText) RowFinished() { t.rng.RowFinished() }

// AdvanceRows fast-forwards past rowCount rows.
func (t *RandomText) AdvanceRows(rowCount int64) { t.rng.AdvanceRows(rowCount) }
