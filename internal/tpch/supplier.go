package tpch

import (
	"fmt"

	"github.com/rishav/tpchgen/internal/dist"
	"github.com/rishav/tpchgen/internal/format"
	"github.com/rishav/tpchgen/internal/rng"
	"github.com/rishav/tpchgen/internal/textpool"
)

const (
	supplierAddressSeed   = 706178559
	supplierNationKeySeed = 110356601
	supplierPhoneSeed     = 884434366
	supplierAcctbalSeed   = 962338209
	supplierCommentSeed   = 1341315363
	supplierBBBPlacement  = 202794285
	supplierBBBJunkOffset = 263032577
	supplierBBBBaseOffset = 715851524
	supplierBBBTypeSeed   = 753643799

	supplierAddressAvgLen = 25
	supplierAcctbalLo     = -99999
	supplierAcctbalHi     = 999999
	supplierCommentAvgLen = 63

	// bbbPlacementThreshold is the cutoff for "draw BBB-comment integer; if
	// <= this, embed the Better Business Bureau phrase". With placement
	// drawn from [1, SupplierScaleBase] this selects roughly SCALE_FACTOR*10
	// suppliers regardless of SCALE_FACTOR, matching dbgen's fixed SF*5/SF*5
	// Complaints/Recommends split.
	bbbPlacementThreshold = 10
	bbbTypeThreshold      = 50
	bbbCustomerPhraseLen  = 9
	bbbVerbPhraseLen      = 10
	bbbMinCommentLen      = bbbCustomerPhraseLen + bbbVerbPhraseLen
)

// Supplier is the SUPPLIER table row.
type Supplier struct {
	SuppKey   int64
	Name      string
	Address   string
	NationKey int64
	Phone     string
	AcctBal   format.Decimal
	Comment   string
}

// Columns renders the row in TPC-H column order.
func (s Supplier) Columns() []string {
	return []string{
		fmt.Sprintf("%d", s.SuppKey),
		s.Name,
		s.Address,
		fmt.Sprintf("%d", s.NationKey),
		s.Phone,
		s.AcctBal.String(),
		s.Comment,
	}
}

// SupplierGenerator iterates SUPPLIER's scale-factor-sized row range.
type SupplierGenerator struct {
	p partition

	address   *rng.AlphaNumeric
	nationKey *rng.BoundedInt
	phone     *rng.PhoneNumber
	acctbal   *rng.BoundedInt
	comment   *textpool.RandomText
	bbbPlace  *rng.BoundedInt
	bbbJunk   *rng.Rng32
	bbbBase   *rng.Rng32
	bbbType   *rng.BoundedInt

	index int64
}

// NewSupplierGenerator creates a SUPPLIER row iterator over partition
// (part, partCount) at the given scale factor.
func NewSupplierGenerator(d *dist.Distributions, pool *textpool.Pool, scaleFactor float64, part, partCount int32) *SupplierGenerator {
	p := newPartition(SupplierScaleBase, scaleFactor, part, partCount)
	g := &SupplierGenerator{
		p:         p,
		address:   rng.NewAlphaNumeric(supplierAddressSeed, supplierAddressAvgLen, 1),
		nationKey: rng.NewBoundedInt(supplierNationKeySeed, 0, 24, 1),
		phone:     rng.NewPhoneNumber(supplierPhoneSeed, 1),
		acctbal:   rng.NewBoundedInt(supplierAcctbalSeed, supplierAcctbalLo, supplierAcctbalHi, 1),
		comment:   textpool.NewRandomText(supplierCommentSeed, pool, supplierCommentAvgLen, 1),
		bbbPlace:  rng.NewBoundedInt(supplierBBBPlacement, 1, SupplierScaleBase, 1),
		bbbJunk:   rng.NewRng32(supplierBBBJunkOffset, 1),
		bbbBase:   rng.NewRng32(supplierBBBBaseOffset, 1),
		bbbType:   rng.NewBoundedInt(supplierBBBTypeSeed, 0, 100, 1),
		index:     p.startIndex,
	}
	g.address.AdvanceRows(p.startIndex)
	g.nationKey.AdvanceRows(p.startIndex)
	g.phone.AdvanceRows(p.startIndex)
	g.acctbal.AdvanceRows(p.startIndex)
	g.comment.AdvanceRows(p.startIndex)
	g.bbbPlace.AdvanceRows(p.startIndex)
	g.bbbJunk.AdvanceRows(p.startIndex)
	g.bbbBase.AdvanceRows(p.startIndex)
	g.bbbType.AdvanceRows(p.startIndex)
	return g
}

// Next returns the next row, or ok=false once the partition is exhausted.
func (g *SupplierGenerator) Next() (Supplier, bool) {
	if g.index >= g.p.startIndex+g.p.rowCount {
		return Supplier{}, false
	}
	suppKey := g.index + 1
	nationKey := int64(g.nationKey.NextValue())

	row := Supplier{
		SuppKey:   suppKey,
		Name:      fmt.Sprintf("Supplier#%09d", suppKey),
		Address:   g.address.NextValue(),
		NationKey: nationKey,
		Phone:     g.phone.NextValue(nationKey),
		AcctBal:   format.NewDecimalFromCents(int64(g.acctbal.NextValue())),
		Comment:   g.comment.NextValue(),
	}

	placement := g.bbbPlace.NextValue()
	bbbType := g.bbbType.NextValue()
	commentLen := int32(len(row.Comment))
	maxNoise := commentLen - bbbMinCommentLen
	var noise, offset int32
	if maxNoise >= 0 {
		noise = g.bbbJunk.NextInt(0, maxNoise)
		offset = g.bbbBase.NextInt(0, maxNoise-noise)
	} else {
		// Comment too short to embed the phrase; still draw so every row
		// consumes its budgeted RNG usage.
		noise = g.bbbJunk.NextInt(0, 0)
		offset = g.bbbBase.NextInt(0, 0)
	}

	if placement <= bbbPlacementThreshold && maxNoise >= 0 {
		verb := "Complaints"
		if bbbType >= bbbTypeThreshold {
			verb = "Recommends"
		}
		buf := []byte(row.Comment)
		copy(buf[offset:offset+bbbCustomerPhraseLen], "Customer ")
		verbStart := offset + bbbCustomerPhraseLen + noise
		copy(buf[verbStart:verbStart+bbbVerbPhraseLen], verb)
		row.Comment = string(buf)
	}

	g.address.RowFinished()
	g.nationKey.RowFinished()
	g.phone.RowFinished()
	g.acctbal.RowFinished()
	g.comment.RowFinished()
	g.bbbPlace.RowFinished()
	g.bbbJunk.RowFinished()
	g.bbbBase.RowFinished()
	g.bbbType.RowFinished()

	g.index++
	return row, true
}
