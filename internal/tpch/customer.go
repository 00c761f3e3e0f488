package tpch

import (
	"fmt"

	"github.com/rishav/tpchgen/internal/column"
	"github.com/rishav/tpchgen/internal/dist"
	"github.com/rishav/tpchgen/internal/format"
	"github.com/rishav/tpchgen/internal/rng"
	"github.com/rishav/tpchgen/internal/textpool"
)

const (
	customerAddressSeed    = 881155353
	customerNationKeySeed  = 1489529863
	customerPhoneSeed      = 1521138112
	customerAcctbalSeed    = 298370230
	customerMktSegmentSeed = 1140279430
	customerCommentSeed    = 1335826707

	customerAddressAvgLen = 25
	customerAcctbalLo     = -99999
	customerAcctbalHi     = 999999
	customerCommentAvgLen = 73
)

// Customer is the CUSTOMER table row.
type Customer struct {
	CustKey    int64
	Address    string
	NationKey  int64
	Phone      string
	AcctBal    format.Decimal
	MktSegment string
	Comment    string
}

// Columns renders the row in TPC-H column order.
func (c Customer) Columns() []string {
	return []string{
		fmt.Sprintf("%d", c.CustKey),
		"Customer#" + zeroPadKey(c.CustKey),
		c.Address,
		fmt.Sprintf("%d", c.NationKey),
		c.Phone,
		c.AcctBal.String(),
		c.MktSegment,
		c.Comment,
	}
}

// CustomerGenerator iterates CUSTOMER's scale-factor-sized row range.
type CustomerGenerator struct {
	p partition

	address    *rng.AlphaNumeric
	nationKey  *rng.BoundedInt
	phone      *rng.PhoneNumber
	acctbal    *rng.BoundedInt
	mktSegment *column.RandomString
	comment    *textpool.RandomText

	index int64
}

// NewCustomerGenerator creates a CUSTOMER row iterator over partition
// (part, partCount) at the given scale factor.
func NewCustomerGenerator(d *dist.Distributions, pool *textpool.Pool, scaleFactor float64, part, partCount int32) *CustomerGenerator {
	p := newPartition(CustomerScaleBase, scaleFactor, part, partCount)
	g := &CustomerGenerator{
		p:          p,
		address:    rng.NewAlphaNumeric(customerAddressSeed, customerAddressAvgLen, 1),
		nationKey:  rng.NewBoundedInt(customerNationKeySeed, 0, 24, 1),
		phone:      rng.NewPhoneNumber(customerPhoneSeed, 1),
		acctbal:    rng.NewBoundedInt(customerAcctbalSeed, customerAcctbalLo, customerAcctbalHi, 1),
		mktSegment: column.NewRandomString(customerMktSegmentSeed, d.MarketSegments, 1),
		comment:    textpool.NewRandomText(customerCommentSeed, pool, customerCommentAvgLen, 1),
		index:      p.startIndex,
	}
	g.address.AdvanceRows(p.startIndex)
	g.nationKey.AdvanceRows(p.startIndex)
	g.phone.AdvanceRows(p.startIndex)
	g.acctbal.AdvanceRows(p.startIndex)
	g.mktSegment.AdvanceRows(p.startIndex)
	g.comment.AdvanceRows(p.startIndex)
	return g
}

// Next returns the next row, or ok=false once the partition is exhausted.
func (g *CustomerGenerator) Next() (Customer, bool) {
	if g.index >= g.p.startIndex+g.p.rowCount {
		return Customer{}, false
	}
	custKey := g.index + 1
	nationKey := int64(g.nationKey.NextValue())

	row := Customer{
		CustKey:    custKey,
		Address:    g.address.NextValue(),
		NationKey:  nationKey,
		Phone:      g.phone.NextValue(nationKey),
		AcctBal:    format.NewDecimalFromCents(int64(g.acctbal.NextValue())),
		MktSegment: g.mktSegment.NextValue(),
		Comment:    g.comment.NextValue(),
	}

	g.address.RowFinished()
	g.nationKey.RowFinished()
	g.phone.RowFinished()
	g.acctbal.RowFinished()
	g.mktSegment.RowFinished()
	g.comment.RowFinished()

	g.index++
	return row, true
}

func zeroPadKey(key int64) string {
	return fmt.Sprintf("%09d", key)
}
