package tpch

import (
	"fmt"

	"github.com/rishav/tpchgen/internal/column"
	"github.com/rishav/tpchgen/internal/dates"
	"github.com/rishav/tpchgen/internal/dist"
	"github.com/rishav/tpchgen/internal/format"
	"github.com/rishav/tpchgen/internal/rng"
	"github.com/rishav/tpchgen/internal/textpool"
)

const (
	ordersOrderDateSeed   = 1066728069
	ordersLineCountSeed   = 1434868289
	ordersCustomerKeySeed = 851767375
	ordersPrioritySeed    = 591449447
	ordersClerkSeed       = 1171034773
	ordersCommentSeed     = 276090261

	lineQuantitySeed      = 209208115
	lineDiscountSeed      = 554590007
	lineTaxSeed           = 721958466
	linePartKeySeed       = 1808217256
	lineSupplierIndexSeed = 2095021727
	lineShipDateSeed      = 1769349045
	lineCommitDateSeed    = 904914315
	lineReceiptDateSeed   = 373135028
	lineReturnFlagSeed    = 717419739
	lineShipInstructSeed  = 1371272478
	lineShipModeSeed      = 675466456
	lineCommentSeed       = 1095462486

	orderDateMin      = dates.MinGenerateDate
	orderDateMax      = dates.MinGenerateDate + dates.TotalDateRange - (shipDateOffsetMax + receiptDateOffsetMax) - 1
	lineCountMin      = 1
	lineCountMax      = 7
	customerMortality = 3

	ordersCommentAvgLen = 49
	lineCommentAvgLen   = 27

	shipDateOffsetMin    = 1
	shipDateOffsetMax    = 121
	commitDateOffsetMin  = 30
	commitDateOffsetMax  = 90
	receiptDateOffsetMin = 1
	receiptDateOffsetMax = 30
)

// Order is the ORDERS table row. OrderStatus and TotalPrice are derived
// from the order's lines once all of them have been generated, so they are
// populated by OrdersAndLines rather than drawn directly.
type Order struct {
	OrderKey     int64
	CustKey      int64
	OrderStatus  string
	TotalPrice   format.Decimal
	OrderDate    string
	Priority     string
	Clerk        string
	ShipPriority int32
	Comment      string
}

// Columns renders the row in TPC-H column order.
func (o Order) Columns() []string {
	return []string{
		fmt.Sprintf("%d", o.OrderKey),
		fmt.Sprintf("%d", o.CustKey),
		o.OrderStatus,
		o.TotalPrice.String(),
		o.OrderDate,
		o.Priority,
		o.Clerk,
		fmt.Sprintf("%d", o.ShipPriority),
		o.Comment,
	}
}

// LineItem is the LINEITEM table row.
type LineItem struct {
	OrderKey      int64
	PartKey       int64
	SuppKey       int64
	LineNumber    int32
	Quantity      format.Decimal
	ExtendedPrice format.Decimal
	Discount      format.Decimal
	Tax           format.Decimal
	ReturnFlag    string
	LineStatus    string
	ShipDate      string
	CommitDate    string
	ReceiptDate   string
	ShipInstruct  string
	ShipMode      string
	Comment       string
}

// Columns renders the row in TPC-H column order.
func (l LineItem) Columns() []string {
	return []string{
		fmt.Sprintf("%d", l.OrderKey),
		fmt.Sprintf("%d", l.PartKey),
		fmt.Sprintf("%d", l.SuppKey),
		fmt.Sprintf("%d", l.LineNumber),
		l.Quantity.String(),
		l.ExtendedPrice.String(),
		l.Discount.String(),
		l.Tax.String(),
		l.ReturnFlag,
		l.LineStatus,
		l.ShipDate,
		l.CommitDate,
		l.ReceiptDate,
		l.ShipInstruct,
		l.ShipMode,
		l.Comment,
	}
}

// OrderWithLines couples one ORDERS row with the LINEITEM rows it owns.
// o_orderstatus and o_totalprice can only be computed once every line has
// been drawn, so the joint producer is the unit of work both the ORDERS-only
// and LINEITEM-only iterators are built from.
type OrderWithLines struct {
	Order Order
	Lines []LineItem
}

// OrdersAndLines is the coupled ORDERS/LINEITEM producer: line-count per
// order drives how many LINEITEM rows follow each ORDERS row, and both
// tables are generated from the same partition walk so their key spaces
// stay in lockstep.
type OrdersAndLines struct {
	p             partition
	scaleFactor   float64
	maxCustKey    int64
	supplierCount int64

	orderDate *rng.BoundedInt
	lineCount *rng.BoundedInt
	customer  *rng.BoundedLong
	priority  *column.RandomString
	clerk     *rng.BoundedInt
	orderCmnt *textpool.RandomText

	quantity      *rng.BoundedInt
	discount      *rng.BoundedInt
	tax           *rng.BoundedInt
	partKey       *rng.BoundedLong
	supplierIndex *rng.BoundedInt
	shipOffset    *rng.BoundedInt
	commitOffset  *rng.BoundedInt
	receiptOffset *rng.BoundedInt
	returnFlag    *column.RandomString
	shipInstruct  *column.RandomString
	shipMode      *column.RandomString
	lineCmnt      *textpool.RandomText

	index int64
}

// NewOrdersAndLines creates a coupled ORDERS/LINEITEM producer over
// partition (part, partCount) at the given scale factor.
func NewOrdersAndLines(d *dist.Distributions, pool *textpool.Pool, scaleFactor float64, part, partCount int32) *OrdersAndLines {
	p := newPartition(OrderScaleBase, scaleFactor, part, partCount)
	use64 := Use64BitKeyRng(scaleFactor)
	maxCustKey := int64(float64(CustomerScaleBase) * scaleFactor)
	maxPartKey := int64(float64(PartScaleBase) * scaleFactor)
	maxClerk := int64(1000)
	if scaled := int64(1000 * scaleFactor); scaled > maxClerk {
		maxClerk = scaled
	}

	g := &OrdersAndLines{
		p:             p,
		scaleFactor:   scaleFactor,
		maxCustKey:    maxCustKey,
		supplierCount: SupplierCount(scaleFactor),

		orderDate: rng.NewBoundedInt(ordersOrderDateSeed, orderDateMin, orderDateMax, 1),
		lineCount: rng.NewBoundedInt(ordersLineCountSeed, lineCountMin, lineCountMax, 1),
		customer:  rng.NewBoundedLong(ordersCustomerKeySeed, 1, maxCustKey, 1, use64),
		priority:  column.NewRandomString(ordersPrioritySeed, d.OrderPriorities, 1),
		clerk:     rng.NewBoundedInt(ordersClerkSeed, 1, int32(maxClerk), 1),
		orderCmnt: textpool.NewRandomText(ordersCommentSeed, pool, ordersCommentAvgLen, 1),

		quantity:      rng.NewBoundedInt(lineQuantitySeed, 1, 50, lineCountMax),
		discount:      rng.NewBoundedInt(lineDiscountSeed, 0, 10, lineCountMax),
		tax:           rng.NewBoundedInt(lineTaxSeed, 0, 8, lineCountMax),
		partKey:       rng.NewBoundedLong(linePartKeySeed, 1, maxPartKey, lineCountMax, use64),
		supplierIndex: rng.NewBoundedInt(lineSupplierIndexSeed, 0, 3, lineCountMax),
		shipOffset:    rng.NewBoundedInt(lineShipDateSeed, shipDateOffsetMin, shipDateOffsetMax, lineCountMax),
		commitOffset:  rng.NewBoundedInt(lineCommitDateSeed, commitDateOffsetMin, commitDateOffsetMax, lineCountMax),
		receiptOffset: rng.NewBoundedInt(lineReceiptDateSeed, receiptDateOffsetMin, receiptDateOffsetMax, lineCountMax),
		returnFlag:    column.NewRandomString(lineReturnFlagSeed, d.ReturnFlags, lineCountMax),
		shipInstruct:  column.NewRandomString(lineShipInstructSeed, d.ShipInstructions, lineCountMax),
		shipMode:      column.NewRandomString(lineShipModeSeed, d.ShipModes, lineCountMax),
		lineCmnt:      textpool.NewRandomText(lineCommentSeed, pool, lineCommentAvgLen, lineCountMax),

		index: p.startIndex,
	}

	g.orderDate.AdvanceRows(p.startIndex)
	g.lineCount.AdvanceRows(p.startIndex)
	g.customer.AdvanceRows(p.startIndex)
	g.priority.AdvanceRows(p.startIndex)
	g.clerk.AdvanceRows(p.startIndex)
	g.orderCmnt.AdvanceRows(p.startIndex)
	g.quantity.AdvanceRows(p.startIndex)
	g.discount.AdvanceRows(p.startIndex)
	g.tax.AdvanceRows(p.startIndex)
	g.partKey.AdvanceRows(p.startIndex)
	g.supplierIndex.AdvanceRows(p.startIndex)
	g.shipOffset.AdvanceRows(p.startIndex)
	g.commitOffset.AdvanceRows(p.startIndex)
	g.receiptOffset.AdvanceRows(p.startIndex)
	g.returnFlag.AdvanceRows(p.startIndex)
	g.shipInstruct.AdvanceRows(p.startIndex)
	g.shipMode.AdvanceRows(p.startIndex)
	g.lineCmnt.AdvanceRows(p.startIndex)

	return g
}

// Next returns the next coupled order, or ok=false once the partition is
// exhausted.
func (g *OrdersAndLines) Next() (OrderWithLines, bool) {
	if g.index >= g.p.startIndex+g.p.rowCount {
		return OrderWithLines{}, false
	}
	orderIndex := g.index + 1
	orderKey := SparseOrderKey(orderIndex)

	orderDate := g.orderDate.NextValue()
	lineCount := g.lineCount.NextValue()
	custKey := applyCustomerMortality(int64(g.customer.NextValue()), g.maxCustKey)
	priority := g.priority.NextValue()
	clerk := fmt.Sprintf("Clerk#%09d", g.clerk.NextValue())
	comment := g.orderCmnt.NextValue()

	g.orderDate.RowFinished()
	g.lineCount.RowFinished()
	g.customer.RowFinished()
	g.priority.RowFinished()
	g.clerk.RowFinished()
	g.orderCmnt.RowFinished()

	lines := make([]LineItem, 0, lineCount)
	allF, allO := true, true
	var totalPrice int64

	for ln := int32(1); ln <= lineCount; ln++ {
		quantity := g.quantity.NextValue()
		discount := g.discount.NextValue()
		tax := g.tax.NextValue()
		partKey := g.partKey.NextValue()
		supplierIndex := int64(g.supplierIndex.NextValue())
		suppKey := SelectPartSupplier(partKey, supplierIndex, g.supplierCount)
		shipOffset := g.shipOffset.NextValue()
		commitOffset := g.commitOffset.NextValue()
		receiptOffset := g.receiptOffset.NextValue()
		returnFlagDraw := g.returnFlag.NextValue()
		shipInstruct := g.shipInstruct.NextValue()
		shipMode := g.shipMode.NextValue()
		lineComment := g.lineCmnt.NextValue()

		shipDate := orderDate + shipOffset
		commitDate := orderDate + commitOffset
		receiptDate := shipDate + receiptOffset

		extendedPrice := CalculatePartPrice(partKey) * int64(quantity)
		returnFlag := "N"
		if dates.IsInPast(receiptDate) {
			returnFlag = returnFlagDraw
		}
		lineStatus := "F"
		if !dates.IsInPast(shipDate) {
			lineStatus = "O"
		}
		if lineStatus != "F" {
			allF = false
		}
		if lineStatus != "O" {
			allO = false
		}

		lineTotal := int64(float64(extendedPrice) * (1 + float64(tax)/100) * (1 - float64(discount)/100))
		totalPrice += lineTotal

		lines = append(lines, LineItem{
			OrderKey:      orderKey,
			PartKey:       partKey,
			SuppKey:       suppKey,
			LineNumber:    ln,
			Quantity:      format.NewDecimalFromCents(int64(quantity) * 100),
			ExtendedPrice: format.NewDecimalFromCents(extendedPrice),
			Discount:      format.NewDecimalFromCents(int64(discount)),
			Tax:           format.NewDecimalFromCents(int64(tax)),
			ReturnFlag:    returnFlag,
			LineStatus:    lineStatus,
			ShipDate:      dates.FormatDate(shipDate),
			CommitDate:    dates.FormatDate(commitDate),
			ReceiptDate:   dates.FormatDate(receiptDate),
			ShipInstruct:  shipInstruct,
			ShipMode:      shipMode,
			Comment:       lineComment,
		})
	}

	g.quantity.RowFinished()
	g.discount.RowFinished()
	g.tax.RowFinished()
	g.partKey.RowFinished()
	g.supplierIndex.RowFinished()
	g.shipOffset.RowFinished()
	g.commitOffset.RowFinished()
	g.receiptOffset.RowFinished()
	g.returnFlag.RowFinished()
	g.shipInstruct.RowFinished()
	g.shipMode.RowFinished()
	g.lineCmnt.RowFinished()

	orderStatus := "P"
	if allF {
		orderStatus = "F"
	} else if allO {
		orderStatus = "O"
	}

	order := Order{
		OrderKey:     orderKey,
		CustKey:      custKey,
		OrderStatus:  orderStatus,
		TotalPrice:   format.NewDecimalFromCents(totalPrice),
		OrderDate:    dates.FormatDate(orderDate),
		Priority:     priority,
		Clerk:        clerk,
		ShipPriority: 0,
		Comment:      comment,
	}

	g.index++
	return OrderWithLines{Order: order, Lines: lines}, true
}

func applyCustomerMortality(custKey, maxCustKey int64) int64 {
	delta := int64(1)
	for custKey%customerMortality == 0 {
		custKey += delta
		if custKey > maxCustKey {
			custKey = maxCustKey
		}
		if custKey < 1 {
			custKey = 1
		}
		delta = -delta
	}
	return custKey
}

// OrdersGenerator projects OrdersAndLines down to ORDERS rows only, for
// when a caller requests ORDERS without LINEITEM.
type OrdersGenerator struct{ inner *OrdersAndLines }

// NewOrdersGenerator wraps a coupled producer as an ORDERS-only iterator.
func NewOrdersGenerator(d *dist.Distributions, pool *textpool.Pool, scaleFactor float64, part, partCount int32) *OrdersGenerator {
	return &OrdersGenerator{inner: NewOrdersAndLines(d, pool, scaleFactor, part, partCount)}
}

// Next returns the next ORDERS row, or ok=false once exhausted.
func (g *OrdersGenerator) Next() (Order, bool) {
	ol, ok := g.inner.Next()
	return ol.Order, ok
}

// LineItemGenerator projects OrdersAndLines down to LINEITEM rows only, for
// when a caller requests LINEITEM without ORDERS. It buffers the current
// order's lines and drains them one at a time.
type LineItemGenerator struct {
	inner   *OrdersAndLines
	pending []LineItem
}

// NewLineItemGenerator wraps a coupled producer as a LINEITEM-only iterator.
func NewLineItemGenerator(d *dist.Distributions, pool *textpool.Pool, scaleFactor float64, part, partCount int32) *LineItemGenerator {
	return &LineItemGenerator{inner: NewOrdersAndLines(d, pool, scaleFactor, part, partCount)}
}

// Next returns the next LINEITEM row, or ok=false once exhausted.
func (g *LineItemGenerator) Next() (LineItem, bool) {
	for len(g.pending) == 0 {
		ol, ok := g.inner.Next()
		if !ok {
			return LineItem{}, false
		}
		g.pending = ol.Lines
	}
	l := g.pending[0]
	g.pending = g.pending[1:]
	return l, true
}
