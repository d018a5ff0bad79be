package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase order statuses. pending -> partial -> completed on receipts;
// pending/partial -> cancelled on explicit cancellation. completed and
// cancelled are terminal.
const (
	POStatusPending   = "pending"
	POStatusPartial   = "partial"
	POStatusCompleted = "completed"
	POStatusCancelled = "cancelled"
)

// Line item types: what the line references.
const (
	POItemTypePart = "part"
	POItemTypeRaw  = "raw"
)

// PurchaseOrderLine is one ordered item. QuantityReceived is cumulative and
// satisfies 0 <= QuantityReceived <= QuantityOrdered at all times.
type PurchaseOrderLine struct {
	ID               string
	PurchaseOrderID  string
	ItemType         string // "part" | "raw"
	ItemID           string
	QuantityOrdered  decimal.Decimal
	QuantityReceived decimal.Decimal
	UnitCost         decimal.Decimal
}

// LineTotal returns QuantityOrdered * UnitCost.
func (l *PurchaseOrderLine) LineTotal() decimal.Decimal {
	return l.QuantityOrdered.Mul(l.UnitCost)
}

// PurchaseOrder is an order placed with a vendor, received in one or more
// partial deliveries.
type PurchaseOrder struct {
	ID        string
	PONumber  string // unique
	VendorID  string
	OrderDate time.Time
	Status    string
	Notes     string
	Lines     []PurchaseOrderLine
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClosed reports whether the order accepts no further receipts.
func (o *PurchaseOrder) IsClosed() bool {
	return o.Status == POStatusCompleted || o.Status == POStatusCancelled
}

// Total returns the sum of line totals.
func (o *PurchaseOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Lines {
		total = total.Add(o.Lines[i].LineTotal())
	}
	return total
}
