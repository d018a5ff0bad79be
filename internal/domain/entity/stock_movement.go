package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock movement types.
const (
	MovementTypeRECEIPT    = "RECEIPT"    // purchase-order receipt
	MovementTypeBUILD      = "BUILD"      // part consumption by a build
	MovementTypeSCRAP      = "SCRAP"      // scrapped stock
	MovementTypeADJUSTMENT = "ADJUSTMENT" // manual correction
)

// StockMovement is one entry in the stock ledger. Quantity is the signed
// delta applied to the item's stock: positive for receipts and positive
// adjustments, negative for build consumption and scrap.
type StockMovement struct {
	ID            string
	TransactionID string // groups the movements of one build/receipt/scrap
	ItemType      string // "part" | "raw"
	ItemID        string
	Type          string
	Quantity      decimal.Decimal
	UnitCost      decimal.Decimal
	ReferenceID   string // purchase order, assembly or scrap record id
	Date          time.Time
	CreatedAt     time.Time
	CreatedBy     string
}
