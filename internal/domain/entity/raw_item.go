package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawItem represents unshaped raw material stock (bar, sheet, rod, coil).
// Same stock discipline as Part; purchase-order lines may reference either.
type RawItem struct {
	ID              string
	ItemNumber      string // unique
	Name            string
	Material        string // e.g. SS304, EN8, brass
	Dimensions      string // free-form: "Ø12mm x 3m", "2mm sheet"
	QuantityInStock decimal.Decimal
	MinStockLevel   decimal.Decimal
	CostPerUnit     decimal.Decimal
	Unit            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
