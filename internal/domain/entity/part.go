package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part represents a manufactured or purchased component kept in stock.
// QuantityInStock is mutated only through stock operations (receipts, builds,
// scrap, adjustments) so the movement ledger stays consistent with it.
type Part struct {
	ID              string
	PartNumber      string // unique
	Name            string
	Description     string
	QuantityInStock decimal.Decimal // never negative
	MinStockLevel   decimal.Decimal
	CostPerUnit     decimal.Decimal
	Unit            string // pcs, kg, m, ...
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BelowMinimum reports whether current stock is under the minimum level.
func (p *Part) BelowMinimum() bool {
	return p.QuantityInStock.LessThan(p.MinStockLevel)
}
