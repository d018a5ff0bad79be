package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOMItem is one line of an assembly's bill of materials: the part and how
// many units of it one assembly unit consumes. QuantityRequired must be
// positive; a non-positive value is a data-integrity fault handled by the
// buildability package, never silently treated as "free".
type BOMItem struct {
	ID               string
	AssemblyID       string
	PartID           string
	QuantityRequired decimal.Decimal
	Notes            string
}

// Assembly is a buildable product defined by its bill of materials.
// ReadyBuilt counts finished units already constructed and in stock.
type Assembly struct {
	ID             string
	AssemblyNumber string // unique
	Name           string
	Description    string
	BOMItems       []BOMItem
	ReadyBuilt     decimal.Decimal
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
