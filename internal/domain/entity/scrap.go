package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScrapRecord documents stock written off as unusable.
type ScrapRecord struct {
	ID         string
	ItemType   string // "part" | "raw"
	ItemID     string
	Quantity   decimal.Decimal
	Reason     string
	ScrappedBy string
	CreatedAt  time.Time
}
