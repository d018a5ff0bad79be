package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateScrapRequest body for POST /scrap: write stock off as unusable.
type CreateScrapRequest struct {
	ItemType string          `json:"item_type" validate:"required,oneof=part raw"`
	ItemID   string          `json:"item_id" validate:"required"`
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason" validate:"required"`
}

// ScrapResponse output for a scrap record.
type ScrapResponse struct {
	ID         string          `json:"id"`
	ItemType   string          `json:"item_type"`
	ItemID     string          `json:"item_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reason     string          `json:"reason"`
	ScrappedBy string          `json:"scrapped_by"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ScrapListResponse paginated list of scrap records.
type ScrapListResponse struct {
	Items []ScrapResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// StockMovementResponse one ledger entry.
type StockMovementResponse struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	ItemType      string          `json:"item_type"`
	ItemID        string          `json:"item_id"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	Date          time.Time       `json:"date"`
	CreatedBy     string          `json:"created_by"`
}

// StockMovementListResponse paginated ledger listing.
type StockMovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
