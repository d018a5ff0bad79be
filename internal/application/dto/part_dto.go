package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePartRequest input for creating a part.
type CreatePartRequest struct {
	PartNumber    string          `json:"part_number" validate:"required,min=1,max=100"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	InitialStock  decimal.Decimal `json:"initial_stock"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit"`
	Unit          string          `json:"unit"`
}

// UpdatePartRequest input for updating a part (stock excluded; use adjustments).
type UpdatePartRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	MinStockLevel *decimal.Decimal `json:"min_stock_level"`
	CostPerUnit   *decimal.Decimal `json:"cost_per_unit"`
	Unit          *string          `json:"unit"`
}

// AdjustStockRequest body for a manual stock adjustment. Quantity is the
// signed delta; negative adjustments may not take stock below zero.
type AdjustStockRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason"`
}

// PartResponse output for a part.
type PartResponse struct {
	ID              string          `json:"id"`
	PartNumber      string          `json:"part_number"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	QuantityInStock decimal.Decimal `json:"quantity_in_stock"`
	MinStockLevel   decimal.Decimal `json:"min_stock_level"`
	CostPerUnit     decimal.Decimal `json:"cost_per_unit"`
	Unit            string          `json:"unit"`
	BelowMinimum    bool            `json:"below_minimum"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// PartListResponse paginated list of parts.
type PartListResponse struct {
	Items []PartResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
