package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRawItemRequest input for creating a raw material item.
type CreateRawItemRequest struct {
	ItemNumber    string          `json:"item_number" validate:"required,min=1,max=100"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Material      string          `json:"material"`
	Dimensions    string          `json:"dimensions"`
	InitialStock  decimal.Decimal `json:"initial_stock"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	CostPerUnit   decimal.Decimal `json:"cost_per_unit"`
	Unit          string          `json:"unit"`
}

// UpdateRawItemRequest input for updating a raw item.
type UpdateRawItemRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Material      *string          `json:"material"`
	Dimensions    *string          `json:"dimensions"`
	MinStockLevel *decimal.Decimal `json:"min_stock_level"`
	CostPerUnit   *decimal.Decimal `json:"cost_per_unit"`
	Unit          *string          `json:"unit"`
}

// RawItemResponse output for a raw item.
type RawItemResponse struct {
	ID              string          `json:"id"`
	ItemNumber      string          `json:"item_number"`
	Name            string          `json:"name"`
	Material        string          `json:"material"`
	Dimensions      string          `json:"dimensions"`
	QuantityInStock decimal.Decimal `json:"quantity_in_stock"`
	MinStockLevel   decimal.Decimal `json:"min_stock_level"`
	CostPerUnit     decimal.Decimal `json:"cost_per_unit"`
	Unit            string          `json:"unit"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// RawItemListResponse paginated list of raw items.
type RawItemListResponse struct {
	Items []RawItemResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
