package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOMItemRequest one BOM line in a create/update request.
type BOMItemRequest struct {
	PartID           string          `json:"part_id" validate:"required"`
	QuantityRequired decimal.Decimal `json:"quantity_required"`
	Notes            string          `json:"notes"`
}

// CreateAssemblyRequest input for creating an assembly with its BOM.
type CreateAssemblyRequest struct {
	AssemblyNumber string           `json:"assembly_number" validate:"required,min=1,max=100"`
	Name           string           `json:"name" validate:"required,min=1,max=200"`
	Description    string           `json:"description"`
	BOMItems       []BOMItemRequest `json:"bom_items"`
}

// UpdateAssemblyRequest input for updating an assembly. A non-nil BOMItems
// replaces the whole BOM line set.
type UpdateAssemblyRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	IsActive    *bool            `json:"is_active"`
	BOMItems    []BOMItemRequest `json:"bom_items"`
}

// BOMItemResponse one BOM line in responses, with the part resolved.
type BOMItemResponse struct {
	ID               string          `json:"id"`
	PartID           string          `json:"part_id"`
	PartNumber       string          `json:"part_number,omitempty"`
	PartName         string          `json:"part_name,omitempty"`
	QuantityRequired decimal.Decimal `json:"quantity_required"`
	Notes            string          `json:"notes,omitempty"`
}

// AssemblyResponse output for an assembly.
type AssemblyResponse struct {
	ID             string            `json:"id"`
	AssemblyNumber string            `json:"assembly_number"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	BOMItems       []BOMItemResponse `json:"bom_items"`
	ReadyBuilt     decimal.Decimal   `json:"ready_built"`
	IsActive       bool              `json:"is_active"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// AssemblyListResponse paginated list of assemblies.
type AssemblyListResponse struct {
	Items []AssemblyResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
