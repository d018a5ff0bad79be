package dto

import "github.com/shopspring/decimal"

// LineAvailabilityDTO per-BOM-line availability for a requested build quantity.
type LineAvailabilityDTO struct {
	PartID     string          `json:"part_id"`
	PartNumber string          `json:"part_number,omitempty"`
	Required   decimal.Decimal `json:"required"`
	Available  decimal.Decimal `json:"available"`
	CanBuild   bool            `json:"can_build"`
	Shortage   decimal.Decimal `json:"shortage"`
	DataFault  bool            `json:"data_fault,omitempty"`
}

// BuildabilityResponse answer for GET /assemblies/:id/buildability.
type BuildabilityResponse struct {
	AssemblyID   string                `json:"assembly_id"`
	Quantity     int64                 `json:"quantity"`
	MaxBuildable int64                 `json:"max_buildable"`
	CanBuild     bool                  `json:"can_build"`
	Lines        []LineAvailabilityDTO `json:"lines"`
}

// BatchBuildItem one assembly in a batch analysis or build request.
type BatchBuildItem struct {
	AssemblyID string `json:"assembly_id" validate:"required"`
	Quantity   int64  `json:"quantity" validate:"min=0"`
}

// BatchAnalyzeRequest body for POST /builds/analyze.
type BatchAnalyzeRequest struct {
	Items []BatchBuildItem `json:"items" validate:"required,min=1"`
}

// PartConstraintDTO one row of the per-part constraint table.
type PartConstraintDTO struct {
	PartID        string          `json:"part_id"`
	PartNumber    string          `json:"part_number,omitempty"`
	Available     decimal.Decimal `json:"available"`
	TotalRequired decimal.Decimal `json:"total_required"`
	Factor        decimal.Decimal `json:"constraint_factor"`
}

// AssemblyDrawDTO one assembly's demand on an insufficient part.
type AssemblyDrawDTO struct {
	AssemblyID     string          `json:"assembly_id"`
	AssemblyNumber string          `json:"assembly_number,omitempty"`
	QuantityNeeded decimal.Decimal `json:"quantity_needed"`
}

// InsufficientPartDTO detail row for a part short of combined demand.
type InsufficientPartDTO struct {
	PartID        string            `json:"part_id"`
	PartNumber    string            `json:"part_number,omitempty"`
	Available     decimal.Decimal   `json:"available"`
	TotalRequired decimal.Decimal   `json:"total_required"`
	Shortage      decimal.Decimal   `json:"shortage"`
	DrawnBy       []AssemblyDrawDTO `json:"drawn_by"`
}

// AssemblyMaxDTO adjusted max-buildable for one assembly of the batch.
type AssemblyMaxDTO struct {
	AssemblyID     string `json:"assembly_id"`
	AssemblyNumber string `json:"assembly_number,omitempty"`
	Requested      int64  `json:"requested"`
	AdjustedMax    int64  `json:"adjusted_max"`
}

// BatchAnalyzeResponse full batch analysis result.
type BatchAnalyzeResponse struct {
	CanBuildAll             bool                  `json:"can_build_all"`
	TotalAssemblies         int                   `json:"total_assemblies"`
	TotalPartTypes          int                   `json:"total_part_types"`
	GlobalConstraintFactor  decimal.Decimal       `json:"global_constraint_factor"`
	PartConstraints         []PartConstraintDTO   `json:"part_constraints"`
	MaxBuildablePerAssembly []AssemblyMaxDTO      `json:"max_buildable_per_assembly"`
	InsufficientParts       []InsufficientPartDTO `json:"insufficient_parts"`
}

// ExecuteBuildRequest body for POST /builds: consume stock and build.
type ExecuteBuildRequest struct {
	Items []BatchBuildItem `json:"items" validate:"required,min=1"`
}

// ExecuteBuildResponse result of a committed build.
type ExecuteBuildResponse struct {
	TransactionID string           `json:"transaction_id"`
	Built         []BatchBuildItem `json:"built"`
}
