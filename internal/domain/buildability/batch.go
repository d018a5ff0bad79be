package buildability

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
)

// BuildRequest pairs an assembly with the quantity the caller wants to build.
type BuildRequest struct {
	Assembly *entity.Assembly
	Quantity int64
}

// PartConstraint describes how tightly one part constrains the whole batch.
// Factor = Available / TotalRequired; a value below 1 means the combined
// request cannot be fully built with this part's stock.
type PartConstraint struct {
	PartID        string
	PartNumber    string
	Available     decimal.Decimal
	TotalRequired decimal.Decimal
	Factor        decimal.Decimal
}

// AssemblyDraw is one assembly's demand contribution on a part.
type AssemblyDraw struct {
	AssemblyID     string
	AssemblyNumber string
	QuantityNeeded decimal.Decimal
}

// InsufficientPart details a part whose stock does not cover the combined
// demand, with every assembly drawing on it.
type InsufficientPart struct {
	PartID        string
	PartNumber    string
	Available     decimal.Decimal
	TotalRequired decimal.Decimal
	Shortage      decimal.Decimal
	DrawnBy       []AssemblyDraw
}

// AssemblyMax reports, for one requested assembly, how many units the shared
// stock supports once every other assembly's simultaneous draw is accounted
// for. AdjustedMax may be below or above the requested quantity; the caller
// sees slack or shortfall directly.
type AssemblyMax struct {
	AssemblyID     string
	AssemblyNumber string
	Requested      int64
	AdjustedMax    int64
}

// BatchAnalysis is the full result of analyzing a batch build.
type BatchAnalysis struct {
	CanBuildAll             bool
	TotalAssemblies         int
	TotalPartTypes          int
	GlobalConstraintFactor  decimal.Decimal // min(1, min part factor); 1 with no demand
	PartConstraints         []PartConstraint // ascending by Factor
	MaxBuildablePerAssembly []AssemblyMax
	InsufficientParts       []InsufficientPart
}

var one = decimal.NewFromInt(1)

// AnalyzeBatch computes shared-resource contention for a set of assemblies
// built together. It must run in one pass over the whole selection, not
// assembly-by-assembly: one assembly's consumption changes what another can
// build from the same part pool.
//
// Shared stock is allocated proportionally by demand: an assembly's share of
// a part's stock is stock * (its demand / total demand), and its adjusted max
// is the minimum over its BOM lines of floor(share / quantity required).
//
// Requests with zero quantity contribute no demand and are skipped entirely.
// Unresolved part references count as zero available stock. A line with a
// non-positive required quantity pins its assembly's adjusted max at 0 and
// contributes no demand.
func AnalyzeBatch(requests []BuildRequest, idx PartIndex) BatchAnalysis {
	result := BatchAnalysis{GlobalConstraintFactor: one}

	// Pass 1: aggregate demand per part across the whole selection.
	totalRequired := map[string]decimal.Decimal{}
	drawsByPart := map[string][]AssemblyDraw{}
	faultyAssemblies := map[string]bool{}

	active := make([]BuildRequest, 0, len(requests))
	for _, req := range requests {
		if req.Assembly == nil || req.Quantity <= 0 {
			continue
		}
		active = append(active, req)
		qty := decimal.NewFromInt(req.Quantity)
		for i := range req.Assembly.BOMItems {
			line := req.Assembly.BOMItems[i]
			if line.QuantityRequired.LessThanOrEqual(decimal.Zero) {
				faultyAssemblies[req.Assembly.ID] = true
				continue
			}
			needed := line.QuantityRequired.Mul(qty)
			totalRequired[line.PartID] = totalRequired[line.PartID].Add(needed)
			drawsByPart[line.PartID] = append(drawsByPart[line.PartID], AssemblyDraw{
				AssemblyID:     req.Assembly.ID,
				AssemblyNumber: req.Assembly.AssemblyNumber,
				QuantityNeeded: needed,
			})
		}
	}
	result.TotalAssemblies = len(active)
	result.TotalPartTypes = len(totalRequired)

	// Pass 2: constraint factor per part; collect shortages.
	available := func(partID string) (decimal.Decimal, string) {
		if part, ok := idx[partID]; ok && part != nil {
			return part.QuantityInStock, part.PartNumber
		}
		return decimal.Zero, ""
	}

	for partID, required := range totalRequired {
		stock, partNumber := available(partID)
		factor := stock.Div(required)
		result.PartConstraints = append(result.PartConstraints, PartConstraint{
			PartID:        partID,
			PartNumber:    partNumber,
			Available:     stock,
			TotalRequired: required,
			Factor:        factor,
		})
		if factor.LessThan(result.GlobalConstraintFactor) {
			result.GlobalConstraintFactor = factor
		}
		if stock.LessThan(required) {
			result.InsufficientParts = append(result.InsufficientParts, InsufficientPart{
				PartID:        partID,
				PartNumber:    partNumber,
				Available:     stock,
				TotalRequired: required,
				Shortage:      required.Sub(stock),
				DrawnBy:       drawsByPart[partID],
			})
		}
	}
	result.CanBuildAll = len(result.InsufficientParts) == 0

	sort.SliceStable(result.PartConstraints, func(i, j int) bool {
		a, b := result.PartConstraints[i], result.PartConstraints[j]
		if !a.Factor.Equal(b.Factor) {
			return a.Factor.LessThan(b.Factor)
		}
		return a.PartNumber < b.PartNumber
	})
	sort.SliceStable(result.InsufficientParts, func(i, j int) bool {
		return result.InsufficientParts[i].Shortage.GreaterThan(result.InsufficientParts[j].Shortage)
	})

	// Pass 3: per-assembly adjusted max under proportional allocation.
	for _, req := range active {
		am := AssemblyMax{
			AssemblyID:     req.Assembly.ID,
			AssemblyNumber: req.Assembly.AssemblyNumber,
			Requested:      req.Quantity,
		}
		am.AdjustedMax = adjustedMax(req, idx, totalRequired, faultyAssemblies[req.Assembly.ID])
		result.MaxBuildablePerAssembly = append(result.MaxBuildablePerAssembly, am)
	}

	return result
}

// adjustedMax computes the minimum over the assembly's BOM lines of
// floor(allocated share / quantity required), where the share of a part's
// stock is proportional to this assembly's fraction of the total demand on
// that part. A part nobody else draws on allocates its full stock here.
func adjustedMax(req BuildRequest, idx PartIndex, totalRequired map[string]decimal.Decimal, faulty bool) int64 {
	if faulty || len(req.Assembly.BOMItems) == 0 {
		return 0
	}
	qty := decimal.NewFromInt(req.Quantity)
	var min int64 = -1
	for i := range req.Assembly.BOMItems {
		line := req.Assembly.BOMItems[i]
		stock := decimal.Zero
		if part := idx.Resolve(line); part != nil {
			stock = part.QuantityInStock
		}
		demand := line.QuantityRequired.Mul(qty)
		total := totalRequired[line.PartID]

		share := stock
		if total.GreaterThan(demand) {
			share = stock.Mul(demand).Div(total)
		}
		possible := share.Div(line.QuantityRequired).Floor().IntPart()
		if min < 0 || possible < min {
			min = possible
		}
	}
	if min < 0 {
		return 0
	}
	return min
}
