package buildability

import (
	"github.com/shopspring/decimal"

	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
)

// Availability is the result of checking one BOM line against current stock
// for a given build quantity.
type Availability struct {
	PartID    string
	Required  decimal.Decimal // QuantityRequired * multiplier
	Available decimal.Decimal // 0 when the part reference is unresolved
	CanBuild  bool
	Shortage  decimal.Decimal // max(0, Required - Available)
	DataFault bool            // unresolved part or non-positive QuantityRequired
}

// CheckAvailability evaluates one BOM line for building `multiplier` units of
// the assembly. An unresolved part reference or a non-positive required
// quantity is flagged as a data fault and reported as not buildable; it never
// degrades to "infinitely buildable".
func CheckAvailability(line entity.BOMItem, idx PartIndex, multiplier int64) Availability {
	if multiplier < 1 {
		multiplier = 1
	}
	a := Availability{PartID: line.PartID}

	if line.QuantityRequired.LessThanOrEqual(decimal.Zero) {
		a.DataFault = true
		return a
	}
	a.Required = line.QuantityRequired.Mul(decimal.NewFromInt(multiplier))

	part := idx.Resolve(line)
	if part == nil {
		a.DataFault = true
		a.Shortage = a.Required
		return a
	}
	a.Available = part.QuantityInStock
	a.CanBuild = a.Available.GreaterThanOrEqual(a.Required)
	if shortage := a.Required.Sub(a.Available); shortage.GreaterThan(decimal.Zero) {
		a.Shortage = shortage
	} else {
		a.Shortage = decimal.Zero
	}
	return a
}

// MaxBuildable returns the largest whole number of assembly units buildable
// from current stock alone, ignoring any other assembly's demand:
// min over BOM lines of floor(available / required).
//
// An empty BOM yields 0 (no defined BOM means nothing can be built), as does
// any line with a non-positive required quantity.
func MaxBuildable(asm *entity.Assembly, idx PartIndex) int64 {
	if asm == nil || len(asm.BOMItems) == 0 {
		return 0
	}
	var min int64 = -1
	for i := range asm.BOMItems {
		line := asm.BOMItems[i]
		if line.QuantityRequired.LessThanOrEqual(decimal.Zero) {
			return 0
		}
		available := decimal.Zero
		if part := idx.Resolve(line); part != nil {
			available = part.QuantityInStock
		}
		possible := available.Div(line.QuantityRequired).Floor().IntPart()
		if min < 0 || possible < min {
			min = possible
		}
	}
	if min < 0 {
		return 0
	}
	return min
}
