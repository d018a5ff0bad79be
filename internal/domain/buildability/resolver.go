// Package buildability holds the stock-consistency arithmetic for assemblies:
// per-line availability, the max-buildable quantity of a single assembly, and
// batch analysis of several assemblies competing for the same part pool.
//
// Everything here is pure: callers fetch a point-in-time snapshot (parts,
// assemblies), build a PartIndex once, and compute. No I/O, no hidden state.
package buildability

import "github.com/sayandip-ghosh/stock-management/internal/domain/entity"

// PartIndex resolves BOM part references against a stock snapshot.
type PartIndex map[string]*entity.Part

// NewPartIndex builds the index from a parts snapshot.
func NewPartIndex(parts []*entity.Part) PartIndex {
	idx := make(PartIndex, len(parts))
	for _, p := range parts {
		idx[p.ID] = p
	}
	return idx
}

// Resolve returns the part a BOM line references, or nil when the reference
// is dangling. Downstream calculations treat nil as zero available stock so
// a bad reference degrades to "cannot build" instead of failing the whole
// computation.
func (idx PartIndex) Resolve(line entity.BOMItem) *entity.Part {
	if line.PartID == "" {
		return nil
	}
	return idx[line.PartID]
}
