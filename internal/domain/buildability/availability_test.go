package buildability_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayandip-ghosh/stock-management/internal/domain/buildability"
	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
)

func part(id string, stock int64) *entity.Part {
	return &entity.Part{
		ID:              id,
		PartNumber:      "PN-" + id,
		QuantityInStock: decimal.NewFromInt(stock),
	}
}

func bomLine(partID string, required int64) entity.BOMItem {
	return entity.BOMItem{PartID: partID, QuantityRequired: decimal.NewFromInt(required)}
}

func assembly(id string, lines ...entity.BOMItem) *entity.Assembly {
	return &entity.Assembly{ID: id, AssemblyNumber: "ASM-" + id, BOMItems: lines, IsActive: true}
}

func TestCheckAvailability_EnoughStock(t *testing.T) {
	idx := buildability.NewPartIndex([]*entity.Part{part("a", 10)})

	a := buildability.CheckAvailability(bomLine("a", 3), idx, 1)

	assert.True(t, a.CanBuild)
	assert.False(t, a.DataFault)
	assert.True(t, a.Required.Equal(decimal.NewFromInt(3)))
	assert.True(t, a.Shortage.IsZero())
}

// Spec example: one line requiring 3 units with 10 in stock; a build of 4
// needs 12 and is short by 2.
func TestCheckAvailability_ShortageForMultiplier(t *testing.T) {
	idx := buildability.NewPartIndex([]*entity.Part{part("a", 10)})

	a := buildability.CheckAvailability(bomLine("a", 3), idx, 4)

	assert.False(t, a.CanBuild)
	assert.True(t, a.Required.Equal(decimal.NewFromInt(12)))
	assert.True(t, a.Shortage.Equal(decimal.NewFromInt(2)), "shortage = max(0, 12-10)")
}

func TestCheckAvailability_UnresolvedPartFailsSafe(t *testing.T) {
	idx := buildability.NewPartIndex(nil)

	a := buildability.CheckAvailability(bomLine("ghost", 2), idx, 1)

	assert.True(t, a.DataFault, "dangling part reference must be flagged")
	assert.False(t, a.CanBuild)
	assert.True(t, a.Available.IsZero(), "unresolved part counts as zero stock")
	assert.True(t, a.Shortage.Equal(decimal.NewFromInt(2)))
}

func TestCheckAvailability_NonPositiveRequiredIsDataFault(t *testing.T) {
	idx := buildability.NewPartIndex([]*entity.Part{part("a", 100)})
	line := entity.BOMItem{PartID: "a", QuantityRequired: decimal.Zero}

	a := buildability.CheckAvailability(line, idx, 1)

	assert.True(t, a.DataFault)
	assert.False(t, a.CanBuild, "zero required must never read as infinitely buildable")
}

func TestMaxBuildable_MinAcrossLines(t *testing.T) {
	idx := buildability.NewPartIndex([]*entity.Part{
		part("a", 10), // 10/3 -> 3
		part("b", 9),  // 9/2  -> 4
	})
	asm := assembly("x", bomLine("a", 3), bomLine("b", 2))

	assert.Equal(t, int64(3), buildability.MaxBuildable(asm, idx))
}

func TestMaxBuildable_SingleLineFloor(t *testing.T) {
	idx := buildability.NewPartIndex([]*entity.Part{part("a", 10)})
	asm := assembly("x", bomLine("a", 3))

	assert.Equal(t, int64(3), buildability.MaxBuildable(asm, idx), "floor(10/3)")
}

func TestMaxBuildable_EmptyBOMIsZero(t *testing.T) {
	idx := buildability.NewPartIndex([]*entity.Part{part("a", 10)})

	assert.Equal(t, int64(0), buildability.MaxBuildable(assembly("empty"), idx),
		"an assembly without a BOM is conservatively unbuildable")
}

func TestMaxBuildable_UnresolvedLineYieldsZero(t *testing.T) {
	idx := buildability.NewPartIndex([]*entity.Part{part("a", 10)})
	asm := assembly("x", bomLine("a", 1), bomLine("ghost", 1))

	assert.Equal(t, int64(0), buildability.MaxBuildable(asm, idx))
}

func TestMaxBuildable_NonPositiveRequiredYieldsZero(t *testing.T) {
	idx := buildability.NewPartIndex([]*entity.Part{part("a", 10)})
	asm := assembly("x", entity.BOMItem{PartID: "a", QuantityRequired: decimal.NewFromInt(-1)})

	assert.Equal(t, int64(0), buildability.MaxBuildable(asm, idx))
}

// Increasing stock can only increase (or keep) the buildable quantity.
func TestMaxBuildable_MonotonicInStock(t *testing.T) {
	asm := assembly("x", bomLine("a", 3), bomLine("b", 2))
	prev := int64(-1)
	for stock := int64(0); stock <= 30; stock += 3 {
		idx := buildability.NewPartIndex([]*entity.Part{part("a", stock), part("b", 100)})
		got := buildability.MaxBuildable(asm, idx)
		require.GreaterOrEqual(t, got, prev, "stock=%d", stock)
		prev = got
	}
}
