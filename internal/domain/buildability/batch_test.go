package buildability_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayandip-ghosh/stock-management/internal/domain/buildability"
	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
)

// Spec scenario: two assemblies competing for part B.
//
//	X needs 2xB per unit, requested 5  -> demand 10
//	Y needs 3xB per unit, requested 4  -> demand 12
//	stock of B = 15, total demand = 22
func twoAssemblyBatch() ([]buildability.BuildRequest, buildability.PartIndex) {
	idx := buildability.NewPartIndex([]*entity.Part{part("b", 15)})
	reqs := []buildability.BuildRequest{
		{Assembly: assembly("x", bomLine("b", 2)), Quantity: 5},
		{Assembly: assembly("y", bomLine("b", 3)), Quantity: 4},
	}
	return reqs, idx
}

func TestAnalyzeBatch_SharedPartContention(t *testing.T) {
	reqs, idx := twoAssemblyBatch()

	res := buildability.AnalyzeBatch(reqs, idx)

	assert.False(t, res.CanBuildAll)
	assert.Equal(t, 2, res.TotalAssemblies)
	assert.Equal(t, 1, res.TotalPartTypes)

	require.Len(t, res.PartConstraints, 1)
	pc := res.PartConstraints[0]
	assert.True(t, pc.TotalRequired.Equal(decimal.NewFromInt(22)), "total_required[B] = 10 + 12")
	wantFactor := decimal.NewFromInt(15).Div(decimal.NewFromInt(22))
	assert.True(t, pc.Factor.Equal(wantFactor), "factor = 15/22, got %s", pc.Factor)
	assert.True(t, res.GlobalConstraintFactor.Equal(wantFactor))

	require.Len(t, res.InsufficientParts, 1)
	short := res.InsufficientParts[0]
	assert.Equal(t, "b", short.PartID)
	assert.True(t, short.Shortage.Equal(decimal.NewFromInt(7)), "shortage = 22 - 15")
	require.Len(t, short.DrawnBy, 2, "both assemblies draw on B")
}

func TestAnalyzeBatch_ProportionalAdjustedMax(t *testing.T) {
	reqs, idx := twoAssemblyBatch()

	res := buildability.AnalyzeBatch(reqs, idx)

	require.Len(t, res.MaxBuildablePerAssembly, 2)
	byID := map[string]buildability.AssemblyMax{}
	for _, am := range res.MaxBuildablePerAssembly {
		byID[am.AssemblyID] = am
	}
	// X's share: 15 * 10/22 = 6.81..; /2 per unit -> 3.
	// Y's share: 15 * 12/22 = 8.18..; /3 per unit -> 2.
	assert.Equal(t, int64(3), byID["x"].AdjustedMax)
	assert.Equal(t, int64(2), byID["y"].AdjustedMax)
	assert.Equal(t, int64(5), byID["x"].Requested)
	assert.Equal(t, int64(4), byID["y"].Requested)
}

// AdjustedMax is reported raw, not clamped to the requested quantity, so the
// caller can see slack when stock exceeds the request.
func TestAnalyzeBatch_AdjustedMaxMayExceedRequest(t *testing.T) {
	idx := buildability.NewPartIndex([]*entity.Part{part("a", 100)})
	reqs := []buildability.BuildRequest{
		{Assembly: assembly("x", bomLine("a", 2)), Quantity: 3},
	}

	res := buildability.AnalyzeBatch(reqs, idx)

	assert.True(t, res.CanBuildAll)
	assert.True(t, res.GlobalConstraintFactor.Equal(decimal.NewFromInt(1)), "factor >= 1 reported as 1")
	require.Len(t, res.MaxBuildablePerAssembly, 1)
	assert.Equal(t, int64(50), res.MaxBuildablePerAssembly[0].AdjustedMax,
		"sole drawer gets the full stock: floor(100/2)")
}

func TestAnalyzeBatch_ZeroQuantityRequestSkipped(t *testing.T) {
	idx := buildability.NewPartIndex([]*entity.Part{part("a", 4)})
	reqs := []buildability.BuildRequest{
		{Assembly: assembly("x", bomLine("a", 2)), Quantity: 2},
		{Assembly: assembly("y", bomLine("a", 99)), Quantity: 0},
	}

	res := buildability.AnalyzeBatch(reqs, idx)

	assert.Equal(t, 1, res.TotalAssemblies, "zero-quantity request contributes nothing")
	assert.True(t, res.CanBuildAll)
	require.Len(t, res.MaxBuildablePerAssembly, 1)
	assert.Equal(t, "x", res.MaxBuildablePerAssembly[0].AssemblyID)
}

func TestAnalyzeBatch_EmptySelection(t *testing.T) {
	res := buildability.AnalyzeBatch(nil, buildability.NewPartIndex(nil))

	assert.True(t, res.CanBuildAll)
	assert.True(t, res.GlobalConstraintFactor.Equal(decimal.NewFromInt(1)), "no demand means factor 1")
	assert.Empty(t, res.PartConstraints)
	assert.Empty(t, res.InsufficientParts)
}

func TestAnalyzeBatch_UnresolvedPartCountsAsZeroStock(t *testing.T) {
	idx := buildability.NewPartIndex(nil)
	reqs := []buildability.BuildRequest{
		{Assembly: assembly("x", bomLine("ghost", 1)), Quantity: 2},
	}

	res := buildability.AnalyzeBatch(reqs, idx)

	assert.False(t, res.CanBuildAll)
	require.Len(t, res.InsufficientParts, 1)
	assert.True(t, res.InsufficientParts[0].Shortage.Equal(decimal.NewFromInt(2)))
	require.Len(t, res.MaxBuildablePerAssembly, 1)
	assert.Equal(t, int64(0), res.MaxBuildablePerAssembly[0].AdjustedMax)
}

func TestAnalyzeBatch_ConstraintsSortedTightestFirst(t *testing.T) {
	idx := buildability.NewPartIndex([]*entity.Part{
		part("a", 100), // factor 100/10 = 10
		part("b", 5),   // factor 5/10 = 0.5
		part("c", 10),  // factor 10/10 = 1
	})
	reqs := []buildability.BuildRequest{
		{Assembly: assembly("x", bomLine("a", 1), bomLine("b", 1), bomLine("c", 1)), Quantity: 10},
	}

	res := buildability.AnalyzeBatch(reqs, idx)

	require.Len(t, res.PartConstraints, 3)
	assert.Equal(t, "b", res.PartConstraints[0].PartID, "binding constraint first")
	assert.Equal(t, "c", res.PartConstraints[1].PartID)
	assert.Equal(t, "a", res.PartConstraints[2].PartID)
}

// Increasing any part's stock never decreases the global constraint factor
// or any assembly's adjusted max.
func TestAnalyzeBatch_MonotonicInStock(t *testing.T) {
	reqs := []buildability.BuildRequest{
		{Assembly: assembly("x", bomLine("b", 2)), Quantity: 5},
		{Assembly: assembly("y", bomLine("b", 3)), Quantity: 4},
	}

	prevFactor := decimal.NewFromInt(-1)
	prevMax := map[string]int64{}
	for stock := int64(0); stock <= 44; stock += 4 {
		idx := buildability.NewPartIndex([]*entity.Part{part("b", stock)})
		res := buildability.AnalyzeBatch(reqs, idx)

		require.True(t, res.GlobalConstraintFactor.GreaterThanOrEqual(prevFactor),
			"global factor regressed at stock=%d", stock)
		prevFactor = res.GlobalConstraintFactor

		for _, am := range res.MaxBuildablePerAssembly {
			require.GreaterOrEqual(t, am.AdjustedMax, prevMax[am.AssemblyID],
				"adjusted max for %s regressed at stock=%d", am.AssemblyID, stock)
			prevMax[am.AssemblyID] = am.AdjustedMax
		}
	}
}
