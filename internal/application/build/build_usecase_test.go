package build

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayandip-ghosh/stock-management/internal/application/dto"
	"github.com/sayandip-ghosh/stock-management/internal/domain"
	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
	"github.com/sayandip-ghosh/stock-management/internal/domain/repository"
	"github.com/sayandip-ghosh/stock-management/pkg/logger"
)

type fakeParts struct {
	byID map[string]*entity.Part
}

func (f *fakeParts) Create(_ context.Context, p *entity.Part) error { f.byID[p.ID] = p; return nil }
func (f *fakeParts) GetByID(_ context.Context, id string) (*entity.Part, error) {
	return f.byID[id], nil
}
func (f *fakeParts) GetByPartNumber(_ context.Context, _ string) (*entity.Part, error) {
	return nil, nil
}
func (f *fakeParts) GetForUpdate(_ context.Context, id string) (*entity.Part, error) {
	return f.byID[id], nil
}
func (f *fakeParts) Update(_ context.Context, p *entity.Part) error { f.byID[p.ID] = p; return nil }
func (f *fakeParts) UpdateStock(_ context.Context, id string, qty decimal.Decimal) error {
	f.byID[id].QuantityInStock = qty
	return nil
}
func (f *fakeParts) List(_ context.Context, _, _ int) ([]*entity.Part, error) { return nil, nil }
func (f *fakeParts) ListAll(_ context.Context) ([]*entity.Part, error) {
	out := make([]*entity.Part, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}
func (f *fakeParts) Delete(_ context.Context, id string) error { delete(f.byID, id); return nil }

type fakeAssemblies struct {
	byID map[string]*entity.Assembly
}

func (f *fakeAssemblies) Create(_ context.Context, a *entity.Assembly) error {
	f.byID[a.ID] = a
	return nil
}
func (f *fakeAssemblies) GetByID(_ context.Context, id string) (*entity.Assembly, error) {
	return f.byID[id], nil
}
func (f *fakeAssemblies) Update(_ context.Context, a *entity.Assembly) error {
	f.byID[a.ID] = a
	return nil
}
func (f *fakeAssemblies) UpdateReadyBuilt(_ context.Context, id string, rb decimal.Decimal) error {
	f.byID[id].ReadyBuilt = rb
	return nil
}
func (f *fakeAssemblies) List(_ context.Context, _, _ int) ([]*entity.Assembly, error) {
	return nil, nil
}
func (f *fakeAssemblies) ListByIDs(_ context.Context, ids []string) ([]*entity.Assembly, error) {
	out := make([]*entity.Assembly, 0, len(ids))
	for _, id := range ids {
		if a, ok := f.byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeAssemblies) Delete(_ context.Context, id string) error { delete(f.byID, id); return nil }

type fakeMovements struct {
	created []*entity.StockMovement
}

func (f *fakeMovements) Create(_ context.Context, m *entity.StockMovement) error {
	f.created = append(f.created, m)
	return nil
}
func (f *fakeMovements) List(_ context.Context, _ string, _, _ int) ([]*entity.StockMovement, error) {
	return f.created, nil
}

type fakeTx struct {
	parts      *fakeParts
	assemblies *fakeAssemblies
	movements  *fakeMovements
}

func (f *fakeTx) Run(ctx context.Context, fn func(repository.PartRepository, repository.AssemblyRepository, repository.StockMovementRepository) error) error {
	return fn(f.parts, f.assemblies, f.movements)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testPart(id, number, stock string) *entity.Part {
	return &entity.Part{ID: id, PartNumber: number, Name: number, QuantityInStock: dec(stock)}
}

func testAssembly(id, number string, lines ...entity.BOMItem) *entity.Assembly {
	for i := range lines {
		lines[i].AssemblyID = id
	}
	return &entity.Assembly{ID: id, AssemblyNumber: number, Name: number, BOMItems: lines, IsActive: true}
}

func newFixture(parts []*entity.Part, assemblies []*entity.Assembly) *fakeTx {
	tx := &fakeTx{
		parts:      &fakeParts{byID: map[string]*entity.Part{}},
		assemblies: &fakeAssemblies{byID: map[string]*entity.Assembly{}},
		movements:  &fakeMovements{},
	}
	for _, p := range parts {
		tx.parts.byID[p.ID] = p
	}
	for _, a := range assemblies {
		tx.assemblies.byID[a.ID] = a
	}
	return tx
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "disabled"})
}

func TestExecuteConsumesSharedStockAcrossBatch(t *testing.T) {
	tx := newFixture(
		[]*entity.Part{testPart("p-a", "PA-1", "100"), testPart("p-b", "PB-1", "40")},
		[]*entity.Assembly{
			testAssembly("asm-x", "ASM-X",
				entity.BOMItem{ID: "l1", PartID: "p-a", QuantityRequired: dec("2")},
				entity.BOMItem{ID: "l2", PartID: "p-b", QuantityRequired: dec("4")},
			),
			testAssembly("asm-y", "ASM-Y",
				entity.BOMItem{ID: "l3", PartID: "p-b", QuantityRequired: dec("2")},
			),
		},
	)
	uc := NewBuildUseCase(tx, testLogger())

	resp, err := uc.Execute(context.Background(), "user-1", dto.ExecuteBuildRequest{
		Items: []dto.BatchBuildItem{
			{AssemblyID: "asm-x", Quantity: 5},
			{AssemblyID: "asm-y", Quantity: 3},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.TransactionID)
	assert.Len(t, resp.Built, 2)

	// p-a: 100 - 5*2; p-b: 40 - (5*4 + 3*2)
	assert.True(t, tx.parts.byID["p-a"].QuantityInStock.Equal(dec("90")))
	assert.True(t, tx.parts.byID["p-b"].QuantityInStock.Equal(dec("14")))

	assert.True(t, tx.assemblies.byID["asm-x"].ReadyBuilt.Equal(dec("5")))
	assert.True(t, tx.assemblies.byID["asm-y"].ReadyBuilt.Equal(dec("3")))

	require.Len(t, tx.movements.created, 2)
	for _, m := range tx.movements.created {
		assert.Equal(t, resp.TransactionID, m.TransactionID)
		assert.Equal(t, entity.MovementTypeBUILD, m.Type)
		assert.True(t, m.Quantity.IsNegative())
	}
}

func TestExecuteRejectsInsufficientCombinedStock(t *testing.T) {
	// Each assembly alone fits in 15 units of p-b, the pair does not.
	tx := newFixture(
		[]*entity.Part{testPart("p-b", "PB-1", "15")},
		[]*entity.Assembly{
			testAssembly("asm-x", "ASM-X", entity.BOMItem{ID: "l1", PartID: "p-b", QuantityRequired: dec("4")}),
			testAssembly("asm-y", "ASM-Y", entity.BOMItem{ID: "l2", PartID: "p-b", QuantityRequired: dec("2")}),
		},
	)
	uc := NewBuildUseCase(tx, testLogger())

	_, err := uc.Execute(context.Background(), "user-1", dto.ExecuteBuildRequest{
		Items: []dto.BatchBuildItem{
			{AssemblyID: "asm-x", Quantity: 3},
			{AssemblyID: "asm-y", Quantity: 5},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestExecuteRejectsUnknownAssembly(t *testing.T) {
	tx := newFixture(nil, nil)
	uc := NewBuildUseCase(tx, testLogger())

	_, err := uc.Execute(context.Background(), "user-1", dto.ExecuteBuildRequest{
		Items: []dto.BatchBuildItem{{AssemblyID: "missing", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecuteRejectsNonPositiveQuantity(t *testing.T) {
	tx := newFixture(nil, nil)
	uc := NewBuildUseCase(tx, testLogger())

	_, err := uc.Execute(context.Background(), "user-1", dto.ExecuteBuildRequest{
		Items: []dto.BatchBuildItem{{AssemblyID: "asm-x", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildabilityReportsPerLineShortage(t *testing.T) {
	tx := newFixture(
		[]*entity.Part{testPart("p-a", "PA-1", "10")},
		[]*entity.Assembly{
			testAssembly("asm-x", "ASM-X", entity.BOMItem{ID: "l1", PartID: "p-a", QuantityRequired: dec("3")}),
		},
	)
	uc := NewAnalyzeUseCase(tx.parts, tx.assemblies, testLogger())

	resp, err := uc.Buildability(context.Background(), "asm-x", 4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.MaxBuildable)
	assert.False(t, resp.CanBuild)
	require.Len(t, resp.Lines, 1)
	assert.True(t, resp.Lines[0].Shortage.Equal(dec("2")))
}

func TestAnalyzeBatchProportionalAllocation(t *testing.T) {
	tx := newFixture(
		[]*entity.Part{testPart("p-b", "PB-1", "15")},
		[]*entity.Assembly{
			testAssembly("asm-x", "ASM-X", entity.BOMItem{ID: "l1", PartID: "p-b", QuantityRequired: dec("4")}),
			testAssembly("asm-y", "ASM-Y", entity.BOMItem{ID: "l2", PartID: "p-b", QuantityRequired: dec("2")}),
		},
	)
	uc := NewAnalyzeUseCase(tx.parts, tx.assemblies, testLogger())

	resp, err := uc.AnalyzeBatch(context.Background(), dto.BatchAnalyzeRequest{
		Items: []dto.BatchBuildItem{
			{AssemblyID: "asm-x", Quantity: 3},
			{AssemblyID: "asm-y", Quantity: 5},
		},
	})
	require.NoError(t, err)
	assert.False(t, resp.CanBuildAll)
	// total demand 22 against 15 in stock
	assert.True(t, resp.GlobalConstraintFactor.Equal(dec("15").Div(dec("22"))))
	require.Len(t, resp.InsufficientParts, 1)
	assert.True(t, resp.InsufficientParts[0].Shortage.Equal(dec("7")))
	require.Len(t, resp.MaxBuildablePerAssembly, 2)
	byID := map[string]int64{}
	for _, m := range resp.MaxBuildablePerAssembly {
		byID[m.AssemblyID] = m.AdjustedMax
	}
	assert.Equal(t, int64(2), byID["asm-x"])
	assert.Equal(t, int64(3), byID["asm-y"])
}
