package purchasing

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

type fakeOrders struct {
	byID map[string]*entity.PurchaseOrder
}

func (f *fakeOrders) Create(_ context.Context, o *entity.PurchaseOrder) error {
	f.byID[o.ID] = o
	return nil
}
func (f *fakeOrders) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	return f.byID[id], nil
}
func (f *fakeOrders) GetForUpdate(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	return f.byID[id], nil
}
func (f *fakeOrders) UpdateStatus(_ context.Context, id, status string) error {
	f.byID[id].Status = status
	return nil
}
func (f *fakeOrders) UpdateLineReceived(_ context.Context, line *entity.PurchaseOrderLine) error {
	order := f.byID[line.PurchaseOrderID]
	for i := range order.Lines {
		if order.Lines[i].ID == line.ID {
			order.Lines[i].QuantityReceived = line.QuantityReceived
		}
	}
	return nil
}
func (f *fakeOrders) List(_ context.Context, status string, _, _ int) ([]*entity.PurchaseOrder, error) {
	out := []*entity.PurchaseOrder{}
	for _, o := range f.byID {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

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
func (f *fakeParts) List(_ context.Context, _, _ int) ([]*entity.Part, error)  { return nil, nil }
func (f *fakeParts) ListAll(_ context.Context) ([]*entity.Part, error)         { return nil, nil }
func (f *fakeParts) Delete(_ context.Context, id string) error                 { delete(f.byID, id); return nil }

type fakeRawItems struct {
	byID map[string]*entity.RawItem
}

func (f *fakeRawItems) Create(_ context.Context, r *entity.RawItem) error { f.byID[r.ID] = r; return nil }
func (f *fakeRawItems) GetByID(_ context.Context, id string) (*entity.RawItem, error) {
	return f.byID[id], nil
}
func (f *fakeRawItems) GetForUpdate(_ context.Context, id string) (*entity.RawItem, error) {
	return f.byID[id], nil
}
func (f *fakeRawItems) Update(_ context.Context, r *entity.RawItem) error { f.byID[r.ID] = r; return nil }
func (f *fakeRawItems) UpdateStock(_ context.Context, id string, qty decimal.Decimal) error {
	f.byID[id].QuantityInStock = qty
	return nil
}
func (f *fakeRawItems) List(_ context.Context, _, _ int) ([]*entity.RawItem, error) {
	return nil, nil
}
func (f *fakeRawItems) Delete(_ context.Context, id string) error { delete(f.byID, id); return nil }

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

type fakeVendors struct {
	byID map[string]*entity.Vendor
}

func (f *fakeVendors) Create(_ context.Context, v *entity.Vendor) error { f.byID[v.ID] = v; return nil }
func (f *fakeVendors) GetByID(_ context.Context, id string) (*entity.Vendor, error) {
	return f.byID[id], nil
}
func (f *fakeVendors) Update(_ context.Context, v *entity.Vendor) error { f.byID[v.ID] = v; return nil }
func (f *fakeVendors) List(_ context.Context, _, _ int) ([]*entity.Vendor, error) {
	return nil, nil
}
func (f *fakeVendors) Delete(_ context.Context, id string) error { delete(f.byID, id); return nil }

type fakeTx struct {
	orders    *fakeOrders
	parts     *fakeParts
	rawItems  *fakeRawItems
	movements *fakeMovements
}

func (f *fakeTx) RunReceipt(ctx context.Context, fn func(repository.PurchaseOrderRepository, repository.PartRepository, repository.RawItemRepository, repository.StockMovementRepository) error) error {
	return fn(f.orders, f.parts, f.rawItems, f.movements)
}

type noopDocGen struct{}

func (noopDocGen) GeneratePurchaseOrder(DocumentData) ([]byte, error) { return []byte("pdf"), nil }

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fixture struct {
	tx *fakeTx
	uc *UseCase
}

func newFixture() *fixture {
	tx := &fakeTx{
		orders:    &fakeOrders{byID: map[string]*entity.PurchaseOrder{}},
		parts:     &fakeParts{byID: map[string]*entity.Part{}},
		rawItems:  &fakeRawItems{byID: map[string]*entity.RawItem{}},
		movements: &fakeMovements{},
	}
	vendors := &fakeVendors{byID: map[string]*entity.Vendor{
		"v-1": {ID: "v-1", Name: "Acme Metals"},
	}}
	log := logger.New(logger.Config{Env: "test", Level: "disabled"})
	uc := NewUseCase(tx, tx.orders, vendors, tx.parts, tx.rawItems, noopDocGen{}, log)
	return &fixture{tx: tx, uc: uc}
}

func (f *fixture) seedOrder() *entity.PurchaseOrder {
	f.tx.parts.byID["p-1"] = &entity.Part{ID: "p-1", PartNumber: "PA-1", Name: "Bracket", QuantityInStock: dec("5")}
	order := &entity.PurchaseOrder{
		ID:       "po-1",
		PONumber: "PO-2026-001",
		VendorID: "v-1",
		Status:   entity.POStatusPending,
		Lines: []entity.PurchaseOrderLine{
			{
				ID:              "line-1",
				PurchaseOrderID: "po-1",
				ItemType:        entity.POItemTypePart,
				ItemID:          "p-1",
				QuantityOrdered: dec("50"),
				UnitCost:        dec("2.50"),
			},
		},
	}
	f.tx.orders.byID[order.ID] = order
	return order
}

func TestReceivePartialDelivery(t *testing.T) {
	f := newFixture()
	f.seedOrder()

	resp, err := f.uc.Receive(context.Background(), "po-1", "user-1", dto.ReceiveRequest{
		Lines: []dto.ReceiptLineRequest{{LineID: "line-1", QuantityReceiving: dec("20")}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.POStatusPartial, resp.Status)
	assert.Equal(t, 40, resp.CompletionPercentage)
	require.Len(t, resp.Lines, 1)
	assert.True(t, resp.Lines[0].QuantityReceived.Equal(dec("20")))
	assert.True(t, resp.Lines[0].Remaining.Equal(dec("30")))

	// stock 5 + 20 received
	assert.True(t, f.tx.parts.byID["p-1"].QuantityInStock.Equal(dec("25")))

	require.Len(t, f.tx.movements.created, 1)
	mov := f.tx.movements.created[0]
	assert.Equal(t, entity.MovementTypeRECEIPT, mov.Type)
	assert.True(t, mov.Quantity.Equal(dec("20")))
	assert.Equal(t, "po-1", mov.ReferenceID)
}

func TestReceiveRejectsExcessWithoutSideEffects(t *testing.T) {
	f := newFixture()
	f.seedOrder()

	// 20 already received, remaining 30: 40 must be rejected outright.
	_, err := f.uc.Receive(context.Background(), "po-1", "user-1", dto.ReceiveRequest{
		Lines: []dto.ReceiptLineRequest{{LineID: "line-1", QuantityReceiving: dec("20")}},
	})
	require.NoError(t, err)

	_, err = f.uc.Receive(context.Background(), "po-1", "user-1", dto.ReceiveRequest{
		Lines: []dto.ReceiptLineRequest{{LineID: "line-1", QuantityReceiving: dec("40")}},
	})
	assert.ErrorIs(t, err, domain.ErrReceiptExceedsRemaining)

	// nothing moved on the rejected attempt
	assert.True(t, f.tx.parts.byID["p-1"].QuantityInStock.Equal(dec("25")))
	assert.Len(t, f.tx.movements.created, 1)
}

func TestReceiveCompletesOrder(t *testing.T) {
	f := newFixture()
	f.seedOrder()

	_, err := f.uc.Receive(context.Background(), "po-1", "user-1", dto.ReceiveRequest{
		Lines: []dto.ReceiptLineRequest{{LineID: "line-1", QuantityReceiving: dec("50")}},
	})
	require.NoError(t, err)

	resp, err := f.uc.GetByID(context.Background(), "po-1")
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusCompleted, resp.Status)
	assert.Equal(t, 100, resp.CompletionPercentage)

	// completed orders take no further receipts
	_, err = f.uc.Receive(context.Background(), "po-1", "user-1", dto.ReceiveRequest{
		Lines: []dto.ReceiptLineRequest{{LineID: "line-1", QuantityReceiving: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrOrderClosed)
}

func TestReceiveRejectsUnknownLine(t *testing.T) {
	f := newFixture()
	f.seedOrder()

	_, err := f.uc.Receive(context.Background(), "po-1", "user-1", dto.ReceiveRequest{
		Lines: []dto.ReceiptLineRequest{{LineID: "nope", QuantityReceiving: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelClosesOpenOrder(t *testing.T) {
	f := newFixture()
	f.seedOrder()

	resp, err := f.uc.Cancel(context.Background(), "po-1")
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusCancelled, resp.Status)

	_, err = f.uc.Receive(context.Background(), "po-1", "user-1", dto.ReceiveRequest{
		Lines: []dto.ReceiptLineRequest{{LineID: "line-1", QuantityReceiving: dec("5")}},
	})
	assert.ErrorIs(t, err, domain.ErrOrderClosed)

	_, err = f.uc.Cancel(context.Background(), "po-1")
	assert.ErrorIs(t, err, domain.ErrOrderClosed)
}

func TestCreateValidatesVendorAndLines(t *testing.T) {
	f := newFixture()
	f.tx.parts.byID["p-1"] = &entity.Part{ID: "p-1", PartNumber: "PA-1", Name: "Bracket"}

	_, err := f.uc.Create(context.Background(), "user-1", dto.CreatePurchaseOrderRequest{
		PONumber: "PO-X",
		VendorID: "v-missing",
		Lines:    []dto.POLineRequest{{ItemType: "part", ItemID: "p-1", QuantityOrdered: dec("10")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Create(context.Background(), "user-1", dto.CreatePurchaseOrderRequest{
		PONumber: "PO-X",
		VendorID: "v-1",
		Lines:    []dto.POLineRequest{{ItemType: "part", ItemID: "p-1", QuantityOrdered: dec("0")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := f.uc.Create(context.Background(), "user-1", dto.CreatePurchaseOrderRequest{
		PONumber: "PO-X",
		VendorID: "v-1",
		Lines:    []dto.POLineRequest{{ItemType: "part", ItemID: "p-1", QuantityOrdered: dec("10"), UnitCost: dec("3")}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusPending, resp.Status)
	assert.Equal(t, "Acme Metals", resp.VendorName)
	assert.True(t, resp.Total.Equal(dec("30")))
	assert.Equal(t, 0, resp.CompletionPercentage)
}
