package receiving_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayandip-ghosh/stock-management/internal/domain"
	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
	"github.com/sayandip-ghosh/stock-management/internal/domain/receiving"
)

func line(id string, ordered, received int64) entity.PurchaseOrderLine {
	return entity.PurchaseOrderLine{
		ID:               id,
		ItemType:         entity.POItemTypePart,
		QuantityOrdered:  decimal.NewFromInt(ordered),
		QuantityReceived: decimal.NewFromInt(received),
	}
}

func order(status string, lines ...entity.PurchaseOrderLine) *entity.PurchaseOrder {
	return &entity.PurchaseOrder{ID: "po-1", Status: status, Lines: lines}
}

func TestRemaining(t *testing.T) {
	l := line("l1", 50, 20)
	assert.True(t, receiving.Remaining(&l).Equal(decimal.NewFromInt(30)))
}

// Spec scenario: ordered=50, received=20. Receiving 40 exceeds the remaining
// 30 and is rejected; receiving 30 fills the line exactly.
func TestValidateReceipt_RejectsOverRemaining(t *testing.T) {
	l := line("l1", 50, 20)

	err := receiving.ValidateReceipt(&l, decimal.NewFromInt(40))
	assert.ErrorIs(t, err, domain.ErrReceiptExceedsRemaining)

	err = receiving.ValidateReceipt(&l, decimal.NewFromInt(30))
	assert.NoError(t, err)
}

func TestValidateReceipt_RejectsNonPositive(t *testing.T) {
	l := line("l1", 50, 0)

	assert.ErrorIs(t, receiving.ValidateReceipt(&l, decimal.Zero), domain.ErrInvalidInput)
	assert.ErrorIs(t, receiving.ValidateReceipt(&l, decimal.NewFromInt(-5)), domain.ErrInvalidInput)
}

func TestApplyReceipt_AccumulatesUpToOrdered(t *testing.T) {
	l := line("l1", 50, 20)

	require.NoError(t, receiving.ApplyReceipt(&l, decimal.NewFromInt(30)))
	assert.True(t, l.QuantityReceived.Equal(decimal.NewFromInt(50)))
	assert.True(t, receiving.Remaining(&l).IsZero())

	// Line is full; any further receipt fails.
	assert.ErrorIs(t, receiving.ApplyReceipt(&l, decimal.NewFromInt(1)), domain.ErrReceiptExceedsRemaining)
}

func TestValidateRequest_AllOrNothing(t *testing.T) {
	o := order(entity.POStatusPending, line("l1", 10, 0), line("l2", 5, 0))

	// Second line over-receives: the whole request is rejected up front,
	// before anything is applied.
	err := receiving.ValidateRequest(o, []receiving.ReceiptLine{
		{LineID: "l1", QuantityReceiving: decimal.NewFromInt(10)},
		{LineID: "l2", QuantityReceiving: decimal.NewFromInt(6)},
	})
	assert.ErrorIs(t, err, domain.ErrReceiptExceedsRemaining)
	assert.True(t, o.Lines[0].QuantityReceived.IsZero())
}

func TestValidateRequest_UnknownLine(t *testing.T) {
	o := order(entity.POStatusPending, line("l1", 10, 0))

	err := receiving.ValidateRequest(o, []receiving.ReceiptLine{
		{LineID: "nope", QuantityReceiving: decimal.NewFromInt(1)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidateRequest_ClosedOrders(t *testing.T) {
	receiptOfOne := []receiving.ReceiptLine{{LineID: "l1", QuantityReceiving: decimal.NewFromInt(1)}}

	completed := order(entity.POStatusCompleted, line("l1", 10, 10))
	assert.ErrorIs(t, receiving.ValidateRequest(completed, receiptOfOne), domain.ErrOrderClosed)

	cancelled := order(entity.POStatusCancelled, line("l1", 10, 0))
	assert.ErrorIs(t, receiving.ValidateRequest(cancelled, receiptOfOne), domain.ErrOrderClosed)
}

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		name  string
		order *entity.PurchaseOrder
		want  int
	}{
		{"no lines", order(entity.POStatusPending), 0},
		{"nothing received", order(entity.POStatusPending, line("l1", 50, 0)), 0},
		{"half received", order(entity.POStatusPartial, line("l1", 50, 20), line("l2", 50, 30)), 50},
		{"rounds to nearest", order(entity.POStatusPartial, line("l1", 3, 1)), 33},
		{"fully received", order(entity.POStatusCompleted, line("l1", 50, 50)), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, receiving.CompletionPercentage(tt.order))
		})
	}
}

// Applying a receipt of zero changes nothing, so the percentage is idempotent
// under it (zero quantities are rejected before application).
func TestCompletionPercentage_StableUnderRejectedReceipts(t *testing.T) {
	o := order(entity.POStatusPartial, line("l1", 50, 20))
	before := receiving.CompletionPercentage(o)

	_ = receiving.ApplyReceipt(&o.Lines[0], decimal.Zero)

	assert.Equal(t, before, receiving.CompletionPercentage(o))
	assert.GreaterOrEqual(t, before, 0)
	assert.LessOrEqual(t, before, 100)
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name  string
		order *entity.PurchaseOrder
		want  string
	}{
		{"untouched", order(entity.POStatusPending, line("l1", 10, 0)), entity.POStatusPending},
		{"some received", order(entity.POStatusPending, line("l1", 10, 4), line("l2", 5, 0)), entity.POStatusPartial},
		{"all received", order(entity.POStatusPartial, line("l1", 10, 10), line("l2", 5, 5)), entity.POStatusCompleted},
		{"no lines stays pending", order(entity.POStatusPending), entity.POStatusPending},
		{"cancelled is terminal", order(entity.POStatusCancelled, line("l1", 10, 10)), entity.POStatusCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, receiving.DeriveStatus(tt.order))
		})
	}
}

func TestReceiptLifecycle_PendingToPartialToCompleted(t *testing.T) {
	o := order(entity.POStatusPending, line("l1", 50, 0), line("l2", 10, 0))

	require.NoError(t, receiving.ApplyReceipt(&o.Lines[0], decimal.NewFromInt(20)))
	o.Status = receiving.DeriveStatus(o)
	assert.Equal(t, entity.POStatusPartial, o.Status)
	assert.Equal(t, 33, receiving.CompletionPercentage(o), "20 of 60 ordered")

	require.NoError(t, receiving.ApplyReceipt(&o.Lines[0], decimal.NewFromInt(30)))
	require.NoError(t, receiving.ApplyReceipt(&o.Lines[1], decimal.NewFromInt(10)))
	o.Status = receiving.DeriveStatus(o)
	assert.Equal(t, entity.POStatusCompleted, o.Status)
	assert.Equal(t, 100, receiving.CompletionPercentage(o))
}
