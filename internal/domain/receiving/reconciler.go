// Package receiving holds the purchase-order receipt reconciliation rules:
// remaining balances, receipt validation, cumulative application, completion
// percentage and status derivation. Pure functions over entities; persistence
// and stock side effects live in the purchasing use cases.
package receiving

import (
	"github.com/shopspring/decimal"

	"github.com/sayandip-ghosh/stock-management/internal/domain"
	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
)

// ReceiptLine is one line of a receipt request: how much is being received
// now against a purchase-order line.
type ReceiptLine struct {
	LineID            string
	QuantityReceiving decimal.Decimal
}

// Remaining returns the still-open balance of a line.
func Remaining(line *entity.PurchaseOrderLine) decimal.Decimal {
	return line.QuantityOrdered.Sub(line.QuantityReceived)
}

// ValidateReceipt rejects a receipt quantity that is not positive or exceeds
// the line's remaining balance.
func ValidateReceipt(line *entity.PurchaseOrderLine, qty decimal.Decimal) error {
	if qty.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if qty.GreaterThan(Remaining(line)) {
		return domain.ErrReceiptExceedsRemaining
	}
	return nil
}

// ApplyReceipt adds qty to the line's cumulative received quantity after
// validating it. Given prior validation the result never exceeds the ordered
// quantity.
func ApplyReceipt(line *entity.PurchaseOrderLine, qty decimal.Decimal) error {
	if err := ValidateReceipt(line, qty); err != nil {
		return err
	}
	line.QuantityReceived = line.QuantityReceived.Add(qty)
	return nil
}

// ValidateRequest checks a whole receipt request against an order before any
// line is applied: the order must be open, every referenced line must exist,
// and every quantity must pass ValidateReceipt. All-or-nothing by design.
func ValidateRequest(order *entity.PurchaseOrder, receipts []ReceiptLine) error {
	if order.IsClosed() {
		return domain.ErrOrderClosed
	}
	if len(receipts) == 0 {
		return domain.ErrInvalidInput
	}
	lineByID := make(map[string]*entity.PurchaseOrderLine, len(order.Lines))
	for i := range order.Lines {
		lineByID[order.Lines[i].ID] = &order.Lines[i]
	}
	for _, r := range receipts {
		line, ok := lineByID[r.LineID]
		if !ok {
			return domain.ErrNotFound
		}
		if err := ValidateReceipt(line, r.QuantityReceiving); err != nil {
			return err
		}
	}
	return nil
}

var hundred = decimal.NewFromInt(100)

// CompletionPercentage returns the received fraction of the whole order as
// an integer 0..100, rounded to the nearest whole percent. An order without
// lines is 0.
func CompletionPercentage(order *entity.PurchaseOrder) int {
	totalOrdered := decimal.Zero
	totalReceived := decimal.Zero
	for i := range order.Lines {
		totalOrdered = totalOrdered.Add(order.Lines[i].QuantityOrdered)
		totalReceived = totalReceived.Add(order.Lines[i].QuantityReceived)
	}
	if totalOrdered.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return int(totalReceived.Div(totalOrdered).Mul(hundred).Round(0).IntPart())
}

// DeriveStatus computes the order status from its lines: completed when every
// remaining balance is zero, partial when some receipt has occurred, pending
// otherwise. Cancellation is explicit and terminal, never derived.
func DeriveStatus(order *entity.PurchaseOrder) string {
	if order.Status == entity.POStatusCancelled {
		return entity.POStatusCancelled
	}
	if len(order.Lines) == 0 {
		return entity.POStatusPending
	}
	allComplete := true
	anyReceived := false
	for i := range order.Lines {
		if Remaining(&order.Lines[i]).GreaterThan(decimal.Zero) {
			allComplete = false
		}
		if order.Lines[i].QuantityReceived.GreaterThan(decimal.Zero) {
			anyReceived = true
		}
	}
	switch {
	case allComplete:
		return entity.POStatusCompleted
	case anyReceived:
		return entity.POStatusPartial
	default:
		return entity.POStatusPending
	}
}
