package purchasing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sayandip-ghosh/stock-management/internal/domain/repository"
)

// ReceiptTxRunner runs a receipt (or cancellation) inside one database
// transaction. The callback receives transaction-bound repositories;
// returning an error rolls everything back.
type ReceiptTxRunner interface {
	RunReceipt(ctx context.Context, fn func(
		orders repository.PurchaseOrderRepository,
		parts repository.PartRepository,
		rawItems repository.RawItemRepository,
		movements repository.StockMovementRepository,
	) error) error
}

// DocumentLine is one resolved line of a printable purchase order.
type DocumentLine struct {
	ItemNumber       string
	ItemName         string
	QuantityOrdered  decimal.Decimal
	QuantityReceived decimal.Decimal
	UnitCost         decimal.Decimal
	LineTotal        decimal.Decimal
}

// DocumentData is everything the document generator needs, resolved up front
// so the generator stays free of repositories.
type DocumentData struct {
	PONumber             string
	VendorName           string
	OrderDate            string
	Status               string
	Notes                string
	Lines                []DocumentLine
	Total                decimal.Decimal
	CompletionPercentage int
}

// DocumentGenerator renders a purchase order as a downloadable document.
type DocumentGenerator interface {
	GeneratePurchaseOrder(data DocumentData) ([]byte, error)
}
