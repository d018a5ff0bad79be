package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// POLineRequest one line of a create-order request.
type POLineRequest struct {
	ItemType        string          `json:"item_type" validate:"required,oneof=part raw"`
	ItemID          string          `json:"item_id" validate:"required"`
	QuantityOrdered decimal.Decimal `json:"quantity_ordered"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseOrderRequest body for POST /purchase-orders.
type CreatePurchaseOrderRequest struct {
	PONumber  string          `json:"po_number" validate:"required,min=1,max=100"`
	VendorID  string          `json:"vendor_id" validate:"required"`
	OrderDate time.Time       `json:"order_date"`
	Notes     string          `json:"notes"`
	Lines     []POLineRequest `json:"lines" validate:"required,min=1"`
}

// ReceiptLineRequest one line of a receipt request.
type ReceiptLineRequest struct {
	LineID            string          `json:"line_id" validate:"required"`
	QuantityReceiving decimal.Decimal `json:"quantity_receiving"`
}

// ReceiveRequest body for POST /purchase-orders/:id/receipts.
type ReceiveRequest struct {
	Lines []ReceiptLineRequest `json:"lines" validate:"required,min=1"`
}

// POLineResponse one order line with its derived remaining balance.
type POLineResponse struct {
	ID               string          `json:"id"`
	ItemType         string          `json:"item_type"`
	ItemID           string          `json:"item_id"`
	ItemNumber       string          `json:"item_number,omitempty"`
	ItemName         string          `json:"item_name,omitempty"`
	QuantityOrdered  decimal.Decimal `json:"quantity_ordered"`
	QuantityReceived decimal.Decimal `json:"quantity_received"`
	Remaining        decimal.Decimal `json:"remaining"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	LineTotal        decimal.Decimal `json:"line_total"`
}

// PurchaseOrderResponse output for an order, completion derived per request.
type PurchaseOrderResponse struct {
	ID                   string           `json:"id"`
	PONumber             string           `json:"po_number"`
	VendorID             string           `json:"vendor_id"`
	VendorName           string           `json:"vendor_name,omitempty"`
	OrderDate            time.Time        `json:"order_date"`
	Status               string           `json:"status"`
	Notes                string           `json:"notes,omitempty"`
	Lines                []POLineResponse `json:"lines"`
	Total                decimal.Decimal  `json:"total"`
	CompletionPercentage int              `json:"completion_percentage"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// PurchaseOrderListResponse paginated list of orders.
type PurchaseOrderListResponse struct {
	Items []PurchaseOrderResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
