package repository

import (
	"context"

	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
)

// PurchaseOrderRepository is the persistence port for PurchaseOrder.
// Get operations return orders with Lines populated.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	// GetForUpdate locks the order header row so concurrent receipts against
	// the same order serialize.
	GetForUpdate(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateLineReceived(ctx context.Context, line *entity.PurchaseOrderLine) error
	List(ctx context.Context, status string, limit, offset int) ([]*entity.PurchaseOrder, error)
}
