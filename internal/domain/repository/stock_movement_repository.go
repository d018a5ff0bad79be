package repository

import (
	"context"

	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
)

// StockMovementRepository is the persistence port for the stock ledger.
type StockMovementRepository interface {
	Create(ctx context.Context, mov *entity.StockMovement) error
	List(ctx context.Context, itemID string, limit, offset int) ([]*entity.StockMovement, error)
}
