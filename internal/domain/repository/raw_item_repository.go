package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
)

// RawItemRepository is the persistence port for RawItem.
type RawItemRepository interface {
	Create(ctx context.Context, item *entity.RawItem) error
	GetByID(ctx context.Context, id string) (*entity.RawItem, error)
	GetForUpdate(ctx context.Context, id string) (*entity.RawItem, error)
	Update(ctx context.Context, item *entity.RawItem) error
	UpdateStock(ctx context.Context, id string, quantity decimal.Decimal) error
	List(ctx context.Context, limit, offset int) ([]*entity.RawItem, error)
	Delete(ctx context.Context, id string) error
}
