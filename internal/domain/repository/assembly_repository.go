package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
)

// AssemblyRepository is the persistence port for Assembly and its BOM lines.
// Get operations return the assembly with BOMItems populated.
type AssemblyRepository interface {
	Create(ctx context.Context, asm *entity.Assembly) error
	GetByID(ctx context.Context, id string) (*entity.Assembly, error)
	// Update replaces header fields and the whole BOM line set.
	Update(ctx context.Context, asm *entity.Assembly) error
	UpdateReadyBuilt(ctx context.Context, id string, readyBuilt decimal.Decimal) error
	List(ctx context.Context, limit, offset int) ([]*entity.Assembly, error)
	// ListByIDs loads a batch selection with BOMs in one round trip.
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Assembly, error)
	Delete(ctx context.Context, id string) error
}
