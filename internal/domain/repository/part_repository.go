package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
)

// PartRepository is the persistence port for Part.
type PartRepository interface {
	Create(ctx context.Context, part *entity.Part) error
	GetByID(ctx context.Context, id string) (*entity.Part, error)
	GetByPartNumber(ctx context.Context, partNumber string) (*entity.Part, error)
	// GetForUpdate locks the part row (SELECT FOR UPDATE) for stock mutations.
	GetForUpdate(ctx context.Context, id string) (*entity.Part, error)
	Update(ctx context.Context, part *entity.Part) error
	UpdateStock(ctx context.Context, id string, quantity decimal.Decimal) error
	List(ctx context.Context, limit, offset int) ([]*entity.Part, error)
	// ListAll returns the full snapshot for buildability calculations.
	ListAll(ctx context.Context) ([]*entity.Part, error)
	Delete(ctx context.Context, id string) error
}
