package repository

import (
	"context"

	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
)

// ScrapRepository is the persistence port for scrap records.
type ScrapRepository interface {
	Create(ctx context.Context, rec *entity.ScrapRecord) error
	List(ctx context.Context, limit, offset int) ([]*entity.ScrapRecord, error)
}
