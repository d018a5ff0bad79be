package repository

import (
	"context"

	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
)

// VendorRepository is the persistence port for Vendor.
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id string) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	List(ctx context.Context, limit, offset int) ([]*entity.Vendor, error)
	Delete(ctx context.Context, id string) error
}
