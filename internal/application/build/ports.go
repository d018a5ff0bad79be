package build

import (
	"context"

	"github.com/sayandip-ghosh/stock-management/internal/domain/repository"
)

// TxRunner runs a build inside one database transaction. The callback receives
// transaction-bound repositories; returning an error rolls everything back.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		parts repository.PartRepository,
		assemblies repository.AssemblyRepository,
		movements repository.StockMovementRepository,
	) error) error
}
