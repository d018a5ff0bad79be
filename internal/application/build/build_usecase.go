package build

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sayandip-ghosh/stock-management/internal/application/dto"
	"github.com/sayandip-ghosh/stock-management/internal/domain"
	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
	"github.com/sayandip-ghosh/stock-management/internal/domain/repository"
	"github.com/sayandip-ghosh/stock-management/pkg/logger"
)

// BuildUseCase commits a batch build: consumes part stock, increments each
// assembly's ready-built count and writes BUILD movements, all inside one
// transaction with the part rows locked.
type BuildUseCase struct {
	tx  TxRunner
	log *logger.Logger
}

// NewBuildUseCase builds the use case.
func NewBuildUseCase(tx TxRunner, log *logger.Logger) *BuildUseCase {
	return &BuildUseCase{tx: tx, log: log}
}

// Execute builds the requested quantities or nothing at all. Stock is checked
// against locked rows inside the transaction, so a concurrent receipt or
// build cannot invalidate the decision between check and decrement.
func (uc *BuildUseCase) Execute(ctx context.Context, userID string, in dto.ExecuteBuildRequest) (*dto.ExecuteBuildResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	txID := uuid.New().String()
	built := make([]dto.BatchBuildItem, 0, len(in.Items))

	err := uc.tx.Run(ctx, func(parts repository.PartRepository, assemblies repository.AssemblyRepository, movements repository.StockMovementRepository) error {
		ids := make([]string, 0, len(in.Items))
		qtyByAssembly := make(map[string]int64, len(in.Items))
		for _, item := range in.Items {
			if _, dup := qtyByAssembly[item.AssemblyID]; dup {
				return domain.ErrInvalidInput
			}
			ids = append(ids, item.AssemblyID)
			qtyByAssembly[item.AssemblyID] = item.Quantity
		}
		loaded, err := assemblies.ListByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(loaded) != len(ids) {
			return domain.ErrNotFound
		}

		// Aggregate total demand per part across the whole batch.
		needByPart := map[string]decimal.Decimal{}
		for _, asm := range loaded {
			if len(asm.BOMItems) == 0 {
				return domain.ErrInvalidInput
			}
			qty := decimal.NewFromInt(qtyByAssembly[asm.ID])
			for _, line := range asm.BOMItems {
				if line.QuantityRequired.Sign() <= 0 {
					return domain.ErrInvalidInput
				}
				needByPart[line.PartID] = needByPart[line.PartID].Add(line.QuantityRequired.Mul(qty))
			}
		}

		// Lock part rows in a stable order so concurrent builds cannot
		// deadlock against each other.
		partIDs := make([]string, 0, len(needByPart))
		for id := range needByPart {
			partIDs = append(partIDs, id)
		}
		sort.Strings(partIDs)

		now := time.Now()
		for _, partID := range partIDs {
			part, err := parts.GetForUpdate(ctx, partID)
			if err != nil {
				return err
			}
			if part == nil {
				return domain.ErrNotFound
			}
			need := needByPart[partID]
			if part.QuantityInStock.LessThan(need) {
				return domain.ErrInsufficientStock
			}
			if err := parts.UpdateStock(ctx, partID, part.QuantityInStock.Sub(need)); err != nil {
				return err
			}
			if err := movements.Create(ctx, &entity.StockMovement{
				ID:            uuid.New().String(),
				TransactionID: txID,
				ItemType:      "part",
				ItemID:        partID,
				Type:          entity.MovementTypeBUILD,
				Quantity:      need.Neg(),
				UnitCost:      part.CostPerUnit,
				Date:          now,
				CreatedAt:     now,
				CreatedBy:     userID,
			}); err != nil {
				return err
			}
		}

		for _, asm := range loaded {
			qty := decimal.NewFromInt(qtyByAssembly[asm.ID])
			if err := assemblies.UpdateReadyBuilt(ctx, asm.ID, asm.ReadyBuilt.Add(qty)); err != nil {
				return err
			}
			built = append(built, dto.BatchBuildItem{AssemblyID: asm.ID, Quantity: qtyByAssembly[asm.ID]})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("transaction_id", txID).
		Int("assemblies", len(built)).
		Msg("batch build committed")
	return &dto.ExecuteBuildResponse{TransactionID: txID, Built: built}, nil
}
