package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sayandip-ghosh/stock-management/internal/application/dto"
	"github.com/sayandip-ghosh/stock-management/internal/domain"
	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
	"github.com/sayandip-ghosh/stock-management/internal/domain/repository"
)

// StockTxRunner runs a stock mutation inside one database transaction. The
// callback receives transaction-bound repositories; returning an error rolls
// everything back.
type StockTxRunner interface {
	RunStock(ctx context.Context, fn func(
		parts repository.PartRepository,
		rawItems repository.RawItemRepository,
		movements repository.StockMovementRepository,
		scraps repository.ScrapRepository,
	) error) error
}

// StockUseCase manual adjustments, scrap write-offs and the movement ledger.
type StockUseCase struct {
	tx           StockTxRunner
	movementRepo repository.StockMovementRepository
	scrapRepo    repository.ScrapRepository
}

// NewStockUseCase builds the use case.
func NewStockUseCase(tx StockTxRunner, movementRepo repository.StockMovementRepository, scrapRepo repository.ScrapRepository) *StockUseCase {
	return &StockUseCase{tx: tx, movementRepo: movementRepo, scrapRepo: scrapRepo}
}

// AdjustPartStock applies a signed manual stock delta to a part and records an
// ADJUSTMENT movement. The resulting stock may not go below zero.
func (uc *StockUseCase) AdjustPartStock(ctx context.Context, partID, userID string, in dto.AdjustStockRequest) (*dto.PartResponse, error) {
	if in.Quantity.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	var resp *dto.PartResponse
	err := uc.tx.RunStock(ctx, func(parts repository.PartRepository, _ repository.RawItemRepository, movements repository.StockMovementRepository, _ repository.ScrapRepository) error {
		part, err := parts.GetForUpdate(ctx, partID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}
		newStock := part.QuantityInStock.Add(in.Quantity)
		if newStock.Sign() < 0 {
			return domain.ErrInsufficientStock
		}
		if err := parts.UpdateStock(ctx, partID, newStock); err != nil {
			return err
		}
		now := time.Now()
		if err := movements.Create(ctx, &entity.StockMovement{
			ID:            uuid.New().String(),
			TransactionID: uuid.New().String(),
			ItemType:      "part",
			ItemID:        partID,
			Type:          entity.MovementTypeADJUSTMENT,
			Quantity:      in.Quantity,
			UnitCost:      part.CostPerUnit,
			Date:          now,
			CreatedAt:     now,
			CreatedBy:     userID,
		}); err != nil {
			return err
		}
		part.QuantityInStock = newStock
		part.UpdatedAt = now
		resp = toPartResponse(part)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Scrap writes stock off as unusable: decrements the item's stock and records
// both a scrap record and a SCRAP movement in one transaction.
func (uc *StockUseCase) Scrap(ctx context.Context, userID string, in dto.CreateScrapRequest) (*dto.ScrapResponse, error) {
	if in.Quantity.Sign() <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var resp *dto.ScrapResponse
	err := uc.tx.RunStock(ctx, func(parts repository.PartRepository, rawItems repository.RawItemRepository, movements repository.StockMovementRepository, scraps repository.ScrapRepository) error {
		var unitCost decimal.Decimal
		switch in.ItemType {
		case "part":
			part, err := parts.GetForUpdate(ctx, in.ItemID)
			if err != nil {
				return err
			}
			if part == nil {
				return domain.ErrNotFound
			}
			newStock := part.QuantityInStock.Sub(in.Quantity)
			if newStock.Sign() < 0 {
				return domain.ErrInsufficientStock
			}
			if err := parts.UpdateStock(ctx, in.ItemID, newStock); err != nil {
				return err
			}
			unitCost = part.CostPerUnit
		case "raw":
			item, err := rawItems.GetForUpdate(ctx, in.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			newStock := item.QuantityInStock.Sub(in.Quantity)
			if newStock.Sign() < 0 {
				return domain.ErrInsufficientStock
			}
			if err := rawItems.UpdateStock(ctx, in.ItemID, newStock); err != nil {
				return err
			}
			unitCost = item.CostPerUnit
		default:
			return domain.ErrInvalidInput
		}

		now := time.Now()
		rec := &entity.ScrapRecord{
			ID:         uuid.New().String(),
			ItemType:   in.ItemType,
			ItemID:     in.ItemID,
			Quantity:   in.Quantity,
			Reason:     in.Reason,
			ScrappedBy: userID,
			CreatedAt:  now,
		}
		if err := scraps.Create(ctx, rec); err != nil {
			return err
		}
		if err := movements.Create(ctx, &entity.StockMovement{
			ID:            uuid.New().String(),
			TransactionID: uuid.New().String(),
			ItemType:      in.ItemType,
			ItemID:        in.ItemID,
			Type:          entity.MovementTypeSCRAP,
			Quantity:      in.Quantity.Neg(),
			UnitCost:      unitCost,
			ReferenceID:   rec.ID,
			Date:          now,
			CreatedAt:     now,
			CreatedBy:     userID,
		}); err != nil {
			return err
		}
		resp = toScrapResponse(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListScrap returns a page of scrap records.
func (uc *StockUseCase) ListScrap(ctx context.Context, limit, offset int) (*dto.ScrapListResponse, error) {
	records, err := uc.scrapRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ScrapResponse, 0, len(records))
	for _, r := range records {
		items = append(items, *toScrapResponse(r))
	}
	return &dto.ScrapListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListMovements returns a page of the stock ledger, optionally filtered by item.
func (uc *StockUseCase) ListMovements(ctx context.Context, itemID string, limit, offset int) (*dto.StockMovementListResponse, error) {
	movements, err := uc.movementRepo.List(ctx, itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.StockMovementResponse{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			ItemType:      m.ItemType,
			ItemID:        m.ItemID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			UnitCost:      m.UnitCost,
			ReferenceID:   m.ReferenceID,
			Date:          m.Date,
			CreatedBy:     m.CreatedBy,
		})
	}
	return &dto.StockMovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toScrapResponse(r *entity.ScrapRecord) *dto.ScrapResponse {
	return &dto.ScrapResponse{
		ID:         r.ID,
		ItemType:   r.ItemType,
		ItemID:     r.ItemID,
		Quantity:   r.Quantity,
		Reason:     r.Reason,
		ScrappedBy: r.ScrappedBy,
		CreatedAt:  r.CreatedAt,
	}
}
