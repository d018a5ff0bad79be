package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sayandip-ghosh/stock-management/internal/application/dto"
	"github.com/sayandip-ghosh/stock-management/internal/domain"
	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
	"github.com/sayandip-ghosh/stock-management/internal/domain/receiving"
	"github.com/sayandip-ghosh/stock-management/internal/domain/repository"
	"github.com/sayandip-ghosh/stock-management/pkg/logger"
)

// UseCase purchase-order lifecycle: creation, listing, receipts against open
// lines, cancellation and the printable document.
type UseCase struct {
	tx          ReceiptTxRunner
	orderRepo   repository.PurchaseOrderRepository
	vendorRepo  repository.VendorRepository
	partRepo    repository.PartRepository
	rawItemRepo repository.RawItemRepository
	docGen      DocumentGenerator
	log         *logger.Logger
}

// NewUseCase builds the use case.
func NewUseCase(
	tx ReceiptTxRunner,
	orderRepo repository.PurchaseOrderRepository,
	vendorRepo repository.VendorRepository,
	partRepo repository.PartRepository,
	rawItemRepo repository.RawItemRepository,
	docGen DocumentGenerator,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		tx:          tx,
		orderRepo:   orderRepo,
		vendorRepo:  vendorRepo,
		partRepo:    partRepo,
		rawItemRepo: rawItemRepo,
		docGen:      docGen,
		log:         log,
	}
}

// Create persists a new order in pending status. The vendor and every
// referenced item must exist; ordered quantities must be positive.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	vendor, err := uc.vendorRepo.GetByID(ctx, in.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	orderDate := in.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}
	order := &entity.PurchaseOrder{
		ID:        uuid.New().String(),
		PONumber:  in.PONumber,
		VendorID:  in.VendorID,
		OrderDate: orderDate,
		Status:    entity.POStatusPending,
		Notes:     in.Notes,
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, l := range in.Lines {
		if l.QuantityOrdered.Sign() <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if err := uc.checkItemExists(ctx, l.ItemType, l.ItemID); err != nil {
			return nil, err
		}
		order.Lines = append(order.Lines, entity.PurchaseOrderLine{
			ID:              uuid.New().String(),
			PurchaseOrderID: order.ID,
			ItemType:        l.ItemType,
			ItemID:          l.ItemID,
			QuantityOrdered: l.QuantityOrdered,
			UnitCost:        l.UnitCost,
		})
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	uc.log.Info().Str("po_number", order.PONumber).Int("lines", len(order.Lines)).Msg("purchase order created")
	return uc.toResponse(ctx, order)
}

// GetByID returns an order or nil when it does not exist.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return uc.toResponse(ctx, order)
}

// List returns a page of orders, optionally filtered by status.
func (uc *UseCase) List(ctx context.Context, status string, limit, offset int) (*dto.PurchaseOrderListResponse, error) {
	orders, err := uc.orderRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		resp, err := uc.toResponse(ctx, o)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.PurchaseOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Receive applies a (possibly partial) delivery against an order. The whole
// request is validated against the locked order before any line is touched;
// a single bad line rejects the delivery without side effects. Accepted lines
// update the order, increment item stock and write RECEIPT movements, then
// the order status is re-derived from its lines.
func (uc *UseCase) Receive(ctx context.Context, orderID, userID string, in dto.ReceiveRequest) (*dto.PurchaseOrderResponse, error) {
	receipts := make([]receiving.ReceiptLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		receipts = append(receipts, receiving.ReceiptLine{
			LineID:            l.LineID,
			QuantityReceiving: l.QuantityReceiving,
		})
	}

	txID := uuid.New().String()
	var updated *entity.PurchaseOrder

	err := uc.tx.RunReceipt(ctx, func(orders repository.PurchaseOrderRepository, parts repository.PartRepository, rawItems repository.RawItemRepository, movements repository.StockMovementRepository) error {
		order, err := orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if err := receiving.ValidateRequest(order, receipts); err != nil {
			return err
		}

		lineByID := make(map[string]*entity.PurchaseOrderLine, len(order.Lines))
		for i := range order.Lines {
			lineByID[order.Lines[i].ID] = &order.Lines[i]
		}

		now := time.Now()
		for _, r := range receipts {
			line := lineByID[r.LineID]
			if err := receiving.ApplyReceipt(line, r.QuantityReceiving); err != nil {
				return err
			}
			if err := orders.UpdateLineReceived(ctx, line); err != nil {
				return err
			}
			if err := uc.incrementStock(ctx, parts, rawItems, line.ItemType, line.ItemID, r.QuantityReceiving); err != nil {
				return err
			}
			if err := movements.Create(ctx, &entity.StockMovement{
				ID:            uuid.New().String(),
				TransactionID: txID,
				ItemType:      line.ItemType,
				ItemID:        line.ItemID,
				Type:          entity.MovementTypeRECEIPT,
				Quantity:      r.QuantityReceiving,
				UnitCost:      line.UnitCost,
				ReferenceID:   order.ID,
				Date:          now,
				CreatedAt:     now,
				CreatedBy:     userID,
			}); err != nil {
				return err
			}
		}

		status := receiving.DeriveStatus(order)
		if status != order.Status {
			if err := orders.UpdateStatus(ctx, order.ID, status); err != nil {
				return err
			}
			order.Status = status
		}
		order.UpdatedAt = now
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("po_number", updated.PONumber).
		Str("status", updated.Status).
		Str("transaction_id", txID).
		Msg("receipt applied")
	return uc.toResponse(ctx, updated)
}

// Cancel marks an open order cancelled. Already received stock stays received;
// cancellation only closes the order against further receipts.
func (uc *UseCase) Cancel(ctx context.Context, orderID string) (*dto.PurchaseOrderResponse, error) {
	var updated *entity.PurchaseOrder
	err := uc.tx.RunReceipt(ctx, func(orders repository.PurchaseOrderRepository, _ repository.PartRepository, _ repository.RawItemRepository, _ repository.StockMovementRepository) error {
		order, err := orders.GetForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.IsClosed() {
			return domain.ErrOrderClosed
		}
		if err := orders.UpdateStatus(ctx, order.ID, entity.POStatusCancelled); err != nil {
			return err
		}
		order.Status = entity.POStatusCancelled
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, updated)
}

// Document renders the order as a PDF.
func (uc *UseCase) Document(ctx context.Context, orderID string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	data := DocumentData{
		PONumber:             order.PONumber,
		OrderDate:            order.OrderDate.Format("2006-01-02"),
		Status:               order.Status,
		Notes:                order.Notes,
		Total:                order.Total(),
		CompletionPercentage: receiving.CompletionPercentage(order),
	}
	if vendor, err := uc.vendorRepo.GetByID(ctx, order.VendorID); err != nil {
		return nil, err
	} else if vendor != nil {
		data.VendorName = vendor.Name
	}
	for i := range order.Lines {
		line := &order.Lines[i]
		number, name, err := uc.resolveItem(ctx, line.ItemType, line.ItemID)
		if err != nil {
			return nil, err
		}
		data.Lines = append(data.Lines, DocumentLine{
			ItemNumber:       number,
			ItemName:         name,
			QuantityOrdered:  line.QuantityOrdered,
			QuantityReceived: line.QuantityReceived,
			UnitCost:         line.UnitCost,
			LineTotal:        line.LineTotal(),
		})
	}
	return uc.docGen.GeneratePurchaseOrder(data)
}

func (uc *UseCase) checkItemExists(ctx context.Context, itemType, itemID string) error {
	switch itemType {
	case entity.POItemTypePart:
		part, err := uc.partRepo.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}
	case entity.POItemTypeRaw:
		item, err := uc.rawItemRepo.GetByID(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *UseCase) incrementStock(ctx context.Context, parts repository.PartRepository, rawItems repository.RawItemRepository, itemType, itemID string, qty decimal.Decimal) error {
	switch itemType {
	case entity.POItemTypePart:
		part, err := parts.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}
		return parts.UpdateStock(ctx, itemID, part.QuantityInStock.Add(qty))
	case entity.POItemTypeRaw:
		item, err := rawItems.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		return rawItems.UpdateStock(ctx, itemID, item.QuantityInStock.Add(qty))
	default:
		return domain.ErrInvalidInput
	}
}

func (uc *UseCase) resolveItem(ctx context.Context, itemType, itemID string) (number, name string, err error) {
	switch itemType {
	case entity.POItemTypePart:
		part, err := uc.partRepo.GetByID(ctx, itemID)
		if err != nil || part == nil {
			return "", "", err
		}
		return part.PartNumber, part.Name, nil
	case entity.POItemTypeRaw:
		item, err := uc.rawItemRepo.GetByID(ctx, itemID)
		if err != nil || item == nil {
			return "", "", err
		}
		return item.ItemNumber, item.Name, nil
	}
	return "", "", nil
}

func (uc *UseCase) toResponse(ctx context.Context, order *entity.PurchaseOrder) (*dto.PurchaseOrderResponse, error) {
	resp := &dto.PurchaseOrderResponse{
		ID:                   order.ID,
		PONumber:             order.PONumber,
		VendorID:             order.VendorID,
		OrderDate:            order.OrderDate,
		Status:               order.Status,
		Notes:                order.Notes,
		Total:                order.Total(),
		CompletionPercentage: receiving.CompletionPercentage(order),
		CreatedAt:            order.CreatedAt,
		UpdatedAt:            order.UpdatedAt,
	}
	if vendor, err := uc.vendorRepo.GetByID(ctx, order.VendorID); err != nil {
		return nil, err
	} else if vendor != nil {
		resp.VendorName = vendor.Name
	}
	for i := range order.Lines {
		line := &order.Lines[i]
		number, name, err := uc.resolveItem(ctx, line.ItemType, line.ItemID)
		if err != nil {
			return nil, err
		}
		resp.Lines = append(resp.Lines, dto.POLineResponse{
			ID:               line.ID,
			ItemType:         line.ItemType,
			ItemID:           line.ItemID,
			ItemNumber:       number,
			ItemName:         name,
			QuantityOrdered:  line.QuantityOrdered,
			QuantityReceived: line.QuantityReceived,
			Remaining:        receiving.Remaining(line),
			UnitCost:         line.UnitCost,
			LineTotal:        line.LineTotal(),
		})
	}
	return resp, nil
}
