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

// RawItemUseCase CRUD operations for raw material items.
type RawItemUseCase struct {
	rawRepo repository.RawItemRepository
}

// NewRawItemUseCase builds the use case.
func NewRawItemUseCase(rawRepo repository.RawItemRepository) *RawItemUseCase {
	return &RawItemUseCase{rawRepo: rawRepo}
}

// Create persists a new raw item.
func (uc *RawItemUseCase) Create(ctx context.Context, in dto.CreateRawItemRequest) (*dto.RawItemResponse, error) {
	if in.InitialStock.LessThan(decimal.Zero) || in.MinStockLevel.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.RawItem{
		ID:              uuid.New().String(),
		ItemNumber:      in.ItemNumber,
		Name:            in.Name,
		Material:        in.Material,
		Dimensions:      in.Dimensions,
		QuantityInStock: in.InitialStock,
		MinStockLevel:   in.MinStockLevel,
		CostPerUnit:     in.CostPerUnit,
		Unit:            in.Unit,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.rawRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toRawItemResponse(item), nil
}

// GetByID returns a raw item or nil when it does not exist.
func (uc *RawItemUseCase) GetByID(ctx context.Context, id string) (*dto.RawItemResponse, error) {
	item, err := uc.rawRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toRawItemResponse(item), nil
}

// Update applies the non-nil fields of the request.
func (uc *RawItemUseCase) Update(ctx context.Context, id string, in dto.UpdateRawItemRequest) (*dto.RawItemResponse, error) {
	item, err := uc.rawRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Material != nil {
		item.Material = *in.Material
	}
	if in.Dimensions != nil {
		item.Dimensions = *in.Dimensions
	}
	if in.MinStockLevel != nil {
		if in.MinStockLevel.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		item.MinStockLevel = *in.MinStockLevel
	}
	if in.CostPerUnit != nil {
		item.CostPerUnit = *in.CostPerUnit
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	item.UpdatedAt = time.Now()
	if err := uc.rawRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toRawItemResponse(item), nil
}

// List returns a page of raw items.
func (uc *RawItemUseCase) List(ctx context.Context, limit, offset int) (*dto.RawItemListResponse, error) {
	items, err := uc.rawRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RawItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toRawItemResponse(it))
	}
	return &dto.RawItemListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete removes a raw item.
func (uc *RawItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.rawRepo.Delete(ctx, id)
}

func toRawItemResponse(i *entity.RawItem) *dto.RawItemResponse {
	return &dto.RawItemResponse{
		ID:              i.ID,
		ItemNumber:      i.ItemNumber,
		Name:            i.Name,
		Material:        i.Material,
		Dimensions:      i.Dimensions,
		QuantityInStock: i.QuantityInStock,
		MinStockLevel:   i.MinStockLevel,
		CostPerUnit:     i.CostPerUnit,
		Unit:            i.Unit,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}
