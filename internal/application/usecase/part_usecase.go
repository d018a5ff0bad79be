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

// PartUseCase CRUD operations for parts. Stock is only changed through
// stock operations (receipts, builds, scrap, adjustments), never via Update.
type PartUseCase struct {
	partRepo repository.PartRepository
}

// NewPartUseCase builds the use case.
func NewPartUseCase(partRepo repository.PartRepository) *PartUseCase {
	return &PartUseCase{partRepo: partRepo}
}

// Create persists a new part. Initial stock may be zero.
func (uc *PartUseCase) Create(ctx context.Context, in dto.CreatePartRequest) (*dto.PartResponse, error) {
	if in.InitialStock.LessThan(decimal.Zero) || in.MinStockLevel.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	part := &entity.Part{
		ID:              uuid.New().String(),
		PartNumber:      in.PartNumber,
		Name:            in.Name,
		Description:     in.Description,
		QuantityInStock: in.InitialStock,
		MinStockLevel:   in.MinStockLevel,
		CostPerUnit:     in.CostPerUnit,
		Unit:            in.Unit,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.partRepo.Create(ctx, part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// GetByID returns a part or nil when it does not exist.
func (uc *PartUseCase) GetByID(ctx context.Context, id string) (*dto.PartResponse, error) {
	part, err := uc.partRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	return toPartResponse(part), nil
}

// Update applies the non-nil fields of the request.
func (uc *PartUseCase) Update(ctx context.Context, id string, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := uc.partRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	if in.Name != nil {
		part.Name = *in.Name
	}
	if in.Description != nil {
		part.Description = *in.Description
	}
	if in.MinStockLevel != nil {
		if in.MinStockLevel.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		part.MinStockLevel = *in.MinStockLevel
	}
	if in.CostPerUnit != nil {
		part.CostPerUnit = *in.CostPerUnit
	}
	if in.Unit != nil {
		part.Unit = *in.Unit
	}
	part.UpdatedAt = time.Now()
	if err := uc.partRepo.Update(ctx, part); err != nil {
		return nil, err
	}
	return toPartResponse(part), nil
}

// List returns a page of parts.
func (uc *PartUseCase) List(ctx context.Context, limit, offset int) (*dto.PartListResponse, error) {
	parts, err := uc.partRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartResponse, 0, len(parts))
	for _, p := range parts {
		items = append(items, *toPartResponse(p))
	}
	return &dto.PartListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete removes a part.
func (uc *PartUseCase) Delete(ctx context.Context, id string) error {
	return uc.partRepo.Delete(ctx, id)
}

func toPartResponse(p *entity.Part) *dto.PartResponse {
	return &dto.PartResponse{
		ID:              p.ID,
		PartNumber:      p.PartNumber,
		Name:            p.Name,
		Description:     p.Description,
		QuantityInStock: p.QuantityInStock,
		MinStockLevel:   p.MinStockLevel,
		CostPerUnit:     p.CostPerUnit,
		Unit:            p.Unit,
		BelowMinimum:    p.BelowMinimum(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
