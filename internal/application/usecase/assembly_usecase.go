package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sayandip-ghosh/stock-management/internal/application/dto"
	"github.com/sayandip-ghosh/stock-management/internal/domain"
	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
	"github.com/sayandip-ghosh/stock-management/internal/domain/repository"
)

// AssemblyUseCase CRUD operations for assemblies and their bills of materials.
type AssemblyUseCase struct {
	assemblyRepo repository.AssemblyRepository
	partRepo     repository.PartRepository
}

// NewAssemblyUseCase builds the use case.
func NewAssemblyUseCase(assemblyRepo repository.AssemblyRepository, partRepo repository.PartRepository) *AssemblyUseCase {
	return &AssemblyUseCase{assemblyRepo: assemblyRepo, partRepo: partRepo}
}

// Create persists a new assembly together with its BOM lines. Every referenced
// part must exist.
func (uc *AssemblyUseCase) Create(ctx context.Context, in dto.CreateAssemblyRequest) (*dto.AssemblyResponse, error) {
	now := time.Now()
	assembly := &entity.Assembly{
		ID:             uuid.New().String(),
		AssemblyNumber: in.AssemblyNumber,
		Name:           in.Name,
		Description:    in.Description,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	bomItems, err := uc.buildBOMItems(ctx, assembly.ID, in.BOMItems)
	if err != nil {
		return nil, err
	}
	assembly.BOMItems = bomItems
	if err := uc.assemblyRepo.Create(ctx, assembly); err != nil {
		return nil, err
	}
	return uc.toAssemblyResponse(ctx, assembly)
}

// GetByID returns an assembly or nil when it does not exist.
func (uc *AssemblyUseCase) GetByID(ctx context.Context, id string) (*dto.AssemblyResponse, error) {
	assembly, err := uc.assemblyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assembly == nil {
		return nil, nil
	}
	return uc.toAssemblyResponse(ctx, assembly)
}

// Update applies the non-nil fields of the request. A non-nil BOMItems slice
// replaces the existing BOM line set as a whole.
func (uc *AssemblyUseCase) Update(ctx context.Context, id string, in dto.UpdateAssemblyRequest) (*dto.AssemblyResponse, error) {
	assembly, err := uc.assemblyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assembly == nil {
		return nil, nil
	}
	if in.Name != nil {
		assembly.Name = *in.Name
	}
	if in.Description != nil {
		assembly.Description = *in.Description
	}
	if in.IsActive != nil {
		assembly.IsActive = *in.IsActive
	}
	if in.BOMItems != nil {
		bomItems, err := uc.buildBOMItems(ctx, assembly.ID, in.BOMItems)
		if err != nil {
			return nil, err
		}
		assembly.BOMItems = bomItems
	}
	assembly.UpdatedAt = time.Now()
	if err := uc.assemblyRepo.Update(ctx, assembly); err != nil {
		return nil, err
	}
	return uc.toAssemblyResponse(ctx, assembly)
}

// List returns a page of assemblies.
func (uc *AssemblyUseCase) List(ctx context.Context, limit, offset int) (*dto.AssemblyListResponse, error) {
	assemblies, err := uc.assemblyRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssemblyResponse, 0, len(assemblies))
	for _, a := range assemblies {
		resp, err := uc.toAssemblyResponse(ctx, a)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.AssemblyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete removes an assembly and its BOM lines.
func (uc *AssemblyUseCase) Delete(ctx context.Context, id string) error {
	return uc.assemblyRepo.Delete(ctx, id)
}

func (uc *AssemblyUseCase) buildBOMItems(ctx context.Context, assemblyID string, in []dto.BOMItemRequest) ([]entity.BOMItem, error) {
	items := make([]entity.BOMItem, 0, len(in))
	for _, line := range in {
		part, err := uc.partRepo.GetByID(ctx, line.PartID)
		if err != nil {
			return nil, err
		}
		if part == nil {
			return nil, domain.ErrNotFound
		}
		if line.QuantityRequired.Sign() <= 0 {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.BOMItem{
			ID:               uuid.New().String(),
			AssemblyID:       assemblyID,
			PartID:           line.PartID,
			QuantityRequired: line.QuantityRequired,
			Notes:            line.Notes,
		})
	}
	return items, nil
}

func (uc *AssemblyUseCase) toAssemblyResponse(ctx context.Context, a *entity.Assembly) (*dto.AssemblyResponse, error) {
	bom := make([]dto.BOMItemResponse, 0, len(a.BOMItems))
	for _, item := range a.BOMItems {
		line := dto.BOMItemResponse{
			ID:               item.ID,
			PartID:           item.PartID,
			QuantityRequired: item.QuantityRequired,
			Notes:            item.Notes,
		}
		part, err := uc.partRepo.GetByID(ctx, item.PartID)
		if err != nil {
			return nil, err
		}
		if part != nil {
			line.PartNumber = part.PartNumber
			line.PartName = part.Name
		}
		bom = append(bom, line)
	}
	return &dto.AssemblyResponse{
		ID:             a.ID,
		AssemblyNumber: a.AssemblyNumber,
		Name:           a.Name,
		Description:    a.Description,
		BOMItems:       bom,
		ReadyBuilt:     a.ReadyBuilt,
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}, nil
}
