package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sayandip-ghosh/stock-management/internal/application/dto"
	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
	"github.com/sayandip-ghosh/stock-management/internal/domain/repository"
)

// VendorUseCase CRUD operations for vendors.
type VendorUseCase struct {
	vendorRepo repository.VendorRepository
}

// NewVendorUseCase builds the use case.
func NewVendorUseCase(vendorRepo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{vendorRepo: vendorRepo}
}

// Create persists a new vendor.
func (uc *VendorUseCase) Create(ctx context.Context, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	now := time.Now()
	vendor := &entity.Vendor{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Contact:   in.Contact,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// GetByID returns a vendor or nil when it does not exist.
func (uc *VendorUseCase) GetByID(ctx context.Context, id string) (*dto.VendorResponse, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, nil
	}
	return toVendorResponse(vendor), nil
}

// Update applies the non-nil fields of the request.
func (uc *VendorUseCase) Update(ctx context.Context, id string, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	vendor, err := uc.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, nil
	}
	if in.Name != nil {
		vendor.Name = *in.Name
	}
	if in.Contact != nil {
		vendor.Contact = *in.Contact
	}
	if in.Email != nil {
		vendor.Email = *in.Email
	}
	if in.Phone != nil {
		vendor.Phone = *in.Phone
	}
	if in.Address != nil {
		vendor.Address = *in.Address
	}
	vendor.UpdatedAt = time.Now()
	if err := uc.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// List returns a page of vendors.
func (uc *VendorUseCase) List(ctx context.Context, limit, offset int) (*dto.VendorListResponse, error) {
	vendors, err := uc.vendorRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		items = append(items, *toVendorResponse(v))
	}
	return &dto.VendorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete removes a vendor.
func (uc *VendorUseCase) Delete(ctx context.Context, id string) error {
	return uc.vendorRepo.Delete(ctx, id)
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:        v.ID,
		Name:      v.Name,
		Contact:   v.Contact,
		Email:     v.Email,
		Phone:     v.Phone,
		Address:   v.Address,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
