package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sayandip-ghosh/stock-management/internal/domain"
	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
	"github.com/sayandip-ghosh/stock-management/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

const vendorColumns = `id, name, contact, email, phone, address, created_at, updated_at`

// VendorRepo implements the VendorRepository port on PostgreSQL (usable with pool or tx).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository builds the persistence adapter for vendors. Pass pool or tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// Create persists a new vendor.
func (r *VendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		vendor.ID, vendor.Name, vendor.Contact, vendor.Email, vendor.Phone, vendor.Address,
		vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID fetches a vendor by id, nil when absent.
func (r *VendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	var v entity.Vendor
	err := r.q.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id).Scan(
		&v.ID, &v.Name, &v.Contact, &v.Email, &v.Phone, &v.Address, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// Update updates a vendor.
func (r *VendorRepo) Update(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		UPDATE vendors SET name = $2, contact = $3, email = $4, phone = $5, address = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		vendor.ID, vendor.Name, vendor.Contact, vendor.Email, vendor.Phone, vendor.Address, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	return nil
}

// List returns a page of vendors.
func (r *VendorRepo) List(ctx context.Context, limit, offset int) ([]*entity.Vendor, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+vendorColumns+` FROM vendors ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var vendors []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Contact, &v.Email, &v.Phone, &v.Address, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		vendors = append(vendors, &v)
	}
	return vendors, rows.Err()
}

// Delete removes a vendor.
func (r *VendorRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	return nil
}
