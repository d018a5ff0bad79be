package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sayandip-ghosh/stock-management/internal/domain"
	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
	"github.com/sayandip-ghosh/stock-management/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `id, part_number, name, description, quantity_in_stock, min_stock_level, cost_per_unit, unit, created_at, updated_at`

// PartRepo implements the PartRepository port on PostgreSQL (usable with pool or tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository builds the persistence adapter for parts. Pass pool or tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// Create persists a new part.
func (r *PartRepo) Create(ctx context.Context, part *entity.Part) error {
	query := `
		INSERT INTO parts (` + partColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		part.ID, part.PartNumber, part.Name, part.Description,
		part.QuantityInStock, part.MinStockLevel, part.CostPerUnit, part.Unit,
		part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID fetches a part by id, nil when absent.
func (r *PartRepo) GetByID(ctx context.Context, id string) (*entity.Part, error) {
	return r.get(ctx, `SELECT `+partColumns+` FROM parts WHERE id = $1`, id)
}

// GetByPartNumber fetches a part by its unique part number.
func (r *PartRepo) GetByPartNumber(ctx context.Context, partNumber string) (*entity.Part, error) {
	return r.get(ctx, `SELECT `+partColumns+` FROM parts WHERE part_number = $1`, partNumber)
}

// GetForUpdate locks the part row for the rest of the transaction.
func (r *PartRepo) GetForUpdate(ctx context.Context, id string) (*entity.Part, error) {
	return r.get(ctx, `SELECT `+partColumns+` FROM parts WHERE id = $1 FOR UPDATE`, id)
}

func (r *PartRepo) get(ctx context.Context, query string, arg any) (*entity.Part, error) {
	var p entity.Part
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.PartNumber, &p.Name, &p.Description,
		&p.QuantityInStock, &p.MinStockLevel, &p.CostPerUnit, &p.Unit,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return &p, nil
}

// Update updates the part's descriptive fields. Stock is excluded; it moves
// only through UpdateStock.
func (r *PartRepo) Update(ctx context.Context, part *entity.Part) error {
	query := `
		UPDATE parts SET name = $2, description = $3, min_stock_level = $4, cost_per_unit = $5, unit = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		part.ID, part.Name, part.Description, part.MinStockLevel, part.CostPerUnit, part.Unit, part.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// UpdateStock sets the part's stock to the given quantity.
func (r *PartRepo) UpdateStock(ctx context.Context, id string, quantity decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE parts SET quantity_in_stock = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update part stock: %w", err)
	}
	return nil
}

// List returns a page of parts.
func (r *PartRepo) List(ctx context.Context, limit, offset int) ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts ORDER BY part_number LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	return scanParts(rows)
}

// ListAll returns every part; the buildability snapshot.
func (r *PartRepo) ListAll(ctx context.Context) ([]*entity.Part, error) {
	rows, err := r.q.Query(ctx, `SELECT `+partColumns+` FROM parts`)
	if err != nil {
		return nil, fmt.Errorf("list all parts: %w", err)
	}
	defer rows.Close()
	return scanParts(rows)
}

// Delete removes a part.
func (r *PartRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete part: %w", err)
	}
	return nil
}

func scanParts(rows pgx.Rows) ([]*entity.Part, error) {
	var parts []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(
			&p.ID, &p.PartNumber, &p.Name, &p.Description,
			&p.QuantityInStock, &p.MinStockLevel, &p.CostPerUnit, &p.Unit,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		parts = append(parts, &p)
	}
	return parts, rows.Err()
}
