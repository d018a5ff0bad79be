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

var _ repository.RawItemRepository = (*RawItemRepo)(nil)

const rawItemColumns = `id, item_number, name, material, dimensions, quantity_in_stock, min_stock_level, cost_per_unit, unit, created_at, updated_at`

// RawItemRepo implements the RawItemRepository port on PostgreSQL (usable with pool or tx).
type RawItemRepo struct {
	q Querier
}

// NewRawItemRepository builds the persistence adapter for raw material. Pass pool or tx (Querier).
func NewRawItemRepository(q Querier) *RawItemRepo {
	return &RawItemRepo{q: q}
}

// Create persists a new raw item.
func (r *RawItemRepo) Create(ctx context.Context, item *entity.RawItem) error {
	query := `
		INSERT INTO raw_items (` + rawItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.ItemNumber, item.Name, item.Material, item.Dimensions,
		item.QuantityInStock, item.MinStockLevel, item.CostPerUnit, item.Unit,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert raw item: %w", err)
	}
	return nil
}

// GetByID fetches a raw item by id, nil when absent.
func (r *RawItemRepo) GetByID(ctx context.Context, id string) (*entity.RawItem, error) {
	return r.get(ctx, `SELECT `+rawItemColumns+` FROM raw_items WHERE id = $1`, id)
}

// GetForUpdate locks the raw item row for the rest of the transaction.
func (r *RawItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.RawItem, error) {
	return r.get(ctx, `SELECT `+rawItemColumns+` FROM raw_items WHERE id = $1 FOR UPDATE`, id)
}

func (r *RawItemRepo) get(ctx context.Context, query string, arg any) (*entity.RawItem, error) {
	var it entity.RawItem
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&it.ID, &it.ItemNumber, &it.Name, &it.Material, &it.Dimensions,
		&it.QuantityInStock, &it.MinStockLevel, &it.CostPerUnit, &it.Unit,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw item: %w", err)
	}
	return &it, nil
}

// Update updates the raw item's descriptive fields.
func (r *RawItemRepo) Update(ctx context.Context, item *entity.RawItem) error {
	query := `
		UPDATE raw_items SET name = $2, material = $3, dimensions = $4, min_stock_level = $5, cost_per_unit = $6, unit = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Material, item.Dimensions,
		item.MinStockLevel, item.CostPerUnit, item.Unit, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update raw item: %w", err)
	}
	return nil
}

// UpdateStock sets the raw item's stock to the given quantity.
func (r *RawItemRepo) UpdateStock(ctx context.Context, id string, quantity decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE raw_items SET quantity_in_stock = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update raw item stock: %w", err)
	}
	return nil
}

// List returns a page of raw items.
func (r *RawItemRepo) List(ctx context.Context, limit, offset int) ([]*entity.RawItem, error) {
	query := `SELECT ` + rawItemColumns + ` FROM raw_items ORDER BY item_number LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list raw items: %w", err)
	}
	defer rows.Close()

	var items []*entity.RawItem
	for rows.Next() {
		var it entity.RawItem
		if err := rows.Scan(
			&it.ID, &it.ItemNumber, &it.Name, &it.Material, &it.Dimensions,
			&it.QuantityInStock, &it.MinStockLevel, &it.CostPerUnit, &it.Unit,
			&it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan raw item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// Delete removes a raw item.
func (r *RawItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM raw_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete raw item: %w", err)
	}
	return nil
}
