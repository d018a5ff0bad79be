package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
	"github.com/sayandip-ghosh/stock-management/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, transaction_id, item_type, item_id, type, quantity, unit_cost, reference_id, date, created_at, created_by`

// StockMovementRepo implements the stock ledger port on PostgreSQL (usable with pool or tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository builds the ledger adapter. Pass pool or tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persists a ledger entry.
func (r *StockMovementRepo) Create(ctx context.Context, mov *entity.StockMovement) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	referenceID := (*string)(nil)
	if mov.ReferenceID != "" {
		referenceID = &mov.ReferenceID
	}
	_, err := r.q.Exec(ctx, query,
		mov.ID, mov.TransactionID, mov.ItemType, mov.ItemID, mov.Type,
		mov.Quantity, mov.UnitCost, referenceID, mov.Date, mov.CreatedAt, mov.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List returns a page of the ledger, newest first, optionally filtered by item.
func (r *StockMovementRepo) List(ctx context.Context, itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if itemID != "" {
		rows, err = r.q.Query(ctx,
			`SELECT `+movementColumns+` FROM stock_movements WHERE item_id = $1 ORDER BY date DESC, created_at DESC LIMIT $2 OFFSET $3`,
			itemID, limit, offset,
		)
	} else {
		rows, err = r.q.Query(ctx,
			`SELECT `+movementColumns+` FROM stock_movements ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`,
			limit, offset,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var movements []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var referenceID *string
		if err := rows.Scan(
			&m.ID, &m.TransactionID, &m.ItemType, &m.ItemID, &m.Type,
			&m.Quantity, &m.UnitCost, &referenceID, &m.Date, &m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if referenceID != nil {
			m.ReferenceID = *referenceID
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}
