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

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const orderColumns = `id, po_number, vendor_id, order_date, status, notes, created_by, created_at, updated_at`

// PurchaseOrderRepo implements the PurchaseOrderRepository port on PostgreSQL
// (usable with pool or tx). Lines live in purchase_order_lines and are loaded
// with their order.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository builds the persistence adapter for orders. Pass pool or tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persists a new order with its lines.
func (r *PurchaseOrderRepo) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.PONumber, order.VendorID, order.OrderDate,
		order.Status, order.Notes, order.CreatedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	for i := range order.Lines {
		line := &order.Lines[i]
		_, err := r.q.Exec(ctx,
			`INSERT INTO purchase_order_lines (id, purchase_order_id, item_type, item_id, quantity_ordered, quantity_received, unit_cost)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			line.ID, line.PurchaseOrderID, line.ItemType, line.ItemID,
			line.QuantityOrdered, line.QuantityReceived, line.UnitCost,
		)
		if err != nil {
			return fmt.Errorf("insert purchase order line: %w", err)
		}
	}
	return nil
}

// GetByID fetches an order with its lines, nil when absent.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM purchase_orders WHERE id = $1`, id)
}

// GetForUpdate locks the order header row so concurrent receipts serialize.
func (r *PurchaseOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM purchase_orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *PurchaseOrderRepo) get(ctx context.Context, query string, arg any) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&o.ID, &o.PONumber, &o.VendorID, &o.OrderDate,
		&o.Status, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if err := r.loadLines(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatus sets the order's status.
func (r *PurchaseOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE purchase_orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// UpdateLineReceived persists a line's cumulative received quantity.
func (r *PurchaseOrderRepo) UpdateLineReceived(ctx context.Context, line *entity.PurchaseOrderLine) error {
	_, err := r.q.Exec(ctx,
		`UPDATE purchase_order_lines SET quantity_received = $2 WHERE id = $1`,
		line.ID, line.QuantityReceived,
	)
	if err != nil {
		return fmt.Errorf("update line received: %w", err)
	}
	return nil
}

// List returns a page of orders with lines, optionally filtered by status.
func (r *PurchaseOrderRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status != "" {
		rows, err = r.q.Query(ctx,
			`SELECT `+orderColumns+` FROM purchase_orders WHERE status = $1 ORDER BY order_date DESC LIMIT $2 OFFSET $3`,
			status, limit, offset,
		)
	} else {
		rows, err = r.q.Query(ctx,
			`SELECT `+orderColumns+` FROM purchase_orders ORDER BY order_date DESC LIMIT $1 OFFSET $2`,
			limit, offset,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(
			&o.ID, &o.PONumber, &o.VendorID, &o.OrderDate,
			&o.Status, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range orders {
		if err := r.loadLines(ctx, o); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *PurchaseOrderRepo) loadLines(ctx context.Context, order *entity.PurchaseOrder) error {
	rows, err := r.q.Query(ctx,
		`SELECT id, purchase_order_id, item_type, item_id, quantity_ordered, quantity_received, unit_cost
		 FROM purchase_order_lines WHERE purchase_order_id = $1 ORDER BY id`,
		order.ID,
	)
	if err != nil {
		return fmt.Errorf("load order lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var line entity.PurchaseOrderLine
		if err := rows.Scan(
			&line.ID, &line.PurchaseOrderID, &line.ItemType, &line.ItemID,
			&line.QuantityOrdered, &line.QuantityReceived, &line.UnitCost,
		); err != nil {
			return fmt.Errorf("scan order line: %w", err)
		}
		order.Lines = append(order.Lines, line)
	}
	return rows.Err()
}
