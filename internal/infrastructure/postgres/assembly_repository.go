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

var _ repository.AssemblyRepository = (*AssemblyRepo)(nil)

const assemblyColumns = `id, assembly_number, name, description, ready_built, is_active, created_at, updated_at`

// AssemblyRepo implements the AssemblyRepository port on PostgreSQL (usable with pool or tx).
// BOM lines live in bom_items and are loaded with their assembly.
type AssemblyRepo struct {
	q Querier
}

// NewAssemblyRepository builds the persistence adapter for assemblies. Pass pool or tx (Querier).
func NewAssemblyRepository(q Querier) *AssemblyRepo {
	return &AssemblyRepo{q: q}
}

// Create persists a new assembly with its BOM lines.
func (r *AssemblyRepo) Create(ctx context.Context, asm *entity.Assembly) error {
	query := `
		INSERT INTO assemblies (` + assemblyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		asm.ID, asm.AssemblyNumber, asm.Name, asm.Description,
		asm.ReadyBuilt, asm.IsActive, asm.CreatedAt, asm.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert assembly: %w", err)
	}
	return r.insertBOMItems(ctx, asm.BOMItems)
}

// GetByID fetches an assembly with its BOM lines, nil when absent.
func (r *AssemblyRepo) GetByID(ctx context.Context, id string) (*entity.Assembly, error) {
	var a entity.Assembly
	err := r.q.QueryRow(ctx, `SELECT `+assemblyColumns+` FROM assemblies WHERE id = $1`, id).Scan(
		&a.ID, &a.AssemblyNumber, &a.Name, &a.Description,
		&a.ReadyBuilt, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assembly: %w", err)
	}
	if err := r.loadBOMItems(ctx, []*entity.Assembly{&a}); err != nil {
		return nil, err
	}
	return &a, nil
}

// Update replaces the assembly's header fields and, atomically with it, the
// whole BOM line set.
func (r *AssemblyRepo) Update(ctx context.Context, asm *entity.Assembly) error {
	query := `
		UPDATE assemblies SET name = $2, description = $3, is_active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, asm.ID, asm.Name, asm.Description, asm.IsActive, asm.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update assembly: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM bom_items WHERE assembly_id = $1`, asm.ID); err != nil {
		return fmt.Errorf("clear bom items: %w", err)
	}
	return r.insertBOMItems(ctx, asm.BOMItems)
}

// UpdateReadyBuilt sets the assembly's ready-built count.
func (r *AssemblyRepo) UpdateReadyBuilt(ctx context.Context, id string, readyBuilt decimal.Decimal) error {
	_, err := r.q.Exec(ctx,
		`UPDATE assemblies SET ready_built = $2, updated_at = now() WHERE id = $1`,
		id, readyBuilt,
	)
	if err != nil {
		return fmt.Errorf("update ready built: %w", err)
	}
	return nil
}

// List returns a page of assemblies with their BOM lines.
func (r *AssemblyRepo) List(ctx context.Context, limit, offset int) ([]*entity.Assembly, error) {
	query := `SELECT ` + assemblyColumns + ` FROM assemblies ORDER BY assembly_number LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list assemblies: %w", err)
	}
	assemblies, err := scanAssemblies(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadBOMItems(ctx, assemblies); err != nil {
		return nil, err
	}
	return assemblies, nil
}

// ListByIDs loads a batch selection with BOM lines in one round trip per table.
func (r *AssemblyRepo) ListByIDs(ctx context.Context, ids []string) ([]*entity.Assembly, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + assemblyColumns + ` FROM assemblies WHERE id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list assemblies by ids: %w", err)
	}
	assemblies, err := scanAssemblies(rows)
	if err != nil {
		return nil, err
	}
	if err := r.loadBOMItems(ctx, assemblies); err != nil {
		return nil, err
	}
	return assemblies, nil
}

// Delete removes an assembly; bom_items cascade on the foreign key.
func (r *AssemblyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM assemblies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assembly: %w", err)
	}
	return nil
}

func (r *AssemblyRepo) insertBOMItems(ctx context.Context, items []entity.BOMItem) error {
	for i := range items {
		item := &items[i]
		_, err := r.q.Exec(ctx,
			`INSERT INTO bom_items (id, assembly_id, part_id, quantity_required, notes) VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.AssemblyID, item.PartID, item.QuantityRequired, item.Notes,
		)
		if err != nil {
			return fmt.Errorf("insert bom item: %w", err)
		}
	}
	return nil
}

func (r *AssemblyRepo) loadBOMItems(ctx context.Context, assemblies []*entity.Assembly) error {
	if len(assemblies) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Assembly, len(assemblies))
	ids := make([]string, 0, len(assemblies))
	for _, a := range assemblies {
		byID[a.ID] = a
		ids = append(ids, a.ID)
	}
	rows, err := r.q.Query(ctx,
		`SELECT id, assembly_id, part_id, quantity_required, notes FROM bom_items WHERE assembly_id = ANY($1) ORDER BY part_id`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("load bom items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item entity.BOMItem
		if err := rows.Scan(&item.ID, &item.AssemblyID, &item.PartID, &item.QuantityRequired, &item.Notes); err != nil {
			return fmt.Errorf("scan bom item: %w", err)
		}
		if a, ok := byID[item.AssemblyID]; ok {
			a.BOMItems = append(a.BOMItems, item)
		}
	}
	return rows.Err()
}

func scanAssemblies(rows pgx.Rows) ([]*entity.Assembly, error) {
	defer rows.Close()
	var assemblies []*entity.Assembly
	for rows.Next() {
		var a entity.Assembly
		if err := rows.Scan(
			&a.ID, &a.AssemblyNumber, &a.Name, &a.Description,
			&a.ReadyBuilt, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan assembly: %w", err)
		}
		assemblies = append(assemblies, &a)
	}
	return assemblies, rows.Err()
}
