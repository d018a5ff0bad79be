package postgres

import (
	"context"
	"fmt"

	"github.com/sayandip-ghosh/stock-management/internal/domain/entity"
	"github.com/sayandip-ghosh/stock-management/internal/domain/repository"
)

var _ repository.ScrapRepository = (*ScrapRepo)(nil)

// ScrapRepo implements the ScrapRepository port on PostgreSQL (usable with pool or tx).
type ScrapRepo struct {
	q Querier
}

// NewScrapRepository builds the persistence adapter for scrap records. Pass pool or tx (Querier).
func NewScrapRepository(q Querier) *ScrapRepo {
	return &ScrapRepo{q: q}
}

// Create persists a scrap record.
func (r *ScrapRepo) Create(ctx context.Context, rec *entity.ScrapRecord) error {
	query := `
		INSERT INTO scrap_records (id, item_type, item_id, quantity, reason, scrapped_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.ItemType, rec.ItemID, rec.Quantity, rec.Reason, rec.ScrappedBy, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert scrap record: %w", err)
	}
	return nil
}

// List returns a page of scrap records, newest first.
func (r *ScrapRepo) List(ctx context.Context, limit, offset int) ([]*entity.ScrapRecord, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, item_type, item_id, quantity, reason, scrapped_by, created_at
		 FROM scrap_records ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list scrap records: %w", err)
	}
	defer rows.Close()

	var records []*entity.ScrapRecord
	for rows.Next() {
		var rec entity.ScrapRecord
		if err := rows.Scan(
			&rec.ID, &rec.ItemType, &rec.ItemID, &rec.Quantity, &rec.Reason, &rec.ScrappedBy, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan scrap record: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}
