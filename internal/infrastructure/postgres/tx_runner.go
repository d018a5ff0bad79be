package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sayandip-ghosh/stock-management/internal/application/build"
	"github.com/sayandip-ghosh/stock-management/internal/application/purchasing"
	"github.com/sayandip-ghosh/stock-management/internal/application/usecase"
	"github.com/sayandip-ghosh/stock-management/internal/domain/repository"
)

// Ensure TxRunner implements the application-layer runner ports.
var _ build.TxRunner = (*TxRunner)(nil)
var _ purchasing.ReceiptTxRunner = (*TxRunner)(nil)
var _ usecase.StockTxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner with the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run starts a transaction, executes fn with tx-bound build repositories and
// commits, or rolls back on error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	parts repository.PartRepository,
	assemblies repository.AssemblyRepository,
	movements repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPartRepository(tx), NewAssemblyRepository(tx), NewStockMovementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunReceipt starts a transaction with the repositories a purchase-order
// receipt touches.
func (r *TxRunner) RunReceipt(ctx context.Context, fn func(
	orders repository.PurchaseOrderRepository,
	parts repository.PartRepository,
	rawItems repository.RawItemRepository,
	movements repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPurchaseOrderRepository(tx), NewPartRepository(tx), NewRawItemRepository(tx), NewStockMovementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunStock starts a transaction with the repositories adjustments and scrap
// write-offs touch.
func (r *TxRunner) RunStock(ctx context.Context, fn func(
	parts repository.PartRepository,
	rawItems repository.RawItemRepository,
	movements repository.StockMovementRepository,
	scraps repository.ScrapRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPartRepository(tx), NewRawItemRepository(tx), NewStockMovementRepository(tx), NewScrapRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
