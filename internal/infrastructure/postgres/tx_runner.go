package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laabuela/areperia-api/internal/application/ledger"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	materials repository.MaterialRepository,
	products repository.ProductStockRepository,
	stockMovs repository.StockMovementRepository,
	productMovs repository.ProductMovementRepository,
	productions repository.ProductionRepository,
	sales repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	materials := NewMaterialRepository(tx)
	products := NewProductStockRepository(tx)
	stockMovs := NewStockMovementRepository(tx)
	productMovs := NewProductMovementRepository(tx)
	productions := NewProductionRepository(tx)
	sales := NewSaleRepository(tx)

	if err := fn(materials, products, stockMovs, productMovs, productions, sales); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
