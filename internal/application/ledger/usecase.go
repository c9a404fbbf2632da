package ledger

import (
	"time"

	"github.com/laabuela/areperia-api/internal/domain"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

// UseCase aplica las operaciones que afectan stock (producir, vender, recibir,
// ajustar, borrar) como escrituras pareadas saldo+movimiento, atómicas.
// Cada operación abre una transacción vía TxRunner y bloquea las filas de
// saldo con SELECT FOR UPDATE antes de mutarlas.
type UseCase struct {
	txRunner    TxRunner
	materials   repository.MaterialRepository
	products    repository.ProductStockRepository
	productions repository.ProductionRepository
	sales       repository.SaleRepository
}

// New construye el caso de uso del libro de inventario.
// materials/products se usan para validaciones y listados fuera de la tx.
func New(
	txRunner TxRunner,
	materials repository.MaterialRepository,
	products repository.ProductStockRepository,
	productions repository.ProductionRepository,
	sales repository.SaleRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, materials: materials, products: products, productions: productions, sales: sales}
}

// parseDate interpreta fechas YYYY-MM-DD de los requests.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}
