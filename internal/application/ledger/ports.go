package ledger

import (
	"context"

	"github.com/laabuela/areperia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el par saldo+movimiento (y el
// registro de producción/venta que lo origina) se escriba todo o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materials repository.MaterialRepository,
		products repository.ProductStockRepository,
		stockMovs repository.StockMovementRepository,
		productMovs repository.ProductMovementRepository,
		productions repository.ProductionRepository,
		sales repository.SaleRepository,
	) error) error
}
