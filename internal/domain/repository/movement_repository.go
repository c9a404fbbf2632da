package repository

import "github.com/laabuela/areperia-api/internal/domain/entity"

// StockMovementRepository define el puerto del log de movimientos de materia prima.
// El log es append-only: solo Create y los Delete de reversa (al borrar la
// producción/venta que originó las filas, o el material completo).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListRecent(limit int) ([]*entity.StockMovement, error)
	ListByMaterial(materialID string, limit int) ([]*entity.StockMovement, error)
	DeleteByReference(referenceType, referenceID string) error
	DeleteByMaterial(materialID string) error
}

// ProductMovementRepository es el puerto equivalente para producto terminado.
type ProductMovementRepository interface {
	Create(movement *entity.ProductStockMovement) error
	ListRecent(limit int) ([]*entity.ProductStockMovement, error)
	DeleteByReference(referenceType, referenceID string) error
}
