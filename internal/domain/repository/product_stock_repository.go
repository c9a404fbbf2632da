package repository

import (
	"github.com/shopspring/decimal"

	"github.com/laabuela/areperia-api/internal/domain/entity"
)

// ProductStockRepository define el puerto para el stock de producto terminado.
type ProductStockRepository interface {
	Upsert(product *entity.ProductStock) error
	GetByType(productType string) (*entity.ProductStock, error)
	List() ([]*entity.ProductStock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productType string) (*entity.ProductStock, error)
	SetStock(productType string, quantity decimal.Decimal) error
	UpdatePrice(productType string, price decimal.Decimal) error
}
