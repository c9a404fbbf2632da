package repository

import (
	"github.com/shopspring/decimal"

	"github.com/laabuela/areperia-api/internal/domain/entity"
)

// MaterialRepository define el puerto de persistencia para Material (DIP).
// SetStock y GetForUpdate se usan dentro de transacciones del libro.
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	GetByName(name string) (*entity.Material, error)
	Update(material *entity.Material) error
	List() ([]*entity.Material, error)
	Delete(id string) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Material, error)
	SetStock(id string, quantity decimal.Decimal) error
}
