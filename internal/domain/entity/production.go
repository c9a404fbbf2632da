package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Production registra una tanda de producción: qué se produjo, cuánto y qué
// materias primas se consumieron (MaterialsUsed: material ID -> cantidad).
// MaterialsUsed se persiste como JSONB; puede estar vacío si la receta no se registró.
type Production struct {
	ID            string
	Date          time.Time
	ProductType   string
	Quantity      decimal.Decimal
	MaterialsUsed map[string]decimal.Decimal
	Notes         string
	CreatedAt     time.Time
}
