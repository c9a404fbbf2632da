package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material representa una materia prima del inventario (harina, agua, sal, aceite...).
// StockQuantity es el saldo materializado; el historial vive en stock_movements.
type Material struct {
	ID            string
	Name          string // único
	Unit          string // kg, lt, und
	Price         decimal.Decimal
	StockQuantity decimal.Decimal
	MinStockLevel decimal.Decimal // 0 = sin alerta de stock bajo
	UpdatedAt     time.Time
}
