package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStock representa el stock de un producto terminado, identificado por
// su tipo (clave del catálogo: "arepa", "empanada", "bunuelo", "almojabana").
// Produced distingue producción propia de producto comprado ya terminado:
// solo los produced=true pueden aparecer en registros de producción.
type ProductStock struct {
	ProductType   string // único
	Name          string // nombre para mostrar
	Unit          string
	Price         decimal.Decimal // precio de venta vigente
	StockQuantity decimal.Decimal
	MinStockLevel decimal.Decimal
	Produced      bool
	UpdatedAt     time.Time
}
