package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de inventario.
const (
	MovementTypeIn         = "in"         // entrada de stock (compra/recepción)
	MovementTypeProduction = "production" // consumo de materia prima o entrada de producto por producción
	MovementTypeSale       = "sale"       // salida de producto por venta
	MovementTypeAdjustment = "adjustment" // corrección manual (delta respecto al saldo anterior)
)

// Tipos de referencia hacia el registro que originó el movimiento.
const (
	ReferenceProduction = "production"
	ReferenceSale       = "sale"
)

// StockMovement es una fila del log append-only de materias primas.
// Quantity lleva signo: positivo entra, negativo sale. Todo cambio de saldo
// en materials tiene exactamente una fila aquí con el mismo delta.
type StockMovement struct {
	ID            string
	MaterialID    string
	MovementType  string
	Quantity      decimal.Decimal
	ReferenceType string // vacío si el movimiento no nace de producción/venta
	ReferenceID   string
	Notes         string
	CreatedAt     time.Time
}

// ProductStockMovement es el equivalente para productos terminados.
type ProductStockMovement struct {
	ID            string
	ProductType   string
	MovementType  string
	Quantity      decimal.Decimal
	ReferenceType string
	ReferenceID   string
	Notes         string
	CreatedAt     time.Time
}
