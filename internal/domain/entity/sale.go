package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registra una venta directa de mostrador.
// TotalPrice = Quantity * UnitPrice, calculado al registrar.
type Sale struct {
	ID           string
	Date         time.Time
	ProductType  string
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
	CustomerName string
	Notes        string
	CreatedAt    time.Time
}
