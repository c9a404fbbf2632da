package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusActive    = "activa"
	OrderStatusDelivered = "entregada"
	OrderStatusCancelled = "cancelada"
)

// Tipos de entrega.
const (
	DeliveryTypeHome   = "domicilio"
	DeliveryTypePickup = "recogida"
)

// Métodos de pago aceptados en el formulario público.
const (
	PaymentCash     = "efectivo"
	PaymentTransfer = "transferencia"
	PaymentCard     = "tarjeta"
)

// ValidOrderStatus indica si s es un estado de pedido reconocido.
func ValidOrderStatus(s string) bool {
	return s == OrderStatusActive || s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderItem es una línea del pedido con el precio vigente al momento de crearlo.
type OrderItem struct {
	ProductType string          `json:"product_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Order es un pedido de cliente entrado por el formulario público.
// Items se persiste como JSONB; TotalAmount es la suma de los totales de línea.
type Order struct {
	ID            string
	OrderDate     time.Time
	DeliveryDate  time.Time
	DeliveryType  string // domicilio | recogida
	CustomerName  string
	CustomerPhone string
	Address       string // solo para domicilio
	Items         []OrderItem
	TotalAmount   decimal.Decimal
	PaymentMethod string
	Status        string // activa | entregada | cancelada
	Notes         string
	CreatedAt     time.Time
}
