package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/laabuela/areperia-api/internal/domain/entity"
)

// RecordProductionRequest body para POST /api/production.
// MaterialsUsed: material ID -> cantidad consumida; puede venir vacío.
type RecordProductionRequest struct {
	Date          string                     `json:"date"` // YYYY-MM-DD
	ProductType   string                     `json:"product_type"`
	Quantity      decimal.Decimal            `json:"quantity"`
	MaterialsUsed map[string]decimal.Decimal `json:"materials_used,omitempty"`
	Notes         string                     `json:"notes,omitempty"`
}

// RecordSaleRequest body para POST /api/sales.
type RecordSaleRequest struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	ProductType  string          `json:"product_type"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CustomerName string          `json:"customer_name,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// ReceiveStockRequest body para entradas de stock (materia prima o producto comprado).
type ReceiveStockRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Notes    string          `json:"notes,omitempty"`
}

// AdjustStockRequest body para correcciones: fija el saldo en NewQuantity,
// el movimiento registra el delta contra el saldo anterior.
type AdjustStockRequest struct {
	NewQuantity decimal.Decimal `json:"new_quantity"`
	Notes       string          `json:"notes,omitempty"`
}

// UpdatePriceRequest body para PUT /api/products/:type/price.
type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price"`
}

// ProductionResponse una tanda de producción.
type ProductionResponse struct {
	ID            string                     `json:"id"`
	Date          string                     `json:"date"`
	ProductType   string                     `json:"product_type"`
	Quantity      decimal.Decimal            `json:"quantity"`
	MaterialsUsed map[string]decimal.Decimal `json:"materials_used,omitempty"`
	MaterialsCost decimal.Decimal            `json:"materials_cost"`
	Notes         string                     `json:"notes,omitempty"`
	CreatedAt     time.Time                  `json:"created_at"`
}

// SaleResponse una venta registrada.
type SaleResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	ProductType  string          `json:"product_type"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	CustomerName string          `json:"customer_name,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// MovementResponse una fila del log de movimientos (materia prima o producto).
type MovementResponse struct {
	ID            string          `json:"id"`
	MaterialID    string          `json:"material_id,omitempty"`
	MaterialName  string          `json:"material_name,omitempty"`
	ProductType   string          `json:"product_type,omitempty"`
	MovementType  string          `json:"movement_type"`
	Quantity      decimal.Decimal `json:"quantity"`
	ReferenceType string          `json:"reference_type,omitempty"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// StockOverviewResponse respuesta de GET /api/stock: saldos y últimos movimientos.
type StockOverviewResponse struct {
	Materials        []MaterialResponse `json:"materials"`
	Products         []ProductResponse  `json:"products"`
	MaterialMovement []MovementResponse `json:"material_movements"`
	ProductMovement  []MovementResponse `json:"product_movements"`
}

// ProductResponse stock de producto terminado.
type ProductResponse struct {
	ProductType   string          `json:"product_type"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	Produced      bool            `json:"produced"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToProductResponse convierte la entidad al DTO de respuesta.
func ToProductResponse(p *entity.ProductStock) ProductResponse {
	return ProductResponse{
		ProductType:   p.ProductType,
		Name:          p.Name,
		Unit:          p.Unit,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		MinStockLevel: p.MinStockLevel,
		Produced:      p.Produced,
		UpdatedAt:     p.UpdatedAt,
	}
}
