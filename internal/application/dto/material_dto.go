package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/laabuela/areperia-api/internal/domain/entity"
)

// CreateMaterialRequest body para POST /api/materials.
type CreateMaterialRequest struct {
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
}

// UpdateMaterialRequest body para PUT /api/materials/:id (precio y nivel mínimo).
type UpdateMaterialRequest struct {
	Price         decimal.Decimal `json:"price"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
}

// MaterialResponse una materia prima con su saldo.
type MaterialResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity decimal.Decimal `json:"stock_quantity"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToMaterialResponse convierte la entidad al DTO de respuesta.
func ToMaterialResponse(m *entity.Material) MaterialResponse {
	return MaterialResponse{
		ID:            m.ID,
		Name:          m.Name,
		Unit:          m.Unit,
		Price:         m.Price,
		StockQuantity: m.StockQuantity,
		MinStockLevel: m.MinStockLevel,
		UpdatedAt:     m.UpdatedAt,
	}
}
