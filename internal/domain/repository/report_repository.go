package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/laabuela/areperia-api/internal/domain/entity"
)

// ProductTotal cantidad producida por producto en un período.
type ProductTotal struct {
	ProductType string
	Quantity    decimal.Decimal
}

// ProductSalesTotal cantidad vendida e ingresos por producto en un período.
type ProductSalesTotal struct {
	ProductType string
	Quantity    decimal.Decimal
	Revenue     decimal.Decimal
}

// DailyTotal total diario de producción o ventas. Revenue es cero para producción.
type DailyTotal struct {
	Date     time.Time
	Quantity decimal.Decimal
	Revenue  decimal.Decimal
}

// ActivityEntry una fila del feed de actividad reciente (producción ∪ ventas).
type ActivityEntry struct {
	Kind        string // "production" | "sale"
	Date        time.Time
	ProductType string
	Quantity    decimal.Decimal
	TotalPrice  decimal.Decimal // cero en producción
	CreatedAt   time.Time
}

// ReportRepository consultas de solo lectura para dashboard y reportes.
type ReportRepository interface {
	ProductionByProduct(ctx context.Context, from, to time.Time) ([]ProductTotal, error)
	SalesByProduct(ctx context.Context, from, to time.Time) ([]ProductSalesTotal, error)
	TotalRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	DailyProduction(ctx context.Context, from, to time.Time) ([]DailyTotal, error)
	DailySales(ctx context.Context, from, to time.Time) ([]DailyTotal, error)
	LowStockMaterials(ctx context.Context) ([]*entity.Material, error)
	LowStockProducts(ctx context.Context) ([]*entity.ProductStock, error)
	RecentActivity(ctx context.Context, limit int) ([]ActivityEntry, error)
}
