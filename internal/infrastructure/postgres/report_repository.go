package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/laabuela/areperia-api/internal/domain/entity"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas de solo lectura para dashboard y reportes.
// Siempre va contra el pool: los reportes no participan en transacciones.
type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// ProductionByProduct total producido por producto en [from, to].
func (r *ReportRepo) ProductionByProduct(ctx context.Context, from, to time.Time) ([]repository.ProductTotal, error) {
	query := `
		SELECT product_type, SUM(quantity)
		FROM production
		WHERE date >= $1 AND date <= $2
		GROUP BY product_type
		ORDER BY product_type`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("production by product: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductTotal
	for rows.Next() {
		var t repository.ProductTotal
		if err := rows.Scan(&t.ProductType, &t.Quantity); err != nil {
			return nil, fmt.Errorf("scan production total: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// SalesByProduct total vendido e ingresos por producto en [from, to].
func (r *ReportRepo) SalesByProduct(ctx context.Context, from, to time.Time) ([]repository.ProductSalesTotal, error) {
	query := `
		SELECT product_type, SUM(quantity), SUM(total_price)
		FROM sales
		WHERE date >= $1 AND date <= $2
		GROUP BY product_type
		ORDER BY product_type`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("sales by product: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductSalesTotal
	for rows.Next() {
		var t repository.ProductSalesTotal
		if err := rows.Scan(&t.ProductType, &t.Quantity, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan sales total: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// TotalRevenue ingresos totales por ventas en [from, to].
func (r *ReportRepo) TotalRevenue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(total_price), 0) FROM sales WHERE date >= $1 AND date <= $2`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total revenue: %w", err)
	}
	return total, nil
}

// DailyProduction producción total por día en [from, to].
func (r *ReportRepo) DailyProduction(ctx context.Context, from, to time.Time) ([]repository.DailyTotal, error) {
	query := `
		SELECT date, SUM(quantity)
		FROM production
		WHERE date >= $1 AND date <= $2
		GROUP BY date
		ORDER BY date`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily production: %w", err)
	}
	defer rows.Close()
	var list []repository.DailyTotal
	for rows.Next() {
		var t repository.DailyTotal
		if err := rows.Scan(&t.Date, &t.Quantity); err != nil {
			return nil, fmt.Errorf("scan daily production: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// DailySales ventas e ingresos por día en [from, to].
func (r *ReportRepo) DailySales(ctx context.Context, from, to time.Time) ([]repository.DailyTotal, error) {
	query := `
		SELECT date, SUM(quantity), SUM(total_price)
		FROM sales
		WHERE date >= $1 AND date <= $2
		GROUP BY date
		ORDER BY date`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}
	defer rows.Close()
	var list []repository.DailyTotal
	for rows.Next() {
		var t repository.DailyTotal
		if err := rows.Scan(&t.Date, &t.Quantity, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// LowStockMaterials materiales con saldo en o por debajo de su mínimo.
func (r *ReportRepo) LowStockMaterials(ctx context.Context) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials
		WHERE min_stock_level > 0 AND stock_quantity <= min_stock_level
		ORDER BY stock_quantity ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("low stock materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Unit, &m.Price, &m.StockQuantity, &m.MinStockLevel, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan low stock material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// LowStockProducts productos con saldo en o por debajo de su mínimo.
func (r *ReportRepo) LowStockProducts(ctx context.Context) ([]*entity.ProductStock, error) {
	query := `SELECT ` + productColumns + ` FROM product_stock
		WHERE min_stock_level > 0 AND stock_quantity <= min_stock_level
		ORDER BY stock_quantity ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("low stock products: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductStock
	for rows.Next() {
		var p entity.ProductStock
		if err := rows.Scan(&p.ProductType, &p.Name, &p.Unit, &p.Price, &p.StockQuantity, &p.MinStockLevel, &p.Produced, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan low stock product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// RecentActivity últimas n producciones y ventas mezcladas, lo más nuevo primero.
func (r *ReportRepo) RecentActivity(ctx context.Context, limit int) ([]repository.ActivityEntry, error) {
	query := `
		SELECT kind, date, product_type, quantity, total_price, created_at FROM (
			SELECT 'production' AS kind, date, product_type, quantity, 0::numeric AS total_price, created_at
			FROM production
			UNION ALL
			SELECT 'sale' AS kind, date, product_type, quantity, total_price, created_at
			FROM sales
		) activity
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	defer rows.Close()
	var list []repository.ActivityEntry
	for rows.Next() {
		var e repository.ActivityEntry
		if err := rows.Scan(&e.Kind, &e.Date, &e.ProductType, &e.Quantity, &e.TotalPrice, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
