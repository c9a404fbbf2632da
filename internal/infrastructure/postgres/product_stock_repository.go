package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/laabuela/areperia-api/internal/domain"
	"github.com/laabuela/areperia-api/internal/domain/entity"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

var _ repository.ProductStockRepository = (*ProductStockRepo)(nil)

// ProductStockRepo implementación de ProductStockRepository sobre PostgreSQL (usable con pool o tx).
type ProductStockRepo struct {
	q Querier
}

// NewProductStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductStockRepository(q Querier) *ProductStockRepo {
	return &ProductStockRepo{q: q}
}

const productColumns = `product_type, name, unit, price, stock_quantity, min_stock_level, produced, updated_at`

func scanProduct(row pgx.Row) (*entity.ProductStock, error) {
	var p entity.ProductStock
	err := row.Scan(&p.ProductType, &p.Name, &p.Unit, &p.Price, &p.StockQuantity, &p.MinStockLevel, &p.Produced, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Upsert inserta o actualiza un producto del catálogo.
func (r *ProductStockRepo) Upsert(p *entity.ProductStock) error {
	query := `
		INSERT INTO product_stock (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (product_type)
		DO UPDATE SET name = EXCLUDED.name, unit = EXCLUDED.unit, price = EXCLUDED.price,
			min_stock_level = EXCLUDED.min_stock_level, produced = EXCLUDED.produced, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		p.ProductType, p.Name, p.Unit, p.Price, p.StockQuantity, p.MinStockLevel, p.Produced,
	)
	if err != nil {
		return fmt.Errorf("upsert product stock: %w", err)
	}
	return nil
}

// GetByType obtiene un producto por su tipo. Devuelve nil si no existe.
func (r *ProductStockRepo) GetByType(productType string) (*entity.ProductStock, error) {
	query := `SELECT ` + productColumns + ` FROM product_stock WHERE product_type = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, productType))
	if err != nil {
		return nil, fmt.Errorf("get product stock: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
func (r *ProductStockRepo) GetForUpdate(productType string) (*entity.ProductStock, error) {
	query := `SELECT ` + productColumns + ` FROM product_stock WHERE product_type = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, productType))
	if err != nil {
		return nil, fmt.Errorf("get product stock for update: %w", err)
	}
	return p, nil
}

// SetStock fija el saldo materializado (solo dentro de transacciones del libro).
func (r *ProductStockRepo) SetStock(productType string, quantity decimal.Decimal) error {
	query := `UPDATE product_stock SET stock_quantity = $2, updated_at = now() WHERE product_type = $1`
	tag, err := r.q.Exec(context.Background(), query, productType, quantity)
	if err != nil {
		return fmt.Errorf("set product stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePrice cambia el precio de venta vigente.
func (r *ProductStockRepo) UpdatePrice(productType string, price decimal.Decimal) error {
	query := `UPDATE product_stock SET price = $2, updated_at = now() WHERE product_type = $1`
	tag, err := r.q.Exec(context.Background(), query, productType, price)
	if err != nil {
		return fmt.Errorf("update product price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve el catálogo completo ordenado por tipo.
func (r *ProductStockRepo) List() ([]*entity.ProductStock, error) {
	query := `SELECT ` + productColumns + ` FROM product_stock ORDER BY product_type`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list product stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductStock
	for rows.Next() {
		var p entity.ProductStock
		if err := rows.Scan(&p.ProductType, &p.Name, &p.Unit, &p.Price, &p.StockQuantity, &p.MinStockLevel, &p.Produced, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product stock: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
