package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/laabuela/areperia-api/internal/domain/entity"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

var _ repository.ProductMovementRepository = (*ProductMovementRepo)(nil)

// ProductMovementRepo persistencia del libro de movimientos de producto terminado.
type ProductMovementRepo struct {
	q Querier
}

func NewProductMovementRepository(q Querier) *ProductMovementRepo {
	return &ProductMovementRepo{q: q}
}

const productMovementColumns = `id, product_type, movement_type, quantity, reference_type, reference_id, COALESCE(notes, ''), created_at`

// Create registra un movimiento firmado de producto. Si no trae ID se genera uno.
func (r *ProductMovementRepo) Create(m *entity.ProductStockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO product_stock_movements (id, product_type, movement_type, quantity, reference_type, reference_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductType, m.MovementType, m.Quantity, nullIfEmpty(m.ReferenceType), nullIfEmpty(m.ReferenceID), m.Notes,
	)
	if err != nil {
		return fmt.Errorf("create product movement: %w", err)
	}
	return nil
}

// ListRecent devuelve los últimos movimientos de producto, el más nuevo primero.
func (r *ProductMovementRepo) ListRecent(limit int) ([]*entity.ProductStockMovement, error) {
	query := `SELECT ` + productMovementColumns + ` FROM product_stock_movements ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list product movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductStockMovement
	for rows.Next() {
		var m entity.ProductStockMovement
		var refType, refID *string
		if err := rows.Scan(&m.ID, &m.ProductType, &m.MovementType, &m.Quantity, &refType, &refID, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product movement: %w", err)
		}
		m.ReferenceType = deref(refType)
		m.ReferenceID = deref(refID)
		list = append(list, &m)
	}
	return list, rows.Err()
}

// DeleteByReference borra los movimientos ligados a una producción o venta.
func (r *ProductMovementRepo) DeleteByReference(referenceType, referenceID string) error {
	query := `DELETE FROM product_stock_movements WHERE reference_type = $1 AND reference_id = $2`
	if _, err := r.q.Exec(context.Background(), query, referenceType, referenceID); err != nil {
		return fmt.Errorf("delete product movements by reference: %w", err)
	}
	return nil
}
