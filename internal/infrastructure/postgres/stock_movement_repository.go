package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/laabuela/areperia-api/internal/domain/entity"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo persistencia del libro de movimientos de materia prima.
type StockMovementRepo struct {
	q Querier
}

func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const stockMovementColumns = `id, material_id, movement_type, quantity, reference_type, reference_id, COALESCE(notes, ''), created_at`

// Create registra un movimiento firmado. Si no trae ID se genera uno.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, material_id, movement_type, quantity, reference_type, reference_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.MaterialID, m.MovementType, m.Quantity, nullIfEmpty(m.ReferenceType), nullIfEmpty(m.ReferenceID), m.Notes,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListRecent devuelve los últimos movimientos, el más nuevo primero.
func (r *StockMovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + stockMovementColumns + ` FROM stock_movements ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	return collectStockMovements(rows)
}

// ListByMaterial devuelve el historial de un material.
func (r *StockMovementRepo) ListByMaterial(materialID string, limit int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + stockMovementColumns + ` FROM stock_movements WHERE material_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, materialID, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock movements by material: %w", err)
	}
	defer rows.Close()
	return collectStockMovements(rows)
}

// DeleteByReference borra los movimientos ligados a una producción o venta.
func (r *StockMovementRepo) DeleteByReference(referenceType, referenceID string) error {
	query := `DELETE FROM stock_movements WHERE reference_type = $1 AND reference_id = $2`
	if _, err := r.q.Exec(context.Background(), query, referenceType, referenceID); err != nil {
		return fmt.Errorf("delete stock movements by reference: %w", err)
	}
	return nil
}

// DeleteByMaterial borra el historial al eliminar un material del catálogo.
func (r *StockMovementRepo) DeleteByMaterial(materialID string) error {
	query := `DELETE FROM stock_movements WHERE material_id = $1`
	if _, err := r.q.Exec(context.Background(), query, materialID); err != nil {
		return fmt.Errorf("delete stock movements by material: %w", err)
	}
	return nil
}

func collectStockMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var refType, refID *string
		if err := rows.Scan(&m.ID, &m.MaterialID, &m.MovementType, &m.Quantity, &refType, &refID, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		m.ReferenceType = deref(refType)
		m.ReferenceID = deref(refID)
		list = append(list, &m)
	}
	return list, rows.Err()
}
