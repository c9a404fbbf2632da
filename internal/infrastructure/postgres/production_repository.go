package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/laabuela/areperia-api/internal/domain"
	"github.com/laabuela/areperia-api/internal/domain/entity"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo persistencia de tandas de producción. La receta consumida
// se guarda como JSONB (material_id -> cantidad).
type ProductionRepo struct {
	q Querier
}

func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

func (r *ProductionRepo) Create(p *entity.Production) error {
	used, err := json.Marshal(p.MaterialsUsed)
	if err != nil {
		return fmt.Errorf("marshal materials used: %w", err)
	}
	query := `
		INSERT INTO production (id, date, product_type, quantity, materials_used, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`
	_, err = r.q.Exec(context.Background(), query,
		p.ID, p.Date, p.ProductType, p.Quantity, used, p.Notes,
	)
	if err != nil {
		return fmt.Errorf("create production: %w", err)
	}
	return nil
}

func (r *ProductionRepo) GetByID(id string) (*entity.Production, error) {
	query := `SELECT id, date, product_type, quantity, materials_used, COALESCE(notes, ''), created_at
		FROM production WHERE id = $1`
	p, err := scanProduction(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get production: %w", err)
	}
	return p, nil
}

func (r *ProductionRepo) List(limit int) ([]*entity.Production, error) {
	query := `SELECT id, date, product_type, quantity, materials_used, COALESCE(notes, ''), created_at
		FROM production ORDER BY date DESC, created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list productions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Production
	for rows.Next() {
		var p entity.Production
		var used []byte
		if err := rows.Scan(&p.ID, &p.Date, &p.ProductType, &p.Quantity, &used, &p.Notes, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan production: %w", err)
		}
		if len(used) > 0 {
			if err := json.Unmarshal(used, &p.MaterialsUsed); err != nil {
				return nil, fmt.Errorf("unmarshal materials used: %w", err)
			}
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func (r *ProductionRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM production WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduction(row pgx.Row) (*entity.Production, error) {
	var p entity.Production
	var used []byte
	err := row.Scan(&p.ID, &p.Date, &p.ProductType, &p.Quantity, &used, &p.Notes, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.MaterialsUsed = make(map[string]decimal.Decimal)
	if len(used) > 0 {
		if err := json.Unmarshal(used, &p.MaterialsUsed); err != nil {
			return nil, fmt.Errorf("unmarshal materials used: %w", err)
		}
	}
	return &p, nil
}
