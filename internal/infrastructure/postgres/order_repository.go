package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/laabuela/areperia-api/internal/domain"
	"github.com/laabuela/areperia-api/internal/domain/entity"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo persistencia de pedidos. Las líneas se guardan como JSONB con el
// precio congelado al momento de crear el pedido.
type OrderRepo struct {
	q Querier
}

func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, order_date, delivery_date, delivery_type, customer_name, customer_phone,
	COALESCE(address, ''), items, total_amount, payment_method, status, COALESCE(notes, ''), created_at`

// Create persiste un pedido nuevo. Si no trae ID se genera uno.
func (r *OrderRepo) Create(o *entity.Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}
	query := `
		INSERT INTO orders (id, order_date, delivery_date, delivery_type, customer_name, customer_phone,
			address, items, total_amount, payment_method, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())`
	_, err = r.q.Exec(context.Background(), query,
		o.ID, o.OrderDate, o.DeliveryDate, o.DeliveryType, o.CustomerName, o.CustomerPhone,
		nullIfEmpty(o.Address), items, o.TotalAmount, o.PaymentMethod, o.Status, nullIfEmpty(o.Notes),
	)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// List devuelve los pedidos que pasan el filtro, los de entrega más próxima primero.
func (r *OrderRepo) List(filter repository.OrderFilter) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := []any{}
	argPos := 1
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argPos)
		args = append(args, filter.Status)
		argPos++
	}
	if filter.DeliveryFrom != nil {
		query += fmt.Sprintf(" AND delivery_date >= $%d", argPos)
		args = append(args, *filter.DeliveryFrom)
		argPos++
	}
	if filter.DeliveryTo != nil {
		query += fmt.Sprintf(" AND delivery_date <= $%d", argPos)
		args = append(args, *filter.DeliveryTo)
		argPos++
	}
	query += " ORDER BY delivery_date ASC, created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		var items []byte
		if err := rows.Scan(&o.ID, &o.OrderDate, &o.DeliveryDate, &o.DeliveryType, &o.CustomerName,
			&o.CustomerPhone, &o.Address, &items, &o.TotalAmount, &o.PaymentMethod, &o.Status,
			&o.Notes, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

func (r *OrderRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(), `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var items []byte
	err := row.Scan(&o.ID, &o.OrderDate, &o.DeliveryDate, &o.DeliveryType, &o.CustomerName,
		&o.CustomerPhone, &o.Address, &items, &o.TotalAmount, &o.PaymentMethod, &o.Status,
		&o.Notes, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}
	return &o, nil
}
