package repository

import (
	"time"

	"github.com/laabuela/areperia-api/internal/domain/entity"
)

// OrderFilter filtros del listado admin de pedidos.
// Status vacío = todos. DeliveryFrom/DeliveryTo acotan la fecha de entrega
// (hoy: from=to=hoy; próximos: from=hoy, to=nil).
type OrderFilter struct {
	Status       string
	DeliveryFrom *time.Time
	DeliveryTo   *time.Time
}

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(filter OrderFilter) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
	Delete(id string) error
}
