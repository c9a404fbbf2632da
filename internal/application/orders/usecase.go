package orders

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/laabuela/areperia-api/internal/application/dto"
	"github.com/laabuela/areperia-api/internal/domain"
	"github.com/laabuela/areperia-api/internal/domain/entity"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

// ReceiptGenerator genera el comprobante PDF de un pedido.
type ReceiptGenerator interface {
	GenerateOrderReceipt(order *entity.Order, products []*entity.ProductStock) ([]byte, error)
}

// UseCase recepción de pedidos del formulario público y gestión admin.
// Independiente del libro de inventario: solo lee precios vigentes del
// catálogo; el stock no se toca hasta que el pedido se despacha como venta.
type UseCase struct {
	orders      repository.OrderRepository
	products    repository.ProductStockRepository
	receipts    ReceiptGenerator
	minDelivery decimal.Decimal
	validate    *validator.Validate
}

// New construye el caso de uso de pedidos. minDelivery es el monto mínimo
// para pedidos a domicilio (ORDERS_MIN_DELIVERY_AMOUNT).
func New(orders repository.OrderRepository, products repository.ProductStockRepository, receipts ReceiptGenerator, minDelivery decimal.Decimal) *UseCase {
	return &UseCase{
		orders:      orders,
		products:    products,
		receipts:    receipts,
		minDelivery: minDelivery,
		validate:    validator.New(),
	}
}

// MinDeliveryAmount expone el mínimo configurado (para mensajes de error HTTP).
func (uc *UseCase) MinDeliveryAmount() decimal.Decimal { return uc.minDelivery }

// PlaceOrder valida y persiste un pedido con estado "activa".
// Los totales de línea se calculan con el precio vigente del catálogo, nunca
// con precios enviados por el cliente. Reglas: al menos una línea con
// cantidad positiva; domicilio exige dirección y total >= mínimo configurado.
func (uc *UseCase) PlaceOrder(ctx context.Context, in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	deliveryDate, err := time.Parse("2006-01-02", in.DeliveryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.DeliveryType == entity.DeliveryTypeHome && in.Address == "" {
		return nil, domain.ErrInvalidInput
	}

	// Precios vigentes del catálogo
	catalog, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	prices := make(map[string]decimal.Decimal, len(catalog))
	for _, p := range catalog {
		prices[p.ProductType] = p.Price
	}

	var items []entity.OrderItem
	total := decimal.Zero
	for _, it := range in.Items {
		if !it.Quantity.GreaterThan(decimal.Zero) {
			continue // líneas en cero se descartan, como en el formulario
		}
		price, ok := prices[it.ProductType]
		if !ok {
			return nil, domain.ErrNotFound
		}
		lineTotal := it.Quantity.Mul(price)
		items = append(items, entity.OrderItem{
			ProductType: it.ProductType,
			Quantity:    it.Quantity,
			UnitPrice:   price,
			Total:       lineTotal,
		})
		total = total.Add(lineTotal)
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if in.DeliveryType == entity.DeliveryTypeHome && total.LessThan(uc.minDelivery) {
		return nil, domain.ErrMinDeliveryAmount
	}

	now := time.Now()
	address := in.Address
	if in.DeliveryType != entity.DeliveryTypeHome {
		address = ""
	}
	order := &entity.Order{
		OrderDate:     now,
		DeliveryDate:  deliveryDate,
		DeliveryType:  in.DeliveryType,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Address:       address,
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: in.PaymentMethod,
		Status:        entity.OrderStatusActive,
		Notes:         in.Notes,
		CreatedAt:     now,
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	resp := dto.ToOrderResponse(order)
	return &resp, nil
}

// List devuelve pedidos para el admin. status vacío = todos;
// dateFilter: "today" (entrega hoy), "upcoming" (entrega >= hoy) o "all".
func (uc *UseCase) List(ctx context.Context, status, dateFilter string) ([]dto.OrderResponse, error) {
	if status != "" && !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	filter := repository.OrderFilter{Status: status}
	today := startOfDay(time.Now())
	switch dateFilter {
	case "today":
		filter.DeliveryFrom = &today
		filter.DeliveryTo = &today
	case "upcoming":
		filter.DeliveryFrom = &today
	}

	list, err := uc.orders.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, dto.ToOrderResponse(o))
	}
	return out, nil
}

// startOfDay medianoche del día calendario de t en su zona horaria.
// Truncate(24h) corta contra el día UTC y en zonas como America/Bogota
// daría el día anterior durante buena parte de la jornada.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// UpdateStatus cambia el estado de un pedido (activa, entregada, cancelada).
func (uc *UseCase) UpdateStatus(ctx context.Context, orderID, status string) error {
	if !entity.ValidOrderStatus(status) {
		return domain.ErrInvalidInput
	}
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orders.UpdateStatus(orderID, status)
}

// Delete elimina un pedido. Los pedidos no afectan stock, así que no hay reversa.
func (uc *UseCase) Delete(ctx context.Context, orderID string) error {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orders.Delete(orderID)
}

// Receipt genera el comprobante PDF de un pedido.
func (uc *UseCase) Receipt(ctx context.Context, orderID string) ([]byte, error) {
	order, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	catalog, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	return uc.receipts.GenerateOrderReceipt(order, catalog)
}
