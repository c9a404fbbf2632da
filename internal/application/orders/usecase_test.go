package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laabuela/areperia-api/internal/application/dto"
	"github.com/laabuela/areperia-api/internal/application/orders"
	"github.com/laabuela/areperia-api/internal/domain"
	"github.com/laabuela/areperia-api/internal/domain/entity"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type memOrders struct {
	orders     map[string]*entity.Order
	lastFilter repository.OrderFilter
}

func (r *memOrders) Create(o *entity.Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	r.orders[o.ID] = o
	return nil
}
func (r *memOrders) GetByID(id string) (*entity.Order, error) { return r.orders[id], nil }
func (r *memOrders) List(f repository.OrderFilter) ([]*entity.Order, error) {
	r.lastFilter = f
	var out []*entity.Order
	for _, o := range r.orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}
func (r *memOrders) UpdateStatus(id, status string) error {
	o, ok := r.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}
func (r *memOrders) Delete(id string) error { delete(r.orders, id); return nil }

type memCatalog struct {
	products []*entity.ProductStock
}

func (r *memCatalog) Upsert(p *entity.ProductStock) error { return nil }
func (r *memCatalog) GetByType(t string) (*entity.ProductStock, error) {
	for _, p := range r.products {
		if p.ProductType == t {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memCatalog) List() ([]*entity.ProductStock, error)         { return r.products, nil }
func (r *memCatalog) GetForUpdate(t string) (*entity.ProductStock, error) { return r.GetByType(t) }
func (r *memCatalog) SetStock(t string, q decimal.Decimal) error    { return nil }
func (r *memCatalog) UpdatePrice(t string, p decimal.Decimal) error { return nil }

type fakeReceipts struct{ called bool }

func (f *fakeReceipts) GenerateOrderReceipt(order *entity.Order, products []*entity.ProductStock) ([]byte, error) {
	f.called = true
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

const testMinDelivery = "30000"

func newTestUseCase() (*orders.UseCase, *memOrders, *fakeReceipts) {
	repo := &memOrders{orders: map[string]*entity.Order{}}
	catalog := &memCatalog{products: []*entity.ProductStock{
		{ProductType: "arepa", Name: "Arepa", Price: d("2500"), Produced: true},
		{ProductType: "empanada", Name: "Empanada", Price: d("3000"), Produced: true},
		{ProductType: "almojabana", Name: "Almojábana", Price: d("2000")},
	}}
	receipts := &fakeReceipts{}
	uc := orders.New(repo, catalog, receipts, d(testMinDelivery))
	return uc, repo, receipts
}

func validRequest() dto.PlaceOrderRequest {
	return dto.PlaceOrderRequest{
		DeliveryDate:  "2026-09-05",
		DeliveryType:  "recogida",
		CustomerName:  "Carlos Pérez",
		CustomerPhone: "3001234567",
		PaymentMethod: "efectivo",
		Items: []dto.OrderItemRequest{
			{ProductType: "arepa", Quantity: d("10")},
			{ProductType: "empanada", Quantity: d("5")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// PlaceOrder
// ──────────────────────────────────────────────────────────────────────────────

func TestPlaceOrder_CalculaTotalesConPreciosDelCatalogo(t *testing.T) {
	uc, repo, _ := newTestUseCase()

	out, err := uc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	// 10 arepas × 2500 + 5 empanadas × 3000 = 40000
	assert.True(t, out.TotalAmount.Equal(d("40000")))
	assert.Equal(t, entity.OrderStatusActive, out.Status, "todo pedido nuevo nace activo")
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].UnitPrice.Equal(d("2500")), "el precio viene del catálogo")

	stored := repo.orders[out.ID]
	require.NotNil(t, stored)
	assert.True(t, stored.TotalAmount.Equal(d("40000")))
}

func TestPlaceOrder_LineasEnCeroSeDescartan(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := validRequest()
	in.Items = []dto.OrderItemRequest{
		{ProductType: "arepa", Quantity: d("0")},
		{ProductType: "empanada", Quantity: d("4")},
	}
	out, err := uc.PlaceOrder(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, out.Items, 1, "la línea en cero no cuenta")
	assert.True(t, out.TotalAmount.Equal(d("12000")))
}

func TestPlaceOrder_TodasLasLineasEnCero(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := validRequest()
	in.Items = []dto.OrderItemRequest{
		{ProductType: "arepa", Quantity: d("0")},
	}
	_, err := uc.PlaceOrder(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestPlaceOrder_ProductoDesconocido(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := validRequest()
	in.Items = []dto.OrderItemRequest{{ProductType: "pandebono", Quantity: d("3")}}
	_, err := uc.PlaceOrder(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceOrder_DomicilioBajoElMinimo(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := validRequest()
	in.DeliveryType = "domicilio"
	in.Address = "Calle 45 #12-34"
	in.Items = []dto.OrderItemRequest{{ProductType: "arepa", Quantity: d("4")}} // 10000
	_, err := uc.PlaceOrder(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrMinDeliveryAmount)
}

func TestPlaceOrder_DomicilioEnElMinimoExactoPasa(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := validRequest()
	in.DeliveryType = "domicilio"
	in.Address = "Calle 45 #12-34"
	in.Items = []dto.OrderItemRequest{{ProductType: "arepa", Quantity: d("12")}} // 30000 exacto
	out, err := uc.PlaceOrder(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(d(testMinDelivery)))
}

func TestPlaceOrder_RecogidaNoExigeMinimoNiDireccion(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := validRequest()
	in.Items = []dto.OrderItemRequest{{ProductType: "almojabana", Quantity: d("2")}} // 4000
	out, err := uc.PlaceOrder(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(d("4000")))
	assert.Empty(t, out.Address, "recogida no guarda dirección")
}

func TestPlaceOrder_DomicilioSinDireccion(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := validRequest()
	in.DeliveryType = "domicilio"
	in.Address = ""
	_, err := uc.PlaceOrder(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlaceOrder_ValidacionesDeFormulario(t *testing.T) {
	uc, _, _ := newTestUseCase()

	casos := []struct {
		nombre string
		mutar  func(*dto.PlaceOrderRequest)
	}{
		{"tipo de entrega desconocido", func(in *dto.PlaceOrderRequest) { in.DeliveryType = "dron" }},
		{"método de pago desconocido", func(in *dto.PlaceOrderRequest) { in.PaymentMethod = "cheque" }},
		{"sin nombre", func(in *dto.PlaceOrderRequest) { in.CustomerName = "" }},
		{"sin teléfono", func(in *dto.PlaceOrderRequest) { in.CustomerPhone = "" }},
		{"sin items", func(in *dto.PlaceOrderRequest) { in.Items = nil }},
		{"fecha de entrega inválida", func(in *dto.PlaceOrderRequest) { in.DeliveryDate = "mañana" }},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			in := validRequest()
			c.mutar(&in)
			_, err := uc.PlaceOrder(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus / Delete / Receipt
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_Valido(t *testing.T) {
	uc, repo, _ := newTestUseCase()
	out, err := uc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, uc.UpdateStatus(context.Background(), out.ID, entity.OrderStatusDelivered))
	assert.Equal(t, entity.OrderStatusDelivered, repo.orders[out.ID].Status)
}

func TestUpdateStatus_EstadoDesconocido(t *testing.T) {
	uc, _, _ := newTestUseCase()
	out, err := uc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	assert.ErrorIs(t, uc.UpdateStatus(context.Background(), out.ID, "enviada"), domain.ErrInvalidInput)
}

func TestUpdateStatus_PedidoInexistente(t *testing.T) {
	uc, _, _ := newTestUseCase()
	assert.ErrorIs(t, uc.UpdateStatus(context.Background(), "no-existe", entity.OrderStatusCancelled), domain.ErrNotFound)
}

func TestDelete_PedidoInexistente(t *testing.T) {
	uc, _, _ := newTestUseCase()
	assert.ErrorIs(t, uc.Delete(context.Background(), "no-existe"), domain.ErrNotFound)
}

func TestReceipt_GeneraPDF(t *testing.T) {
	uc, _, receipts := newTestUseCase()
	out, err := uc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	data, err := uc.Receipt(context.Background(), out.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.True(t, receipts.called)
}

func TestList_FiltraPorEstado(t *testing.T) {
	uc, _, _ := newTestUseCase()
	a, err := uc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = uc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)
	require.NoError(t, uc.UpdateStatus(context.Background(), a.ID, entity.OrderStatusCancelled))

	activos, err := uc.List(context.Background(), entity.OrderStatusActive, "")
	require.NoError(t, err)
	assert.Len(t, activos, 1)

	_, err = uc.List(context.Background(), "enviada", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_FiltroHoyAcotaAlDiaLocal(t *testing.T) {
	uc, repo, _ := newTestUseCase()

	_, err := uc.List(context.Background(), "", "today")
	require.NoError(t, err)

	now := time.Now()
	medianoche := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	require.NotNil(t, repo.lastFilter.DeliveryFrom)
	require.NotNil(t, repo.lastFilter.DeliveryTo)
	assert.True(t, repo.lastFilter.DeliveryFrom.Equal(medianoche),
		"el filtro debe usar la medianoche local, no el corte del día UTC")
	assert.True(t, repo.lastFilter.DeliveryTo.Equal(medianoche))

	_, err = uc.List(context.Background(), "", "upcoming")
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.DeliveryFrom)
	assert.True(t, repo.lastFilter.DeliveryFrom.Equal(medianoche))
	assert.Nil(t, repo.lastFilter.DeliveryTo)
}
