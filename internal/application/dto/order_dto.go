package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/laabuela/areperia-api/internal/domain/entity"
)

// OrderItemRequest una línea del formulario público. El precio NO viene del
// cliente: se toma del catálogo vigente al crear el pedido.
type OrderItemRequest struct {
	ProductType string          `json:"product_type" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// PlaceOrderRequest body para POST /api/orders (público).
type PlaceOrderRequest struct {
	DeliveryDate  string             `json:"delivery_date" validate:"required"`
	DeliveryType  string             `json:"delivery_type" validate:"required,oneof=domicilio recogida"`
	CustomerName  string             `json:"customer_name" validate:"required,min=2,max=120"`
	CustomerPhone string             `json:"customer_phone" validate:"required,min=7,max=20"`
	Address       string             `json:"address,omitempty" validate:"max=300"`
	PaymentMethod string             `json:"payment_method" validate:"required,oneof=efectivo transferencia tarjeta"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes         string             `json:"notes,omitempty" validate:"max=500"`
}

// UpdateOrderStatusRequest body para POST /api/orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse línea de pedido con precios congelados.
type OrderItemResponse struct {
	ProductType string          `json:"product_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// OrderResponse un pedido completo.
type OrderResponse struct {
	ID            string              `json:"id"`
	OrderDate     string              `json:"order_date"`
	DeliveryDate  string              `json:"delivery_date"`
	DeliveryType  string              `json:"delivery_type"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone"`
	Address       string              `json:"address,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	PaymentMethod string              `json:"payment_method"`
	Status        string              `json:"status"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

// ToOrderResponse convierte la entidad al DTO de respuesta.
func ToOrderResponse(o *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductType: it.ProductType,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return OrderResponse{
		ID:            o.ID,
		OrderDate:     o.OrderDate.Format("2006-01-02"),
		DeliveryDate:  o.DeliveryDate.Format("2006-01-02"),
		DeliveryType:  o.DeliveryType,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Address:       o.Address,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		PaymentMethod: o.PaymentMethod,
		Status:        o.Status,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
	}
}
