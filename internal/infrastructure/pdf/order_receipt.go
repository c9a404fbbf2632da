// Package pdf genera el comprobante imprimible de un pedido.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  N° Pedido + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Teléfono + Entrega / Dirección           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL + método de pago + notas                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/laabuela/areperia-api/internal/application/orders"
	"github.com/laabuela/areperia-api/internal/domain/entity"
)

var _ orders.ReceiptGenerator = (*OrderReceiptGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 140, Green: 60, Blue: 20}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// esCO imprime montos con separador de miles colombiano (25.000).
var esCO = message.NewPrinter(language.Spanish)

// OrderReceiptGenerator implementa orders.ReceiptGenerator usando Maroto v2.
type OrderReceiptGenerator struct {
	businessName string
}

// NewOrderReceiptGenerator construye el generador. businessName encabeza el comprobante.
func NewOrderReceiptGenerator(businessName string) *OrderReceiptGenerator {
	return &OrderReceiptGenerator{businessName: businessName}
}

// GenerateOrderReceipt genera el PDF y devuelve sus bytes. products aporta los
// nombres legibles de los productos del pedido.
func (g *OrderReceiptGenerator) GenerateOrderReceipt(order *entity.Order, products []*entity.ProductStock) ([]byte, error) {
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ProductType] = p.Name
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de pedido", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(order.Items, names) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	if order.Notes != "" {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Notas: "+order.Notes, props.Text{Size: 8, Color: colorGray, Top: 2}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: negocio (izq) y número de pedido + fechas (der).
func (g *OrderReceiptGenerator) headerRow(order *entity.Order) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de pedido", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PEDIDO "+shortID(order.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Pedido: "+order.OrderDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
			text.New("Entrega: "+order.DeliveryDate.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente y modalidad de entrega.
func customerRow(order *entity.Order) core.Row {
	entrega := "Recoge en tienda"
	if order.DeliveryType == entity.DeliveryTypeHome {
		entrega = "Domicilio: " + order.Address
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(order.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   %s", order.CustomerPhone, entrega),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func tableItemRows(items []entity.OrderItem, names map[string]string) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := names[it.ProductType]
		if name == "" {
			name = it.ProductType
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				it.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				formatCOP(it.UnitPrice.InexactFloat64()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				formatCOP(it.Total.InexactFloat64()),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRow(order *entity.Order) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Pago: "+order.PaymentMethod, props.Text{
				Size: 9, Top: 3, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("TOTAL: "+formatCOP(order.TotalAmount.InexactFloat64()), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			}),
		),
	)
}

// formatCOP imprime un monto en pesos sin decimales: $ 25.000.
func formatCOP(v float64) string {
	return esCO.Sprintf("$ %.0f", v)
}

// shortID recorta el UUID para mostrarlo como número de pedido.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
