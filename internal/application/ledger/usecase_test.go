package ledger_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laabuela/areperia-api/internal/application/dto"
	"github.com/laabuela/areperia-api/internal/application/ledger"
	"github.com/laabuela/areperia-api/internal/domain"
	"github.com/laabuela/areperia-api/internal/domain/entity"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// memStore agrupa el estado en memoria que comparten los fakes: sin BD, la
// "transacción" es directa (los tests no ejercitan rollback, solo semántica).
type memStore struct {
	materials   map[string]*entity.Material
	products    map[string]*entity.ProductStock
	stockMovs   []*entity.StockMovement
	productMovs []*entity.ProductStockMovement
	productions map[string]*entity.Production
	sales       map[string]*entity.Sale
}

func newMemStore() *memStore {
	return &memStore{
		materials:   map[string]*entity.Material{},
		products:    map[string]*entity.ProductStock{},
		productions: map[string]*entity.Production{},
		sales:       map[string]*entity.Sale{},
	}
}

type memMaterials struct{ s *memStore }

func (r *memMaterials) Create(m *entity.Material) error { r.s.materials[m.ID] = m; return nil }
func (r *memMaterials) GetByID(id string) (*entity.Material, error) {
	return r.s.materials[id], nil
}
func (r *memMaterials) GetByName(name string) (*entity.Material, error) {
	for _, m := range r.s.materials {
		if m.Name == name {
			return m, nil
		}
	}
	return nil, nil
}
func (r *memMaterials) Update(m *entity.Material) error { r.s.materials[m.ID] = m; return nil }
func (r *memMaterials) List() ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.s.materials {
		out = append(out, m)
	}
	return out, nil
}
func (r *memMaterials) Delete(id string) error { delete(r.s.materials, id); return nil }
func (r *memMaterials) GetForUpdate(id string) (*entity.Material, error) {
	return r.s.materials[id], nil
}
func (r *memMaterials) SetStock(id string, q decimal.Decimal) error {
	m, ok := r.s.materials[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.StockQuantity = q
	return nil
}

type memProducts struct{ s *memStore }

func (r *memProducts) Upsert(p *entity.ProductStock) error { r.s.products[p.ProductType] = p; return nil }
func (r *memProducts) GetByType(t string) (*entity.ProductStock, error) {
	return r.s.products[t], nil
}
func (r *memProducts) List() ([]*entity.ProductStock, error) {
	var out []*entity.ProductStock
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *memProducts) GetForUpdate(t string) (*entity.ProductStock, error) {
	return r.s.products[t], nil
}
func (r *memProducts) SetStock(t string, q decimal.Decimal) error {
	p, ok := r.s.products[t]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity = q
	return nil
}
func (r *memProducts) UpdatePrice(t string, price decimal.Decimal) error {
	p, ok := r.s.products[t]
	if !ok {
		return domain.ErrNotFound
	}
	p.Price = price
	return nil
}

type memStockMovs struct{ s *memStore }

func (r *memStockMovs) Create(m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	r.s.stockMovs = append(r.s.stockMovs, m)
	return nil
}
func (r *memStockMovs) ListRecent(limit int) ([]*entity.StockMovement, error) {
	return r.s.stockMovs, nil
}
func (r *memStockMovs) ListByMaterial(id string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.stockMovs {
		if m.MaterialID == id {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *memStockMovs) DeleteByReference(refType, refID string) error {
	var keep []*entity.StockMovement
	for _, m := range r.s.stockMovs {
		if m.ReferenceType != refType || m.ReferenceID != refID {
			keep = append(keep, m)
		}
	}
	r.s.stockMovs = keep
	return nil
}
func (r *memStockMovs) DeleteByMaterial(id string) error {
	var keep []*entity.StockMovement
	for _, m := range r.s.stockMovs {
		if m.MaterialID != id {
			keep = append(keep, m)
		}
	}
	r.s.stockMovs = keep
	return nil
}

type memProductMovs struct{ s *memStore }

func (r *memProductMovs) Create(m *entity.ProductStockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	r.s.productMovs = append(r.s.productMovs, m)
	return nil
}
func (r *memProductMovs) ListRecent(limit int) ([]*entity.ProductStockMovement, error) {
	return r.s.productMovs, nil
}
func (r *memProductMovs) DeleteByReference(refType, refID string) error {
	var keep []*entity.ProductStockMovement
	for _, m := range r.s.productMovs {
		if m.ReferenceType != refType || m.ReferenceID != refID {
			keep = append(keep, m)
		}
	}
	r.s.productMovs = keep
	return nil
}

type memProductions struct{ s *memStore }

func (r *memProductions) Create(p *entity.Production) error { r.s.productions[p.ID] = p; return nil }
func (r *memProductions) GetByID(id string) (*entity.Production, error) {
	return r.s.productions[id], nil
}
func (r *memProductions) List(limit int) ([]*entity.Production, error) {
	var out []*entity.Production
	for _, p := range r.s.productions {
		out = append(out, p)
	}
	return out, nil
}
func (r *memProductions) Delete(id string) error { delete(r.s.productions, id); return nil }

type memSales struct{ s *memStore }

func (r *memSales) Create(v *entity.Sale) error { r.s.sales[v.ID] = v; return nil }
func (r *memSales) GetByID(id string) (*entity.Sale, error) {
	return r.s.sales[id], nil
}
func (r *memSales) List(limit int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, v := range r.s.sales {
		out = append(out, v)
	}
	return out, nil
}
func (r *memSales) Delete(id string) error { delete(r.s.sales, id); return nil }

// memTxRunner pasa los fakes como repos "atados a la tx".
type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(
	materials repository.MaterialRepository,
	products repository.ProductStockRepository,
	stockMovs repository.StockMovementRepository,
	productMovs repository.ProductMovementRepository,
	productions repository.ProductionRepository,
	sales repository.SaleRepository,
) error) error {
	return fn(
		&memMaterials{t.s}, &memProducts{t.s},
		&memStockMovs{t.s}, &memProductMovs{t.s},
		&memProductions{t.s}, &memSales{t.s},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// newTestUseCase arma el caso de uso con un catálogo mínimo: harina y queso
// como materias primas, arepa (producida) y almojábana (comprada).
func newTestUseCase(t *testing.T) (*ledger.UseCase, *memStore) {
	t.Helper()
	s := newMemStore()
	s.materials["mat-harina"] = &entity.Material{
		ID: "mat-harina", Name: "Harina de maíz", Unit: "kg",
		Price: d("4500"), StockQuantity: d("20"),
	}
	s.materials["mat-queso"] = &entity.Material{
		ID: "mat-queso", Name: "Queso", Unit: "kg",
		Price: d("18000"), StockQuantity: d("5"),
	}
	s.products["arepa"] = &entity.ProductStock{
		ProductType: "arepa", Name: "Arepa", Unit: "unidad",
		Price: d("2500"), StockQuantity: d("30"), Produced: true,
	}
	s.products["almojabana"] = &entity.ProductStock{
		ProductType: "almojabana", Name: "Almojábana", Unit: "unidad",
		Price: d("2000"), StockQuantity: d("10"), Produced: false,
	}
	uc := ledger.New(&memTxRunner{s}, &memMaterials{s}, &memProducts{s}, &memProductions{s}, &memSales{s})
	return uc, s
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordProduction
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordProduction_ActualizaSaldosYMovimientosPareados(t *testing.T) {
	uc, s := newTestUseCase(t)

	id, err := uc.RecordProduction(context.Background(), dto.RecordProductionRequest{
		Date:        "2026-08-30",
		ProductType: "arepa",
		Quantity:    d("50"),
		MaterialsUsed: map[string]decimal.Decimal{
			"mat-harina": d("4"),
			"mat-queso":  d("1.5"),
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	// Saldos: materias primas descontadas, producto sumado
	assert.True(t, s.materials["mat-harina"].StockQuantity.Equal(d("16")),
		"harina: 20 - 4 = 16")
	assert.True(t, s.materials["mat-queso"].StockQuantity.Equal(d("3.5")),
		"queso: 5 - 1.5 = 3.5")
	assert.True(t, s.products["arepa"].StockQuantity.Equal(d("80")),
		"arepa: 30 + 50 = 80")

	// Cada saldo tocado tiene su movimiento firmado con la misma referencia
	require.Len(t, s.stockMovs, 2)
	for _, mv := range s.stockMovs {
		assert.Equal(t, entity.MovementTypeProduction, mv.MovementType)
		assert.Equal(t, entity.ReferenceProduction, mv.ReferenceType)
		assert.Equal(t, id, mv.ReferenceID)
		assert.True(t, mv.Quantity.IsNegative(), "los consumos se registran negativos")
	}
	require.Len(t, s.productMovs, 1)
	assert.True(t, s.productMovs[0].Quantity.Equal(d("50")))
	assert.Equal(t, id, s.productMovs[0].ReferenceID)

	// La tanda quedó persistida con su receta
	prod := s.productions[id]
	require.NotNil(t, prod)
	assert.True(t, prod.MaterialsUsed["mat-harina"].Equal(d("4")))
}

func TestRecordProduction_ProductoCompradoRechazado(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.RecordProduction(context.Background(), dto.RecordProductionRequest{
		Date:        "2026-08-30",
		ProductType: "almojabana",
		Quantity:    d("10"),
	})
	assert.ErrorIs(t, err, domain.ErrNotProduced)
}

func TestRecordProduction_CantidadInvalida(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.RecordProduction(context.Background(), dto.RecordProductionRequest{
		Date:        "2026-08-30",
		ProductType: "arepa",
		Quantity:    d("0"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RecordProduction(context.Background(), dto.RecordProductionRequest{
		Date:        "2026-08-30",
		ProductType: "arepa",
		Quantity:    d("10"),
		MaterialsUsed: map[string]decimal.Decimal{
			"mat-harina": d("-2"),
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "consumo negativo debe rechazarse")
}

func TestRecordProduction_FechaInvalida(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.RecordProduction(context.Background(), dto.RecordProductionRequest{
		Date:        "30/08/2026",
		ProductType: "arepa",
		Quantity:    d("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El stock negativo NO se bloquea: producir con más material del disponible
// deja el saldo bajo cero y el movimiento lo documenta.
func TestRecordProduction_PermiteSaldoNegativo(t *testing.T) {
	uc, s := newTestUseCase(t)

	_, err := uc.RecordProduction(context.Background(), dto.RecordProductionRequest{
		Date:        "2026-08-30",
		ProductType: "arepa",
		Quantity:    d("100"),
		MaterialsUsed: map[string]decimal.Decimal{
			"mat-queso": d("8"), // solo hay 5
		},
	})
	require.NoError(t, err)
	assert.True(t, s.materials["mat-queso"].StockQuantity.Equal(d("-3")),
		"el saldo queda negativo, no se bloquea")
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteProduction
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteProduction_RevierteSaldosYBorraMovimientos(t *testing.T) {
	uc, s := newTestUseCase(t)

	id, err := uc.RecordProduction(context.Background(), dto.RecordProductionRequest{
		Date:        "2026-08-30",
		ProductType: "arepa",
		Quantity:    d("50"),
		MaterialsUsed: map[string]decimal.Decimal{
			"mat-harina": d("4"),
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduction(context.Background(), id))

	// Saldos de vuelta al estado previo, exacto
	assert.True(t, s.materials["mat-harina"].StockQuantity.Equal(d("20")))
	assert.True(t, s.products["arepa"].StockQuantity.Equal(d("30")))

	// Sin movimientos huérfanos ni fila de producción
	assert.Empty(t, s.stockMovs)
	assert.Empty(t, s.productMovs)
	assert.Nil(t, s.productions[id])
}

func TestDeleteProduction_NoExiste(t *testing.T) {
	uc, _ := newTestUseCase(t)
	err := uc.DeleteProduction(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si un material de la receta fue borrado después de la tanda, el delete
// sigue adelante y solo revierte lo que aún existe.
func TestDeleteProduction_MaterialBorradoSeIgnora(t *testing.T) {
	uc, s := newTestUseCase(t)

	id, err := uc.RecordProduction(context.Background(), dto.RecordProductionRequest{
		Date:        "2026-08-30",
		ProductType: "arepa",
		Quantity:    d("10"),
		MaterialsUsed: map[string]decimal.Decimal{
			"mat-harina": d("2"),
			"mat-queso":  d("1"),
		},
	})
	require.NoError(t, err)

	delete(s.materials, "mat-queso")

	require.NoError(t, uc.DeleteProduction(context.Background(), id))
	assert.True(t, s.materials["mat-harina"].StockQuantity.Equal(d("20")),
		"la harina sí se devuelve")
	assert.True(t, s.products["arepa"].StockQuantity.Equal(d("30")))
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale / DeleteSale
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_DescuentaYCalculaTotal(t *testing.T) {
	uc, s := newTestUseCase(t)

	id, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		Date:         "2026-08-30",
		ProductType:  "arepa",
		Quantity:     d("12"),
		UnitPrice:    d("2500"),
		CustomerName: "Doña Marta",
	})
	require.NoError(t, err)

	sale := s.sales[id]
	require.NotNil(t, sale)
	assert.True(t, sale.TotalPrice.Equal(d("30000")), "12 × 2500 = 30000")

	assert.True(t, s.products["arepa"].StockQuantity.Equal(d("18")), "30 - 12 = 18")

	require.Len(t, s.productMovs, 1)
	mv := s.productMovs[0]
	assert.Equal(t, entity.MovementTypeSale, mv.MovementType)
	assert.True(t, mv.Quantity.Equal(d("-12")))
	assert.Equal(t, entity.ReferenceSale, mv.ReferenceType)
	assert.Equal(t, id, mv.ReferenceID)
	assert.Equal(t, "Doña Marta", mv.Notes)
}

func TestRecordSale_ProductoDesconocido(t *testing.T) {
	uc, _ := newTestUseCase(t)
	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		Date:        "2026-08-30",
		ProductType: "pandebono",
		Quantity:    d("3"),
		UnitPrice:   d("2000"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteSale_RevierteSaldoYBorraMovimiento(t *testing.T) {
	uc, s := newTestUseCase(t)

	id, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		Date:        "2026-08-30",
		ProductType: "arepa",
		Quantity:    d("12"),
		UnitPrice:   d("2500"),
	})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteSale(context.Background(), id))

	assert.True(t, s.products["arepa"].StockQuantity.Equal(d("30")))
	assert.Empty(t, s.productMovs)
	assert.Nil(t, s.sales[id])
}

// ──────────────────────────────────────────────────────────────────────────────
// Receive / Adjust
// ──────────────────────────────────────────────────────────────────────────────

func TestReceiveMaterial_SumaYRegistraEntrada(t *testing.T) {
	uc, s := newTestUseCase(t)

	err := uc.ReceiveMaterial(context.Background(), "mat-harina", d("25"), "")
	require.NoError(t, err)

	assert.True(t, s.materials["mat-harina"].StockQuantity.Equal(d("45")))
	require.Len(t, s.stockMovs, 1)
	assert.Equal(t, entity.MovementTypeIn, s.stockMovs[0].MovementType)
	assert.True(t, s.stockMovs[0].Quantity.Equal(d("25")))
	assert.Equal(t, "Entrada de stock", s.stockMovs[0].Notes)
}

func TestReceiveMaterial_CantidadNoPositiva(t *testing.T) {
	uc, _ := newTestUseCase(t)
	assert.ErrorIs(t, uc.ReceiveMaterial(context.Background(), "mat-harina", d("0"), ""), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.ReceiveMaterial(context.Background(), "mat-harina", d("-5"), ""), domain.ErrInvalidInput)
}

func TestAdjustMaterial_RegistraElDelta(t *testing.T) {
	uc, s := newTestUseCase(t)

	// Saldo actual 20, corrección a 17.5: el movimiento documenta -2.5
	err := uc.AdjustMaterial(context.Background(), "mat-harina", d("17.5"), "conteo físico")
	require.NoError(t, err)

	assert.True(t, s.materials["mat-harina"].StockQuantity.Equal(d("17.5")))
	require.Len(t, s.stockMovs, 1)
	mv := s.stockMovs[0]
	assert.Equal(t, entity.MovementTypeAdjustment, mv.MovementType)
	assert.True(t, mv.Quantity.Equal(d("-2.5")), "delta = nuevo - actual")
	assert.Equal(t, "conteo físico", mv.Notes)
}

func TestAdjustProduct_DeltaPositivo(t *testing.T) {
	uc, s := newTestUseCase(t)

	err := uc.AdjustProduct(context.Background(), "almojabana", d("14"), "")
	require.NoError(t, err)

	assert.True(t, s.products["almojabana"].StockQuantity.Equal(d("14")))
	require.Len(t, s.productMovs, 1)
	assert.True(t, s.productMovs[0].Quantity.Equal(d("4")), "10 → 14 = +4")
}

func TestAdjustMaterial_NegativoRechazado(t *testing.T) {
	uc, _ := newTestUseCase(t)
	assert.ErrorIs(t, uc.AdjustMaterial(context.Background(), "mat-harina", d("-1"), ""), domain.ErrInvalidInput)
}

func TestReceiveProduct_SumaCompra(t *testing.T) {
	uc, s := newTestUseCase(t)

	err := uc.ReceiveProduct(context.Background(), "almojabana", d("24"), "")
	require.NoError(t, err)

	assert.True(t, s.products["almojabana"].StockQuantity.Equal(d("34")))
	require.Len(t, s.productMovs, 1)
	assert.Equal(t, entity.MovementTypeIn, s.productMovs[0].MovementType)
	assert.Equal(t, "Compra de producto", s.productMovs[0].Notes)
}
