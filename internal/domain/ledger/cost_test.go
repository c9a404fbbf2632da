package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/laabuela/areperia-api/internal/domain/entity"
	"github.com/laabuela/areperia-api/internal/domain/ledger"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestProductionCost_SumaConsumosPorPrecio(t *testing.T) {
	materials := []*entity.Material{
		{ID: "harina", Price: d("4500")},
		{ID: "queso", Price: d("18000")},
	}
	used := map[string]decimal.Decimal{
		"harina": d("4"),   // 18000
		"queso":  d("1.5"), // 27000
	}
	cost := ledger.ProductionCost(used, materials)
	assert.True(t, cost.Equal(d("45000")), "4×4500 + 1.5×18000 = 45000, fue %s", cost)
}

func TestProductionCost_MaterialBorradoCuentaCero(t *testing.T) {
	materials := []*entity.Material{{ID: "harina", Price: d("4500")}}
	used := map[string]decimal.Decimal{
		"harina":    d("2"),
		"fantasmas": d("99"), // ya no está en el catálogo
	}
	cost := ledger.ProductionCost(used, materials)
	assert.True(t, cost.Equal(d("9000")))
}

func TestProductionCost_SinConsumos(t *testing.T) {
	assert.True(t, ledger.ProductionCost(nil, nil).IsZero())
}

func TestAdjustmentDelta(t *testing.T) {
	assert.True(t, ledger.AdjustmentDelta(d("20"), d("17.5")).Equal(d("-2.5")),
		"bajar el saldo produce delta negativo")
	assert.True(t, ledger.AdjustmentDelta(d("10"), d("14")).Equal(d("4")))
	assert.True(t, ledger.AdjustmentDelta(d("8"), d("8")).IsZero())
}
