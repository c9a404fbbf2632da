package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/laabuela/areperia-api/internal/domain/entity"
)

// ProductionCost calcula el costo en materias primas de una tanda de producción
// (servicio de dominio): suma de cantidad consumida * precio del material.
// Los materiales consumidos que no estén en el catálogo se ignoran (costo 0).
func ProductionCost(used map[string]decimal.Decimal, materials []*entity.Material) decimal.Decimal {
	prices := make(map[string]decimal.Decimal, len(materials))
	for _, m := range materials {
		prices[m.ID] = m.Price
	}
	total := decimal.Zero
	for id, amount := range used {
		total = total.Add(amount.Mul(prices[id]))
	}
	return total
}

// AdjustmentDelta devuelve el movimiento a registrar al fijar un saldo en
// newQuantity: delta = nuevo - actual. El log guarda el delta, no el saldo.
func AdjustmentDelta(current, newQuantity decimal.Decimal) decimal.Decimal {
	return newQuantity.Sub(current)
}
