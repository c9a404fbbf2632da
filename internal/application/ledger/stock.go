package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/laabuela/areperia-api/internal/domain"
	"github.com/laabuela/areperia-api/internal/domain/entity"
	ledgerdomain "github.com/laabuela/areperia-api/internal/domain/ledger"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

// ReceiveMaterial registra una entrada de materia prima (compra/recepción):
// saldo += cantidad y movimiento "in" con el mismo delta, sin referencia.
func (uc *UseCase) ReceiveMaterial(ctx context.Context, materialID string, quantity decimal.Decimal, notes string) error {
	if materialID == "" || !quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		materials repository.MaterialRepository,
		_ repository.ProductStockRepository,
		stockMovs repository.StockMovementRepository,
		_ repository.ProductMovementRepository,
		_ repository.ProductionRepository,
		_ repository.SaleRepository,
	) error {
		m, err := materials.GetForUpdate(materialID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		if err := materials.SetStock(materialID, m.StockQuantity.Add(quantity)); err != nil {
			return err
		}
		if notes == "" {
			notes = "Entrada de stock"
		}
		return stockMovs.Create(&entity.StockMovement{
			MaterialID:   materialID,
			MovementType: entity.MovementTypeIn,
			Quantity:     quantity,
			Notes:        notes,
			CreatedAt:    now,
		})
	})
}

// AdjustMaterial fija el saldo de una materia prima en newQuantity; el
// movimiento "adjustment" registra el delta contra el saldo anterior.
func (uc *UseCase) AdjustMaterial(ctx context.Context, materialID string, newQuantity decimal.Decimal, notes string) error {
	if materialID == "" || newQuantity.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		materials repository.MaterialRepository,
		_ repository.ProductStockRepository,
		stockMovs repository.StockMovementRepository,
		_ repository.ProductMovementRepository,
		_ repository.ProductionRepository,
		_ repository.SaleRepository,
	) error {
		m, err := materials.GetForUpdate(materialID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}
		delta := ledgerdomain.AdjustmentDelta(m.StockQuantity, newQuantity)
		if err := materials.SetStock(materialID, newQuantity); err != nil {
			return err
		}
		if notes == "" {
			notes = "Corrección de stock"
		}
		return stockMovs.Create(&entity.StockMovement{
			MaterialID:   materialID,
			MovementType: entity.MovementTypeAdjustment,
			Quantity:     delta,
			Notes:        notes,
			CreatedAt:    now,
		})
	})
}

// ReceiveProduct registra la compra de producto ya terminado (almojábanas,
// buñuelos de proveedor): saldo += cantidad y movimiento "in".
func (uc *UseCase) ReceiveProduct(ctx context.Context, productType string, quantity decimal.Decimal, notes string) error {
	if productType == "" || !quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		_ repository.MaterialRepository,
		products repository.ProductStockRepository,
		_ repository.StockMovementRepository,
		productMovs repository.ProductMovementRepository,
		_ repository.ProductionRepository,
		_ repository.SaleRepository,
	) error {
		ps, err := products.GetForUpdate(productType)
		if err != nil {
			return err
		}
		if ps == nil {
			return domain.ErrNotFound
		}
		if err := products.SetStock(productType, ps.StockQuantity.Add(quantity)); err != nil {
			return err
		}
		if notes == "" {
			notes = "Compra de producto"
		}
		return productMovs.Create(&entity.ProductStockMovement{
			ProductType:  productType,
			MovementType: entity.MovementTypeIn,
			Quantity:     quantity,
			Notes:        notes,
			CreatedAt:    now,
		})
	})
}

// AdjustProduct fija el saldo de un producto terminado en newQuantity.
func (uc *UseCase) AdjustProduct(ctx context.Context, productType string, newQuantity decimal.Decimal, notes string) error {
	if productType == "" || newQuantity.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		_ repository.MaterialRepository,
		products repository.ProductStockRepository,
		_ repository.StockMovementRepository,
		productMovs repository.ProductMovementRepository,
		_ repository.ProductionRepository,
		_ repository.SaleRepository,
	) error {
		ps, err := products.GetForUpdate(productType)
		if err != nil {
			return err
		}
		if ps == nil {
			return domain.ErrNotFound
		}
		delta := ledgerdomain.AdjustmentDelta(ps.StockQuantity, newQuantity)
		if err := products.SetStock(productType, newQuantity); err != nil {
			return err
		}
		if notes == "" {
			notes = "Corrección de stock"
		}
		return productMovs.Create(&entity.ProductStockMovement{
			ProductType:  productType,
			MovementType: entity.MovementTypeAdjustment,
			Quantity:     delta,
			Notes:        notes,
			CreatedAt:    now,
		})
	})
}
