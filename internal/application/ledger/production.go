package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laabuela/areperia-api/internal/application/dto"
	"github.com/laabuela/areperia-api/internal/domain"
	"github.com/laabuela/areperia-api/internal/domain/entity"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

// RecordProduction registra una tanda de producción de forma atómica:
// inserta la fila de producción, descuenta cada materia prima consumida con su
// movimiento (-cantidad, ref producción) y suma el producto terminado con su
// movimiento (+cantidad, misma ref). Todo en una transacción.
func (uc *UseCase) RecordProduction(ctx context.Context, in dto.RecordProductionRequest) (string, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return "", err
	}
	if in.ProductType == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return "", domain.ErrInvalidInput
	}
	for _, amount := range in.MaterialsUsed {
		if !amount.GreaterThan(decimal.Zero) {
			return "", domain.ErrInvalidInput
		}
	}

	// Validar producto fuera de la tx: debe existir y ser de producción propia
	product, err := uc.products.GetByType(in.ProductType)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrNotFound
	}
	if !product.Produced {
		return "", domain.ErrNotProduced
	}

	now := time.Now()
	productionID := uuid.New().String()

	err = uc.txRunner.Run(ctx, func(
		materials repository.MaterialRepository,
		products repository.ProductStockRepository,
		stockMovs repository.StockMovementRepository,
		productMovs repository.ProductMovementRepository,
		productions repository.ProductionRepository,
		_ repository.SaleRepository,
	) error {
		prod := &entity.Production{
			ID:            productionID,
			Date:          date,
			ProductType:   in.ProductType,
			Quantity:      in.Quantity,
			MaterialsUsed: in.MaterialsUsed,
			Notes:         in.Notes,
			CreatedAt:     now,
		}
		if err := productions.Create(prod); err != nil {
			return err
		}

		// Descontar cada materia prima: saldo y movimiento con el mismo delta
		for materialID, amount := range in.MaterialsUsed {
			m, err := materials.GetForUpdate(materialID)
			if err != nil {
				return err
			}
			if m == nil {
				return domain.ErrNotFound
			}
			if err := materials.SetStock(materialID, m.StockQuantity.Sub(amount)); err != nil {
				return err
			}
			mov := &entity.StockMovement{
				MaterialID:    materialID,
				MovementType:  entity.MovementTypeProduction,
				Quantity:      amount.Neg(),
				ReferenceType: entity.ReferenceProduction,
				ReferenceID:   productionID,
				Notes:         fmt.Sprintf("Producción de %s", product.Name),
				CreatedAt:     now,
			}
			if err := stockMovs.Create(mov); err != nil {
				return err
			}
		}

		// Sumar el producto terminado
		ps, err := products.GetForUpdate(in.ProductType)
		if err != nil {
			return err
		}
		if ps == nil {
			return domain.ErrNotFound
		}
		if err := products.SetStock(in.ProductType, ps.StockQuantity.Add(in.Quantity)); err != nil {
			return err
		}
		pmov := &entity.ProductStockMovement{
			ProductType:   in.ProductType,
			MovementType:  entity.MovementTypeProduction,
			Quantity:      in.Quantity,
			ReferenceType: entity.ReferenceProduction,
			ReferenceID:   productionID,
			Notes:         "Producción",
			CreatedAt:     now,
		}
		return productMovs.Create(pmov)
	})
	if err != nil {
		return "", err
	}
	return productionID, nil
}

// DeleteProduction borra una tanda revirtiendo su efecto exacto: devuelve las
// materias primas consumidas, descuenta el producto terminado y elimina los
// movimientos que referencian la producción, junto con la fila misma.
func (uc *UseCase) DeleteProduction(ctx context.Context, productionID string) error {
	if productionID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		materials repository.MaterialRepository,
		products repository.ProductStockRepository,
		stockMovs repository.StockMovementRepository,
		productMovs repository.ProductMovementRepository,
		productions repository.ProductionRepository,
		_ repository.SaleRepository,
	) error {
		prod, err := productions.GetByID(productionID)
		if err != nil {
			return err
		}
		if prod == nil {
			return domain.ErrNotFound
		}

		// Devolver las materias primas consumidas
		for materialID, amount := range prod.MaterialsUsed {
			m, err := materials.GetForUpdate(materialID)
			if err != nil {
				return err
			}
			if m == nil {
				// Material borrado después de la producción: no hay saldo que devolver
				continue
			}
			if err := materials.SetStock(materialID, m.StockQuantity.Add(amount)); err != nil {
				return err
			}
		}

		// Descontar el producto terminado que esa tanda había sumado
		ps, err := products.GetForUpdate(prod.ProductType)
		if err != nil {
			return err
		}
		if ps != nil {
			if err := products.SetStock(prod.ProductType, ps.StockQuantity.Sub(prod.Quantity)); err != nil {
				return err
			}
		}

		if err := stockMovs.DeleteByReference(entity.ReferenceProduction, productionID); err != nil {
			return err
		}
		if err := productMovs.DeleteByReference(entity.ReferenceProduction, productionID); err != nil {
			return err
		}
		return productions.Delete(productionID)
	})
}
