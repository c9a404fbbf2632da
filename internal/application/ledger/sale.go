package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laabuela/areperia-api/internal/application/dto"
	"github.com/laabuela/areperia-api/internal/domain"
	"github.com/laabuela/areperia-api/internal/domain/entity"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

// RecordSale registra una venta de mostrador: inserta la venta con total
// calculado y descuenta el producto con su movimiento (-cantidad, ref venta).
func (uc *UseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (string, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return "", err
	}
	if in.ProductType == "" || !in.Quantity.GreaterThan(decimal.Zero) || in.UnitPrice.LessThan(decimal.Zero) {
		return "", domain.ErrInvalidInput
	}
	product, err := uc.products.GetByType(in.ProductType)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", domain.ErrNotFound
	}

	now := time.Now()
	saleID := uuid.New().String()

	err = uc.txRunner.Run(ctx, func(
		_ repository.MaterialRepository,
		products repository.ProductStockRepository,
		_ repository.StockMovementRepository,
		productMovs repository.ProductMovementRepository,
		_ repository.ProductionRepository,
		sales repository.SaleRepository,
	) error {
		sale := &entity.Sale{
			ID:           saleID,
			Date:         date,
			ProductType:  in.ProductType,
			Quantity:     in.Quantity,
			UnitPrice:    in.UnitPrice,
			TotalPrice:   in.Quantity.Mul(in.UnitPrice),
			CustomerName: in.CustomerName,
			Notes:        in.Notes,
			CreatedAt:    now,
		}
		if err := sales.Create(sale); err != nil {
			return err
		}

		ps, err := products.GetForUpdate(in.ProductType)
		if err != nil {
			return err
		}
		if ps == nil {
			return domain.ErrNotFound
		}
		if err := products.SetStock(in.ProductType, ps.StockQuantity.Sub(in.Quantity)); err != nil {
			return err
		}

		notes := in.CustomerName
		if notes == "" {
			notes = "Venta"
		}
		mov := &entity.ProductStockMovement{
			ProductType:   in.ProductType,
			MovementType:  entity.MovementTypeSale,
			Quantity:      in.Quantity.Neg(),
			ReferenceType: entity.ReferenceSale,
			ReferenceID:   saleID,
			Notes:         notes,
			CreatedAt:     now,
		}
		return productMovs.Create(mov)
	})
	if err != nil {
		return "", err
	}
	return saleID, nil
}

// DeleteSale borra una venta revirtiendo el saldo y eliminando sus movimientos.
func (uc *UseCase) DeleteSale(ctx context.Context, saleID string) error {
	if saleID == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.MaterialRepository,
		products repository.ProductStockRepository,
		_ repository.StockMovementRepository,
		productMovs repository.ProductMovementRepository,
		_ repository.ProductionRepository,
		sales repository.SaleRepository,
	) error {
		sale, err := sales.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}

		ps, err := products.GetForUpdate(sale.ProductType)
		if err != nil {
			return err
		}
		if ps != nil {
			if err := products.SetStock(sale.ProductType, ps.StockQuantity.Add(sale.Quantity)); err != nil {
				return err
			}
		}

		if err := productMovs.DeleteByReference(entity.ReferenceSale, saleID); err != nil {
			return err
		}
		return sales.Delete(saleID)
	})
}
