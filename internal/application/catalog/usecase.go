package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/laabuela/areperia-api/internal/application/dto"
	"github.com/laabuela/areperia-api/internal/application/ledger"
	"github.com/laabuela/areperia-api/internal/domain"
	"github.com/laabuela/areperia-api/internal/domain/entity"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

// UseCase mantenimiento del catálogo: materias primas y precios de producto.
// Las operaciones que mueven saldos viven en el paquete ledger; aquí solo
// atributos (nombre, unidad, precio, nivel mínimo).
type UseCase struct {
	materials   repository.MaterialRepository
	products    repository.ProductStockRepository
	stockMovs   repository.StockMovementRepository
	productMovs repository.ProductMovementRepository
	tx          ledger.TxRunner
}

// New construye el caso de uso de catálogo.
func New(
	materials repository.MaterialRepository,
	products repository.ProductStockRepository,
	stockMovs repository.StockMovementRepository,
	productMovs repository.ProductMovementRepository,
	tx ledger.TxRunner,
) *UseCase {
	return &UseCase{materials: materials, products: products, stockMovs: stockMovs, productMovs: productMovs, tx: tx}
}

// CreateMaterial da de alta una materia prima con saldo cero.
func (uc *UseCase) CreateMaterial(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if in.Name == "" || in.Unit == "" || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.materials.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	m := &entity.Material{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Unit:          in.Unit,
		Price:         in.Price,
		StockQuantity: decimal.Zero,
		MinStockLevel: in.MinStockLevel,
		UpdatedAt:     time.Now(),
	}
	if err := uc.materials.Create(m); err != nil {
		return nil, err
	}
	resp := dto.ToMaterialResponse(m)
	return &resp, nil
}

// UpdateMaterial actualiza precio y nivel mínimo de una materia prima.
func (uc *UseCase) UpdateMaterial(ctx context.Context, id string, in dto.UpdateMaterialRequest) error {
	if in.Price.LessThan(decimal.Zero) || in.MinStockLevel.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	m, err := uc.materials.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	m.Price = in.Price
	m.MinStockLevel = in.MinStockLevel
	m.UpdatedAt = time.Now()
	return uc.materials.Update(m)
}

// DeleteMaterial elimina la materia prima y su historial de movimientos.
// Ambos borrados van en una transacción: si falla el segundo no queda un
// material vivo con su historial ya destruido.
func (uc *UseCase) DeleteMaterial(ctx context.Context, id string) error {
	m, err := uc.materials.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(
		materials repository.MaterialRepository,
		_ repository.ProductStockRepository,
		stockMovs repository.StockMovementRepository,
		_ repository.ProductMovementRepository,
		_ repository.ProductionRepository,
		_ repository.SaleRepository,
	) error {
		if err := stockMovs.DeleteByMaterial(id); err != nil {
			return err
		}
		return materials.Delete(id)
	})
}

// ListMaterials devuelve el catálogo de materias primas con sus saldos.
func (uc *UseCase) ListMaterials(ctx context.Context) ([]dto.MaterialResponse, error) {
	list, err := uc.materials.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ToMaterialResponse(m))
	}
	return out, nil
}

// ListProducts devuelve el catálogo de productos con precios y saldos.
// Es público: el formulario de pedidos lo usa para mostrar precios vigentes.
func (uc *UseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProductResponse(p))
	}
	return out, nil
}

// UpdateProductPrice cambia el precio de venta vigente. No genera movimiento:
// los precios no son saldos del libro.
func (uc *UseCase) UpdateProductPrice(ctx context.Context, productType string, price decimal.Decimal) error {
	if price.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	p, err := uc.products.GetByType(productType)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.products.UpdatePrice(productType, price)
}

// MaterialMovements devuelve el historial de movimientos de un material.
func (uc *UseCase) MaterialMovements(ctx context.Context, materialID string, limit int) ([]dto.MovementResponse, error) {
	m, err := uc.materials.GetByID(materialID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.stockMovs.ListByMaterial(materialID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, mv := range movs {
		out = append(out, dto.MovementResponse{
			ID:            mv.ID,
			MaterialID:    mv.MaterialID,
			MaterialName:  m.Name,
			MovementType:  mv.MovementType,
			Quantity:      mv.Quantity,
			ReferenceType: mv.ReferenceType,
			ReferenceID:   mv.ReferenceID,
			Notes:         mv.Notes,
			CreatedAt:     mv.CreatedAt,
		})
	}
	return out, nil
}

// StockOverview arma la vista de stock: saldos de materias primas y productos
// más los últimos movimientos de cada libro.
func (uc *UseCase) StockOverview(ctx context.Context, limit int) (*dto.StockOverviewResponse, error) {
	materials, err := uc.materials.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	matMovs, err := uc.stockMovs.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	prodMovs, err := uc.productMovs.ListRecent(limit)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(materials))
	for _, m := range materials {
		names[m.ID] = m.Name
	}

	resp := &dto.StockOverviewResponse{}
	for _, m := range materials {
		resp.Materials = append(resp.Materials, dto.ToMaterialResponse(m))
	}
	for _, p := range products {
		resp.Products = append(resp.Products, dto.ToProductResponse(p))
	}
	for _, mv := range matMovs {
		resp.MaterialMovement = append(resp.MaterialMovement, dto.MovementResponse{
			ID:            mv.ID,
			MaterialID:    mv.MaterialID,
			MaterialName:  names[mv.MaterialID],
			MovementType:  mv.MovementType,
			Quantity:      mv.Quantity,
			ReferenceType: mv.ReferenceType,
			ReferenceID:   mv.ReferenceID,
			Notes:         mv.Notes,
			CreatedAt:     mv.CreatedAt,
		})
	}
	for _, mv := range prodMovs {
		resp.ProductMovement = append(resp.ProductMovement, dto.MovementResponse{
			ID:            mv.ID,
			ProductType:   mv.ProductType,
			MovementType:  mv.MovementType,
			Quantity:      mv.Quantity,
			ReferenceType: mv.ReferenceType,
			ReferenceID:   mv.ReferenceID,
			Notes:         mv.Notes,
			CreatedAt:     mv.CreatedAt,
		})
	}
	return resp, nil
}
