package ledger

import (
	"context"

	"github.com/laabuela/areperia-api/internal/application/dto"
	ledgerdomain "github.com/laabuela/areperia-api/internal/domain/ledger"
)

// ListProductions devuelve las últimas tandas con su costo en materias primas
// (cantidad consumida * precio actual del material).
func (uc *UseCase) ListProductions(ctx context.Context, limit int) ([]dto.ProductionResponse, error) {
	list, err := uc.productions.List(limit)
	if err != nil {
		return nil, err
	}
	materials, err := uc.materials.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductionResponse{
			ID:            p.ID,
			Date:          p.Date.Format("2006-01-02"),
			ProductType:   p.ProductType,
			Quantity:      p.Quantity,
			MaterialsUsed: p.MaterialsUsed,
			MaterialsCost: ledgerdomain.ProductionCost(p.MaterialsUsed, materials),
			Notes:         p.Notes,
			CreatedAt:     p.CreatedAt,
		})
	}
	return out, nil
}

// ListSales devuelve las últimas ventas.
func (uc *UseCase) ListSales(ctx context.Context, limit int) ([]dto.SaleResponse, error) {
	list, err := uc.sales.List(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SaleResponse{
			ID:           s.ID,
			Date:         s.Date.Format("2006-01-02"),
			ProductType:  s.ProductType,
			Quantity:     s.Quantity,
			UnitPrice:    s.UnitPrice,
			TotalPrice:   s.TotalPrice,
			CustomerName: s.CustomerName,
			Notes:        s.Notes,
			CreatedAt:    s.CreatedAt,
		})
	}
	return out, nil
}
