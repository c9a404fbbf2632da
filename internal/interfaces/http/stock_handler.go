package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/laabuela/areperia-api/internal/application/catalog"
	"github.com/laabuela/areperia-api/internal/application/dto"
	"github.com/laabuela/areperia-api/internal/application/ledger"
	"github.com/laabuela/areperia-api/internal/domain"
)

// StockHandler maneja entradas, correcciones y consulta de saldos (protegido).
type StockHandler struct {
	ledger  *ledger.UseCase
	catalog *catalog.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(ledgerUC *ledger.UseCase, catalogUC *catalog.UseCase) *StockHandler {
	return &StockHandler{ledger: ledgerUC, catalog: catalogUC}
}

// Overview godoc
// @Summary      Saldos actuales y movimientos recientes
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máximo de movimientos (default 20)"
// @Success      200  {object}  dto.StockOverviewResponse
// @Router       /api/stock [get]
func (h *StockHandler) Overview(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	q.DefaultLimit(20)
	out, err := h.catalog.StockOverview(c.Context(), q.Limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ReceiveMaterial godoc
// @Summary      Registrar entrada de materia prima
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del material"
// @Param        body  body  dto.ReceiveStockRequest  true  "quantity, notes"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/receive [post]
func (h *StockHandler) ReceiveMaterial(c *fiber.Ctx) error {
	var in dto.ReceiveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.ledger.ReceiveMaterial(c.Context(), c.Params("id"), in.Quantity, in.Notes); err != nil {
		return mapStockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "entrada registrada"})
}

// AdjustMaterial godoc
// @Summary      Corregir el saldo de una materia prima
// @Description  Fija el saldo en new_quantity; el movimiento registra el delta.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del material"
// @Param        body  body  dto.AdjustStockRequest  true  "new_quantity, notes"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/adjust [post]
func (h *StockHandler) AdjustMaterial(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.ledger.AdjustMaterial(c.Context(), c.Params("id"), in.NewQuantity, in.Notes); err != nil {
		return mapStockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "saldo corregido"})
}

// MaterialMovements godoc
// @Summary      Historial de movimientos de una materia prima
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del material"
// @Param        limit  query  int     false  "máximo de filas (default 50)"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/materials/{id}/movements [get]
func (h *StockHandler) MaterialMovements(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	q.DefaultLimit(50)
	list, err := h.catalog.MaterialMovements(c.Context(), c.Params("id"), q.Limit)
	if err != nil {
		return mapStockError(c, err)
	}
	return c.JSON(list)
}

// ReceiveProduct godoc
// @Summary      Registrar entrada de producto comprado
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        type  path  string                   true  "tipo de producto"
// @Param        body  body  dto.ReceiveStockRequest  true  "quantity, notes"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{type}/receive [post]
func (h *StockHandler) ReceiveProduct(c *fiber.Ctx) error {
	var in dto.ReceiveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.ledger.ReceiveProduct(c.Context(), c.Params("type"), in.Quantity, in.Notes); err != nil {
		return mapStockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "entrada registrada"})
}

// AdjustProduct godoc
// @Summary      Corregir el saldo de un producto
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        type  path  string                  true  "tipo de producto"
// @Param        body  body  dto.AdjustStockRequest  true  "new_quantity, notes"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{type}/adjust [post]
func (h *StockHandler) AdjustProduct(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.ledger.AdjustProduct(c.Context(), c.Params("type"), in.NewQuantity, in.Notes); err != nil {
		return mapStockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "saldo corregido"})
}

// UpdateProductPrice godoc
// @Summary      Actualizar el precio de venta de un producto
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        type  path  string                  true  "tipo de producto"
// @Param        body  body  dto.UpdatePriceRequest  true  "price"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{type}/price [put]
func (h *StockHandler) UpdateProductPrice(c *fiber.Ctx) error {
	var in dto.UpdatePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.catalog.UpdateProductPrice(c.Context(), c.Params("type"), in.Price); err != nil {
		return mapStockError(c, err)
	}
	return c.JSON(fiber.Map{"message": "precio actualizado"})
}

func mapStockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
