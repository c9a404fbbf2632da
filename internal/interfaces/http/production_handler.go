package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/laabuela/areperia-api/internal/application/dto"
	"github.com/laabuela/areperia-api/internal/application/ledger"
	"github.com/laabuela/areperia-api/internal/domain"
)

// ProductionHandler maneja las tandas de producción (protegido).
type ProductionHandler struct {
	uc *ledger.UseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *ledger.UseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar tanda de producción
// @Description  Suma producto terminado, descuenta materias primas y deja un
//
//	movimiento firmado por cada saldo tocado, todo en una transacción.
//
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordProductionRequest  true  "date, product_type, quantity, materials_used"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production [post]
func (h *ProductionHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.RecordProduction(c.Context(), in)
	if err != nil {
		return mapLedgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "message": "producción registrada"})
}

// List godoc
// @Summary      Listar tandas de producción con su costo de materiales
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "máximo de filas (default 50)"
// @Success      200  {array}  dto.ProductionResponse
// @Router       /api/production [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	q.DefaultLimit(50)
	list, err := h.uc.ListProductions(c.Context(), q.Limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Delete godoc
// @Summary      Eliminar tanda de producción
// @Description  Revierte los saldos al estado previo y borra los movimientos
//
//	ligados a la tanda.
//
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la tanda"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/production/{id} [delete]
func (h *ProductionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteProduction(c.Context(), c.Params("id")); err != nil {
		return mapLedgerError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producción eliminada"})
}

func mapLedgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotProduced):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_PRODUCED", Message: "el producto no es de producción propia"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
