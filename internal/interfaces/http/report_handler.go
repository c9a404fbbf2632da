package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/laabuela/areperia-api/internal/application/dto"
	"github.com/laabuela/areperia-api/internal/application/reports"
	"github.com/laabuela/areperia-api/internal/domain"
)

// ReportHandler maneja dashboard y reportes por período (protegido).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Resumen del día
// @Description  Producción y ventas de hoy, alertas de stock bajo y actividad reciente.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Period godoc
// @Summary      Reporte por período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period      query  string  false  "today | week | month | custom (default today)"
// @Param        start_date  query  string  false  "YYYY-MM-DD (solo custom)"
// @Param        end_date    query  string  false  "YYYY-MM-DD (solo custom)"
// @Success      200  {object}  dto.PeriodReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Period(c *fiber.Ctx) error {
	out, err := h.uc.PeriodReport(c.Context(), c.Query("period"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return mapReportError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar reporte por período a Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        period      query  string  false  "today | week | month | custom (default today)"
// @Param        start_date  query  string  false  "YYYY-MM-DD (solo custom)"
// @Param        end_date    query  string  false  "YYYY-MM-DD (solo custom)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.ExportPeriodReport(c.Context(), c.Query("period"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return mapReportError(c, err)
	}
	filename := fmt.Sprintf("reporte-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

func mapReportError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período o fechas inválidas"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
