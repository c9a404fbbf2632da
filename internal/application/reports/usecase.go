package reports

import (
	"context"
	"time"

	"github.com/laabuela/areperia-api/internal/application/dto"
	"github.com/laabuela/areperia-api/internal/domain"
	"github.com/laabuela/areperia-api/internal/domain/repository"
)

// Exporter serializa un reporte de período a un archivo descargable (.xlsx).
type Exporter interface {
	ExportPeriodReport(report *dto.PeriodReportResponse) ([]byte, error)
}

// UseCase dashboard y reportes por período sobre consultas de solo lectura.
type UseCase struct {
	repo     repository.ReportRepository
	exporter Exporter
}

// New construye el caso de uso de reportes.
func New(repo repository.ReportRepository, exporter Exporter) *UseCase {
	return &UseCase{repo: repo, exporter: exporter}
}

// Dashboard arma el resumen del día: producción, ventas, ingresos, alertas de
// stock bajo y últimas actividades.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	today := truncateDay(time.Now())

	production, err := uc.repo.ProductionByProduct(ctx, today, today)
	if err != nil {
		return nil, err
	}
	sales, err := uc.repo.SalesByProduct(ctx, today, today)
	if err != nil {
		return nil, err
	}
	revenue, err := uc.repo.TotalRevenue(ctx, today, today)
	if err != nil {
		return nil, err
	}
	lowMaterials, err := uc.repo.LowStockMaterials(ctx)
	if err != nil {
		return nil, err
	}
	lowProducts, err := uc.repo.LowStockProducts(ctx)
	if err != nil {
		return nil, err
	}
	activity, err := uc.repo.RecentActivity(ctx, 5)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		Date:         today.Format("2006-01-02"),
		TodayRevenue: revenue,
	}
	for _, p := range production {
		resp.TodayProduction = append(resp.TodayProduction, dto.ProductQtyDTO{ProductType: p.ProductType, Quantity: p.Quantity})
	}
	for _, s := range sales {
		resp.TodaySales = append(resp.TodaySales, dto.ProductSalesDTO{ProductType: s.ProductType, Quantity: s.Quantity, Revenue: s.Revenue})
	}
	for _, m := range lowMaterials {
		resp.LowStockMaterials = append(resp.LowStockMaterials, dto.ToMaterialResponse(m))
	}
	for _, p := range lowProducts {
		resp.LowStockProducts = append(resp.LowStockProducts, dto.ToProductResponse(p))
	}
	for _, a := range activity {
		resp.RecentActivity = append(resp.RecentActivity, dto.ActivityDTO{
			Kind:        a.Kind,
			Date:        a.Date.Format("2006-01-02"),
			ProductType: a.ProductType,
			Quantity:    a.Quantity,
			TotalPrice:  a.TotalPrice,
		})
	}
	return resp, nil
}

// PeriodReport arma el reporte del período pedido.
// period: today | week (desde lunes) | month | custom (requiere start y end).
func (uc *UseCase) PeriodReport(ctx context.Context, period, startDate, endDate string) (*dto.PeriodReportResponse, error) {
	start, end, err := ResolvePeriod(period, startDate, endDate, time.Now())
	if err != nil {
		return nil, err
	}
	if period == "" {
		period = "today"
	}

	production, err := uc.repo.ProductionByProduct(ctx, start, end)
	if err != nil {
		return nil, err
	}
	sales, err := uc.repo.SalesByProduct(ctx, start, end)
	if err != nil {
		return nil, err
	}
	revenue, err := uc.repo.TotalRevenue(ctx, start, end)
	if err != nil {
		return nil, err
	}
	dailyProduction, err := uc.repo.DailyProduction(ctx, start, end)
	if err != nil {
		return nil, err
	}
	dailySales, err := uc.repo.DailySales(ctx, start, end)
	if err != nil {
		return nil, err
	}

	resp := &dto.PeriodReportResponse{
		Period:       period,
		StartDate:    start.Format("2006-01-02"),
		EndDate:      end.Format("2006-01-02"),
		TotalRevenue: revenue,
	}
	for _, p := range production {
		resp.ProductionSummary = append(resp.ProductionSummary, dto.ProductQtyDTO{ProductType: p.ProductType, Quantity: p.Quantity})
	}
	for _, s := range sales {
		resp.SalesSummary = append(resp.SalesSummary, dto.ProductSalesDTO{ProductType: s.ProductType, Quantity: s.Quantity, Revenue: s.Revenue})
	}
	for _, d := range dailyProduction {
		resp.DailyProduction = append(resp.DailyProduction, dto.DailyTotalDTO{Date: d.Date.Format("2006-01-02"), Quantity: d.Quantity})
	}
	for _, d := range dailySales {
		resp.DailySales = append(resp.DailySales, dto.DailyTotalDTO{Date: d.Date.Format("2006-01-02"), Quantity: d.Quantity, Revenue: d.Revenue})
	}
	return resp, nil
}

// ExportPeriodReport genera el mismo reporte como .xlsx.
func (uc *UseCase) ExportPeriodReport(ctx context.Context, period, startDate, endDate string) ([]byte, error) {
	report, err := uc.PeriodReport(ctx, period, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportPeriodReport(report)
}

// ResolvePeriod traduce el período a un rango [start, end] de días.
// week arranca el lunes de la semana actual; month el día 1.
func ResolvePeriod(period, startDate, endDate string, now time.Time) (time.Time, time.Time, error) {
	today := truncateDay(now)
	switch period {
	case "today", "":
		return today, today, nil
	case "week":
		weekday := int(today.Weekday())
		if weekday == 0 {
			weekday = 7 // domingo cierra la semana, no la abre
		}
		return today.AddDate(0, 0, -(weekday - 1)), today, nil
	case "month":
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()), today, nil
	case "custom":
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		end, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
