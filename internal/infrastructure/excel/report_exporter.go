// Package excel genera el reporte de período como libro .xlsx.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/laabuela/areperia-api/internal/application/dto"
	"github.com/laabuela/areperia-api/internal/application/reports"
)

var _ reports.Exporter = (*ReportExporter)(nil)

// ReportExporter exporta reportes de período a Excel con una hoja de resumen
// y una hoja de detalle diario.
type ReportExporter struct{}

func NewReportExporter() *ReportExporter {
	return &ReportExporter{}
}

const (
	sheetSummary = "Resumen"
	sheetDaily   = "Detalle diario"
)

// ExportPeriodReport serializa el reporte ya calculado como archivo .xlsx.
func (e *ReportExporter) ExportPeriodReport(report *dto.PeriodReportResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetDaily); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	writeSummary(f, report)
	writeDaily(f, report)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, report *dto.PeriodReportResponse) {
	f.SetCellValue(sheetSummary, "A1", "Reporte de período")
	f.SetCellValue(sheetSummary, "A2", "Desde")
	f.SetCellValue(sheetSummary, "B2", report.StartDate)
	f.SetCellValue(sheetSummary, "A3", "Hasta")
	f.SetCellValue(sheetSummary, "B3", report.EndDate)

	row := 5
	f.SetCellValue(sheetSummary, cell("A", row), "Producción por producto")
	row++
	f.SetCellValue(sheetSummary, cell("A", row), "Producto")
	f.SetCellValue(sheetSummary, cell("B", row), "Cantidad")
	row++
	for _, p := range report.ProductionSummary {
		f.SetCellValue(sheetSummary, cell("A", row), p.ProductType)
		f.SetCellValue(sheetSummary, cell("B", row), p.Quantity.InexactFloat64())
		row++
	}

	row++
	f.SetCellValue(sheetSummary, cell("A", row), "Ventas por producto")
	row++
	f.SetCellValue(sheetSummary, cell("A", row), "Producto")
	f.SetCellValue(sheetSummary, cell("B", row), "Cantidad")
	f.SetCellValue(sheetSummary, cell("C", row), "Ingresos")
	row++
	for _, s := range report.SalesSummary {
		f.SetCellValue(sheetSummary, cell("A", row), s.ProductType)
		f.SetCellValue(sheetSummary, cell("B", row), s.Quantity.InexactFloat64())
		f.SetCellValue(sheetSummary, cell("C", row), s.Revenue.InexactFloat64())
		row++
	}

	row++
	f.SetCellValue(sheetSummary, cell("A", row), "Ingresos totales")
	f.SetCellValue(sheetSummary, cell("B", row), report.TotalRevenue.InexactFloat64())
}

func writeDaily(f *excelize.File, report *dto.PeriodReportResponse) {
	f.SetCellValue(sheetDaily, "A1", "Producción diaria")
	f.SetCellValue(sheetDaily, "A2", "Fecha")
	f.SetCellValue(sheetDaily, "B2", "Cantidad")
	row := 3
	for _, d := range report.DailyProduction {
		f.SetCellValue(sheetDaily, cell("A", row), d.Date)
		f.SetCellValue(sheetDaily, cell("B", row), d.Quantity.InexactFloat64())
		row++
	}

	row++
	f.SetCellValue(sheetDaily, cell("A", row), "Ventas diarias")
	row++
	f.SetCellValue(sheetDaily, cell("A", row), "Fecha")
	f.SetCellValue(sheetDaily, cell("B", row), "Cantidad")
	f.SetCellValue(sheetDaily, cell("C", row), "Ingresos")
	row++
	for _, d := range report.DailySales {
		f.SetCellValue(sheetDaily, cell("A", row), d.Date)
		f.SetCellValue(sheetDaily, cell("B", row), d.Quantity.InexactFloat64())
		f.SetCellValue(sheetDaily, cell("C", row), d.Revenue.InexactFloat64())
		row++
	}
}

func cell(col string, row int) string {
	return col + fmt.Sprint(row)
}
