package dto

import "github.com/shopspring/decimal"

// ProductQtyDTO cantidad por producto.
type ProductQtyDTO struct {
	ProductType string          `json:"product_type"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ProductSalesDTO cantidad e ingresos por producto.
type ProductSalesDTO struct {
	ProductType string          `json:"product_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// DailyTotalDTO total diario de producción o ventas.
type DailyTotalDTO struct {
	Date     string          `json:"date"`
	Quantity decimal.Decimal `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue,omitempty"`
}

// ActivityDTO una fila del feed de actividad reciente.
type ActivityDTO struct {
	Kind        string          `json:"kind"` // production | sale
	Date        string          `json:"date"`
	ProductType string          `json:"product_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price,omitempty"`
}

// DashboardResponse respuesta de GET /api/reports/dashboard.
type DashboardResponse struct {
	Date              string             `json:"date"`
	TodayProduction   []ProductQtyDTO    `json:"today_production"`
	TodaySales        []ProductSalesDTO  `json:"today_sales"`
	TodayRevenue      decimal.Decimal    `json:"today_revenue"`
	LowStockMaterials []MaterialResponse `json:"low_stock_materials"`
	LowStockProducts  []ProductResponse  `json:"low_stock_products"`
	RecentActivity    []ActivityDTO      `json:"recent_activity"`
}

// PeriodReportResponse respuesta de GET /api/reports.
type PeriodReportResponse struct {
	Period            string            `json:"period"` // today | week | month | custom
	StartDate         string            `json:"start_date"`
	EndDate           string            `json:"end_date"`
	ProductionSummary []ProductQtyDTO   `json:"production_summary"`
	SalesSummary      []ProductSalesDTO `json:"sales_summary"`
	TotalRevenue      decimal.Decimal   `json:"total_revenue"`
	DailyProduction   []DailyTotalDTO   `json:"daily_production"`
	DailySales        []DailyTotalDTO   `json:"daily_sales"`
}
