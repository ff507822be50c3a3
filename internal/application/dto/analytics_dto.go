package dto

import "github.com/shopspring/decimal"

// PeriodDTO rango de fechas del reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"` // 2006-01-02
	EndDate   string `json:"end_date"`
}

// SeriesPointDTO punto de una serie temporal (clave diaria o mensual).
type SeriesPointDTO struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total"`
}

// GrowthDTO crecimiento porcentual entre el primer y el último punto.
// Applicable es false cuando la serie tiene menos de dos puntos o arranca
// en cero; en ese caso Percentage no tiene significado.
type GrowthDTO struct {
	Applicable bool            `json:"applicable"`
	Percentage decimal.Decimal `json:"percentage"`
}

// OverviewDTO respuesta de GET /api/analytics/overview: series mensuales de
// compras, ventas y devoluciones, rotación neta y crecimientos.
type OverviewDTO struct {
	Period         PeriodDTO        `json:"period"`
	Purchases      []SeriesPointDTO `json:"purchases"`       // facturas de compra por mes
	Sales          []SeriesPointDTO `json:"sales"`           // ventas por mes
	Returns        []SeriesPointDTO `json:"returns"`         // devoluciones por mes
	NetTurnover    []SeriesPointDTO `json:"net_turnover"`    // ventas − compras por mes
	PurchasesNet   []SeriesPointDTO `json:"purchases_net"`   // compras − devoluciones por mes
	SalesGrowth    GrowthDTO        `json:"sales_growth"`
	PurchaseGrowth GrowthDTO        `json:"purchase_growth"`
}

// EntityShareDTO total y participación porcentual de una empresa o cliente.
type EntityShareDTO struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Total    decimal.Decimal `json:"total"`
	SharePct decimal.Decimal `json:"share_pct"`
}

// TurnoverDTO respuesta de GET /api/analytics/turnover: rankings por
// proveedor (compras) y por cliente (ventas) con participación de mercado.
type TurnoverDTO struct {
	Period         PeriodDTO        `json:"period"`
	PurchasesTotal decimal.Decimal  `json:"purchases_total"`
	SalesTotal     decimal.Decimal  `json:"sales_total"`
	ByCompany      []EntityShareDTO `json:"by_company"`
	ByCustomer     []EntityShareDTO `json:"by_customer"`
}

// SalesByDateDTO respuesta de GET /api/analytics/sales-by-date (serie diaria
// para graficar).
type SalesByDateDTO struct {
	Period PeriodDTO        `json:"period"`
	Points []SeriesPointDTO `json:"points"`
	Total  decimal.Decimal  `json:"total"`
}
