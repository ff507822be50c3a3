package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DatedAmount una fila plana {fecha, monto} lista para el reductor por clave.
type DatedAmount struct {
	Date   time.Time
	Amount decimal.Decimal
}

// EntityTotal total ya agrupado por empresa o cliente (GROUP BY en SQL).
type EntityTotal struct {
	ID    string
	Name  string
	Total decimal.Decimal
}

// ReportLine línea de venta o devolución enriquecida con el nombre del
// producto, insumo del armador de reportes PDF.
type ReportLine struct {
	Date        time.Time
	ProductName string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para analítica y reportes.
// Devuelve filas planas; la agregación por clave vive en domain/report para
// que sea pura y probada de forma aislada.
type AnalyticsRepository interface {
	SalesAmounts(ctx context.Context, start, end time.Time) ([]DatedAmount, error)
	PurchaseAmounts(ctx context.Context, start, end time.Time) ([]DatedAmount, error)
	ReturnAmounts(ctx context.Context, start, end time.Time) ([]DatedAmount, error)

	TurnoverByCompany(ctx context.Context, start, end time.Time) ([]EntityTotal, error)
	TurnoverByCustomer(ctx context.Context, start, end time.Time) ([]EntityTotal, error)

	SaleLines(ctx context.Context, start, end time.Time) ([]ReportLine, error)
	ReturnLines(ctx context.Context, start, end time.Time) ([]ReportLine, error)
}
