// Package reports contiene los casos de uso de exportación: reportes PDF de
// ventas y devoluciones agrupados por fecha, y exportación XLSX de rotación.
package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrocampo/agroadmin-api/internal/domain/report"
)

// Document metadatos y contenido de un reporte ya armado, listo para render.
type Document struct {
	Title      string
	Start      time.Time
	End        time.Time
	Sections   []report.Section
	GrandTotal decimal.Decimal
}

// PDFRenderer puerto hacia el generador de PDF.
type PDFRenderer interface {
	Render(doc Document) ([]byte, error)
}

// TurnoverSheet datos de la exportación XLSX de rotación.
type TurnoverSheet struct {
	Start          time.Time
	End            time.Time
	PurchasesTotal decimal.Decimal
	SalesTotal     decimal.Decimal
	ByCompany      []SheetRow
	ByCustomer     []SheetRow
}

// SheetRow una fila de ranking en la hoja.
type SheetRow struct {
	Name     string
	Total    decimal.Decimal
	SharePct decimal.Decimal
}

// XLSXExporter puerto hacia el exportador de hojas de cálculo.
type XLSXExporter interface {
	Export(sheet TurnoverSheet) ([]byte, error)
}
