// Package pdf implementa el render de los reportes de ventas y devoluciones
// con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Rango de fechas             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por cada fecha:                                            │
//	│    RESUMEN: fecha | # operaciones | total del día           │
//	│    DETALLE: Producto | Cant | P.Unit | Desc | Total línea   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  GRAN TOTAL del período                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/agrocampo/agroadmin-api/internal/application/reports"
	"github.com/agrocampo/agroadmin-api/internal/domain/report"
)

var _ reports.PDFRenderer = (*MarotoReportRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 27, Green: 94, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// moneyPrinter formatea montos con separadores de miles en español.
var moneyPrinter = message.NewPrinter(language.Spanish)

// MarotoReportRenderer implementa reports.PDFRenderer usando Maroto v2.
type MarotoReportRenderer struct{}

// NewMarotoReportRenderer construye el renderer.
func NewMarotoReportRenderer() *MarotoReportRenderer { return &MarotoReportRenderer{} }

// Render genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportRenderer) Render(doc reports.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(doc.Sections) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin operaciones en el período.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for _, section := range doc.Sections {
		m.AddRows(sectionSummaryRow(section))
		m.AddRows(detailHeaderRow())
		for _, r := range detailRows(section.Details) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(grandTotalRow(doc.GrandTotal))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y rango de fechas (der).
func headerRow(doc reports.Document) core.Row {
	rango := fmt.Sprintf("Del %s al %s",
		doc.Start.Format("02/01/2006"), doc.End.Format("02/01/2006"))
	return row.New(14).Add(
		col.New(7).Add(
			text.New(doc.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("AgroAdmin", props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(rango, props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// sectionSummaryRow: fecha del grupo, número de operaciones y total del día.
func sectionSummaryRow(section report.Section) core.Row {
	return row.New(8).Add(
		col.New(4).Add(text.New(section.Key, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
		})),
		col.New(4).Add(text.New(fmt.Sprintf("%d operaciones", section.Count), props.Text{
			Size: 9, Align: align.Center, Top: 1.5, Color: colorGray,
		})),
		col.New(4).Add(text.New("$"+formatMoney(section.Total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
		})),
	)
}

// detailHeaderRow: cabecera de la tabla de detalle.
func detailHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorGray, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Producto", 5, align.Left),
		h("Cant.", 1, align.Center),
		h("P. Unit.", 2, align.Right),
		h("Desc.", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// detailRows: una fila por línea del grupo, en orden de llegada.
func detailRows(details []report.DetailRow) []core.Row {
	result := make([]core.Row, 0, len(details))
	for _, d := range details {
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(d.EntityName, props.Text{
				Size: 8, Align: align.Left, Top: 1,
			})),
			col.New(1).Add(text.New(d.Quantity.String(), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New("$"+formatMoney(d.UnitPrice), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
			col.New(2).Add(text.New("$"+formatMoney(d.Discount), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
			col.New(2).Add(text.New("$"+formatMoney(d.LineTotal), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
		))
	}
	return result
}

// grandTotalRow: total del período alineado a la derecha.
func grandTotalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(7),
		col.New(3).Add(text.New("TOTAL DEL PERÍODO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New("$"+formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney formatea un monto con separadores de miles en español
// y dos decimales. Ej: 1234567.5 → "1.234.567,50".
func formatMoney(d decimal.Decimal) string {
	f, _ := d.Float64()
	return moneyPrinter.Sprint(number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
