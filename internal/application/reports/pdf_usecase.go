package reports

import (
	"context"
	"fmt"

	"github.com/agrocampo/agroadmin-api/internal/application/analytics"
	"github.com/agrocampo/agroadmin-api/internal/domain/report"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

// PDFReportUseCase arma los reportes PDF de ventas y devoluciones: líneas
// planas del rango, agrupadas por fecha con resumen y detalle por día.
type PDFReportUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	renderer      PDFRenderer
}

func NewPDFReportUseCase(analyticsRepo repository.AnalyticsRepository, renderer PDFRenderer) *PDFReportUseCase {
	return &PDFReportUseCase{analyticsRepo: analyticsRepo, renderer: renderer}
}

// SalesPDF genera el reporte de ventas del rango.
func (uc *PDFReportUseCase) SalesPDF(ctx context.Context, period analytics.Period) ([]byte, error) {
	lines, err := uc.analyticsRepo.SaleLines(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: %w", err)
	}
	return uc.render("Reporte de ventas", period, lines)
}

// ReturnsPDF genera el reporte de devoluciones a proveedor del rango.
func (uc *PDFReportUseCase) ReturnsPDF(ctx context.Context, period analytics.Period) ([]byte, error) {
	lines, err := uc.analyticsRepo.ReturnLines(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("reporte de devoluciones: %w", err)
	}
	return uc.render("Reporte de devoluciones", period, lines)
}

func (uc *PDFReportUseCase) render(title string, period analytics.Period, lines []repository.ReportLine) ([]byte, error) {
	items := make([]report.Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, report.Item{
			Key:        report.DateKey(l.Date),
			EntityName: l.ProductName,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			Discount:   l.Discount,
			LineTotal:  l.Total,
		})
	}
	sections := report.Assemble(items)
	return uc.renderer.Render(Document{
		Title:      title,
		Start:      period.Start,
		End:        period.End,
		Sections:   sections,
		GrandTotal: report.GrandTotal(sections),
	})
}
