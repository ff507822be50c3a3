package reports

import (
	"context"
	"fmt"

	"github.com/agrocampo/agroadmin-api/internal/application/analytics"
)

// XLSXTurnoverUseCase exporta el ranking de rotación a una hoja de cálculo.
// Reusa el caso de uso de rotación para no duplicar la agregación.
type XLSXTurnoverUseCase struct {
	turnover *analytics.TurnoverUseCase
	exporter XLSXExporter
}

func NewXLSXTurnoverUseCase(turnover *analytics.TurnoverUseCase, exporter XLSXExporter) *XLSXTurnoverUseCase {
	return &XLSXTurnoverUseCase{turnover: turnover, exporter: exporter}
}

func (uc *XLSXTurnoverUseCase) Run(ctx context.Context, period analytics.Period) ([]byte, error) {
	data, err := uc.turnover.Run(ctx, period)
	if err != nil {
		return nil, err
	}
	sheet := TurnoverSheet{
		Start:          period.Start,
		End:            period.End,
		PurchasesTotal: data.PurchasesTotal,
		SalesTotal:     data.SalesTotal,
	}
	for _, r := range data.ByCompany {
		sheet.ByCompany = append(sheet.ByCompany, SheetRow{Name: r.Name, Total: r.Total, SharePct: r.SharePct})
	}
	for _, r := range data.ByCustomer {
		sheet.ByCustomer = append(sheet.ByCustomer, SheetRow{Name: r.Name, Total: r.Total, SharePct: r.SharePct})
	}
	out, err := uc.exporter.Export(sheet)
	if err != nil {
		return nil, fmt.Errorf("exportar rotación: %w", err)
	}
	return out, nil
}
