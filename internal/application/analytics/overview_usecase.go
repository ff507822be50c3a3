// Package analytics contiene los casos de uso del tablero: resumen general,
// rotación por proveedor/cliente y serie diaria de ventas. Las consultas
// devuelven filas planas y la agregación corre en domain/report.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/domain/report"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

// Period rango de fechas ya validado de una consulta de analítica.
type Period struct {
	Start time.Time
	End   time.Time
}

// ParsePeriod interpreta start/end en formato 2006-01-02. Si ambos vienen
// vacíos usa los últimos 12 meses. End es inclusivo hasta fin de día.
func ParsePeriod(startStr, endStr string) (Period, error) {
	now := time.Now()
	if startStr == "" && endStr == "" {
		return Period{Start: now.AddDate(-1, 0, 0), End: now}, nil
	}
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return Period{}, fmt.Errorf("start_date inválida: %w", err)
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return Period{}, fmt.Errorf("end_date inválida: %w", err)
	}
	if end.Before(start) {
		return Period{}, fmt.Errorf("end_date anterior a start_date")
	}
	return Period{Start: start, End: end.Add(24*time.Hour - time.Nanosecond)}, nil
}

func (p Period) dto() dto.PeriodDTO {
	return dto.PeriodDTO{
		StartDate: p.Start.Format("2006-01-02"),
		EndDate:   p.End.Format("2006-01-02"),
	}
}

// OverviewUseCase arma el resumen del tablero: series mensuales de compras,
// ventas y devoluciones, rotación neta y crecimientos.
type OverviewUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewOverviewUseCase(analyticsRepo repository.AnalyticsRepository) *OverviewUseCase {
	return &OverviewUseCase{analyticsRepo: analyticsRepo}
}

// Run ejecuta las tres consultas en paralelo y reduce en memoria.
func (uc *OverviewUseCase) Run(ctx context.Context, period Period) (*dto.OverviewDTO, error) {
	var sales, purchases, returns []repository.DatedAmount

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sales, err = uc.analyticsRepo.SalesAmounts(gctx, period.Start, period.End)
		return err
	})
	g.Go(func() (err error) {
		purchases, err = uc.analyticsRepo.PurchaseAmounts(gctx, period.Start, period.End)
		return err
	})
	g.Go(func() (err error) {
		returns, err = uc.analyticsRepo.ReturnAmounts(gctx, period.Start, period.End)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resumen de analítica: %w", err)
	}

	salesByMonth := report.SumByKey(monthEntries(sales))
	purchasesByMonth := report.SumByKey(monthEntries(purchases))
	returnsByMonth := report.SumByKey(monthEntries(returns))

	salesSeries := report.Series(salesByMonth)
	purchaseSeries := report.Series(purchasesByMonth)

	return &dto.OverviewDTO{
		Period:         period.dto(),
		Purchases:      toSeriesDTO(purchaseSeries),
		Sales:          toSeriesDTO(salesSeries),
		Returns:        toSeriesDTO(report.Series(returnsByMonth)),
		NetTurnover:    toSeriesDTO(report.Series(report.NetByKey(salesByMonth, purchasesByMonth))),
		PurchasesNet:   toSeriesDTO(report.Series(report.NetByKey(purchasesByMonth, returnsByMonth))),
		SalesGrowth:    toGrowthDTO(salesSeries),
		PurchaseGrowth: toGrowthDTO(purchaseSeries),
	}, nil
}

func monthEntries(rows []repository.DatedAmount) []report.Entry {
	entries := make([]report.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, report.Entry{Key: report.MonthKey(r.Date), Amount: r.Amount})
	}
	return entries
}

func dateEntries(rows []repository.DatedAmount) []report.Entry {
	entries := make([]report.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, report.Entry{Key: report.DateKey(r.Date), Amount: r.Amount})
	}
	return entries
}

func toSeriesDTO(points []report.Point) []dto.SeriesPointDTO {
	out := make([]dto.SeriesPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.SeriesPointDTO{Key: p.Key, Total: p.Total})
	}
	return out
}

func toGrowthDTO(points []report.Point) dto.GrowthDTO {
	pct, ok := report.Growth(points)
	return dto.GrowthDTO{Applicable: ok, Percentage: pct}
}

func sumAmounts(rows []repository.DatedAmount) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Amount)
	}
	return total
}
