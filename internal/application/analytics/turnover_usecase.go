package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/domain/report"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

// TurnoverUseCase arma los rankings de rotación: compras por proveedor y
// ventas por cliente, con participación porcentual sobre el total del rango.
type TurnoverUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewTurnoverUseCase(analyticsRepo repository.AnalyticsRepository) *TurnoverUseCase {
	return &TurnoverUseCase{analyticsRepo: analyticsRepo}
}

func (uc *TurnoverUseCase) Run(ctx context.Context, period Period) (*dto.TurnoverDTO, error) {
	var byCompany, byCustomer []repository.EntityTotal

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		byCompany, err = uc.analyticsRepo.TurnoverByCompany(gctx, period.Start, period.End)
		return err
	})
	g.Go(func() (err error) {
		byCustomer, err = uc.analyticsRepo.TurnoverByCustomer(gctx, period.Start, period.End)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("rotación: %w", err)
	}

	purchasesTotal := sumTotals(byCompany)
	salesTotal := sumTotals(byCustomer)
	return &dto.TurnoverDTO{
		Period:         period.dto(),
		PurchasesTotal: purchasesTotal,
		SalesTotal:     salesTotal,
		ByCompany:      toShareDTO(byCompany, purchasesTotal),
		ByCustomer:     toShareDTO(byCustomer, salesTotal),
	}, nil
}

func sumTotals(rows []repository.EntityTotal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Total)
	}
	return total
}

func toShareDTO(rows []repository.EntityTotal, grand decimal.Decimal) []dto.EntityShareDTO {
	out := make([]dto.EntityShareDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.EntityShareDTO{
			ID:       r.ID,
			Name:     r.Name,
			Total:    r.Total,
			SharePct: report.Share(r.Total, grand),
		})
	}
	return out
}
