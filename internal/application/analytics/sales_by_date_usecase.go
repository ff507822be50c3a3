package analytics

import (
	"context"
	"fmt"

	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/domain/report"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

// SalesByDateUseCase serie diaria de ventas para graficar.
type SalesByDateUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewSalesByDateUseCase(analyticsRepo repository.AnalyticsRepository) *SalesByDateUseCase {
	return &SalesByDateUseCase{analyticsRepo: analyticsRepo}
}

func (uc *SalesByDateUseCase) Run(ctx context.Context, period Period) (*dto.SalesByDateDTO, error) {
	sales, err := uc.analyticsRepo.SalesAmounts(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("ventas por fecha: %w", err)
	}
	points := report.Series(report.SumByKey(dateEntries(sales)))
	return &dto.SalesByDateDTO{
		Period: period.dto(),
		Points: toSeriesDTO(points),
		Total:  sumAmounts(sales),
	}, nil
}
