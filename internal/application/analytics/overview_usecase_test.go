package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	sales     []repository.DatedAmount
	purchases []repository.DatedAmount
	returns   []repository.DatedAmount
	byCompany []repository.EntityTotal
	byClient  []repository.EntityTotal
}

func (f *fakeAnalyticsRepo) SalesAmounts(_ context.Context, _, _ time.Time) ([]repository.DatedAmount, error) {
	return f.sales, nil
}
func (f *fakeAnalyticsRepo) PurchaseAmounts(_ context.Context, _, _ time.Time) ([]repository.DatedAmount, error) {
	return f.purchases, nil
}
func (f *fakeAnalyticsRepo) ReturnAmounts(_ context.Context, _, _ time.Time) ([]repository.DatedAmount, error) {
	return f.returns, nil
}
func (f *fakeAnalyticsRepo) TurnoverByCompany(_ context.Context, _, _ time.Time) ([]repository.EntityTotal, error) {
	return f.byCompany, nil
}
func (f *fakeAnalyticsRepo) TurnoverByCustomer(_ context.Context, _, _ time.Time) ([]repository.EntityTotal, error) {
	return f.byClient, nil
}
func (f *fakeAnalyticsRepo) SaleLines(_ context.Context, _, _ time.Time) ([]repository.ReportLine, error) {
	return nil, nil
}
func (f *fakeAnalyticsRepo) ReturnLines(_ context.Context, _, _ time.Time) ([]repository.ReportLine, error) {
	return nil, nil
}

var _ repository.AnalyticsRepository = (*fakeAnalyticsRepo)(nil)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestOverview_SeriesMensualesYCrecimiento(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		sales: []repository.DatedAmount{
			{Date: day("2026-01-10"), Amount: dec("100")},
			{Date: day("2026-02-05"), Amount: dec("90")},
			{Date: day("2026-02-20"), Amount: dec("60")},
		},
		purchases: []repository.DatedAmount{
			{Date: day("2026-01-03"), Amount: dec("40")},
		},
		returns: []repository.DatedAmount{
			{Date: day("2026-01-15"), Amount: dec("10")},
		},
	}
	uc := NewOverviewUseCase(repo)

	period, err := ParsePeriod("2026-01-01", "2026-02-28")
	require.NoError(t, err)
	out, err := uc.Run(context.Background(), period)
	require.NoError(t, err)

	require.Len(t, out.Sales, 2, "dos meses con ventas")
	assert.Equal(t, "2026-01", out.Sales[0].Key)
	assert.True(t, out.Sales[0].Total.Equal(dec("100")))
	assert.Equal(t, "2026-02", out.Sales[1].Key)
	assert.True(t, out.Sales[1].Total.Equal(dec("150")))

	// Crecimiento de ventas: (150 − 100) / 100 × 100 = 50%.
	assert.True(t, out.SalesGrowth.Applicable)
	assert.True(t, out.SalesGrowth.Percentage.Equal(dec("50")))

	// Compras con un solo mes: crecimiento no aplica.
	assert.False(t, out.PurchaseGrowth.Applicable)

	// Rotación neta de enero: 100 − 40 = 60; febrero sin compras: 150.
	require.Len(t, out.NetTurnover, 2)
	assert.True(t, out.NetTurnover[0].Total.Equal(dec("60")))
	assert.True(t, out.NetTurnover[1].Total.Equal(dec("150")))

	// Compras netas de devoluciones en enero: 40 − 10 = 30.
	require.Len(t, out.PurchasesNet, 1)
	assert.True(t, out.PurchasesNet[0].Total.Equal(dec("30")))
}

func TestTurnover_ParticipacionDeMercado(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		byCompany: []repository.EntityTotal{
			{ID: "c1", Name: "Abonos del Valle", Total: dec("300")},
			{ID: "c2", Name: "Fertilizantes Norte", Total: dec("200")},
			{ID: "c3", Name: "AgroInsumos SAS", Total: dec("0")},
		},
	}
	uc := NewTurnoverUseCase(repo)

	period, err := ParsePeriod("2026-01-01", "2026-06-30")
	require.NoError(t, err)
	out, err := uc.Run(context.Background(), period)
	require.NoError(t, err)

	assert.True(t, out.PurchasesTotal.Equal(dec("500")))
	require.Len(t, out.ByCompany, 3)
	assert.True(t, out.ByCompany[0].SharePct.Equal(dec("60")))
	assert.True(t, out.ByCompany[1].SharePct.Equal(dec("40")))
	assert.True(t, out.ByCompany[2].SharePct.Equal(dec("0")))

	// Sin ventas en el rango: totales y ranking vacíos, nunca error.
	assert.True(t, out.SalesTotal.IsZero())
	assert.Empty(t, out.ByCustomer)
}

func TestSalesByDate_SerieDiaria(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		sales: []repository.DatedAmount{
			{Date: day("2026-03-02"), Amount: dec("50")},
			{Date: day("2026-03-01"), Amount: dec("20")},
			{Date: day("2026-03-02"), Amount: dec("25")},
		},
	}
	uc := NewSalesByDateUseCase(repo)

	period, err := ParsePeriod("2026-03-01", "2026-03-31")
	require.NoError(t, err)
	out, err := uc.Run(context.Background(), period)
	require.NoError(t, err)

	require.Len(t, out.Points, 2)
	assert.Equal(t, "2026-03-01", out.Points[0].Key)
	assert.True(t, out.Points[0].Total.Equal(dec("20")))
	assert.Equal(t, "2026-03-02", out.Points[1].Key)
	assert.True(t, out.Points[1].Total.Equal(dec("75")))
	assert.True(t, out.Total.Equal(dec("95")))
}

func TestParsePeriod_Errores(t *testing.T) {
	_, err := ParsePeriod("2026-03-10", "2026-03-01")
	assert.Error(t, err, "end anterior a start debe rechazarse")

	_, err = ParsePeriod("10/03/2026", "2026-03-31")
	assert.Error(t, err, "formato de fecha inválido")
}
