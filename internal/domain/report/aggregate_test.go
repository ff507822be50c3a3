package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocampo/agroadmin-api/internal/domain/report"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

// Agregar [{2024-01-01, 100}, {2024-01-01, 50}, {2024-01-02, 30}] por fecha
// debe producir {2024-01-01: 150, 2024-01-02: 30} ordenado ascendente.
func TestSumByKey_AgrupaPorFecha(t *testing.T) {
	entries := []report.Entry{
		{Key: "2024-01-01", Amount: d("100")},
		{Key: "2024-01-01", Amount: d("50")},
		{Key: "2024-01-02", Amount: d("30")},
	}
	totals := report.SumByKey(entries)

	require.Len(t, totals, 2)
	assert.True(t, d("150").Equal(totals["2024-01-01"]))
	assert.True(t, d("30").Equal(totals["2024-01-02"]))

	series := report.Series(totals)
	require.Len(t, series, 2)
	assert.Equal(t, "2024-01-01", series[0].Key, "la serie debe ordenar ascendente por clave")
	assert.Equal(t, "2024-01-02", series[1].Key)
}

// El reductor es puro: ejecutarlo dos veces sobre el mismo input da el mismo mapa,
// y reordenar el input no cambia los totales.
func TestSumByKey_Idempotente(t *testing.T) {
	entries := []report.Entry{
		{Key: "a", Amount: d("10.25")},
		{Key: "b", Amount: d("-3")},
		{Key: "a", Amount: d("0.75")},
	}
	first := report.SumByKey(entries)
	second := report.SumByKey(entries)

	require.Equal(t, len(first), len(second))
	for k, v := range first {
		assert.True(t, v.Equal(second[k]), "clave %s debe coincidir en ambas pasadas", k)
	}

	reordered := []report.Entry{entries[2], entries[0], entries[1]}
	third := report.SumByKey(reordered)
	for k, v := range first {
		assert.True(t, v.Equal(third[k]), "el orden del input no debe cambiar la clave %s", k)
	}
}

func TestNetByKey_ClavesFaltantesAsumenCero(t *testing.T) {
	sales := map[string]decimal.Decimal{"2024-01": d("500"), "2024-02": d("300")}
	purchases := map[string]decimal.Decimal{"2024-01": d("200"), "2024-03": d("100")}

	net := report.NetByKey(sales, purchases)

	assert.True(t, d("300").Equal(net["2024-01"]), "500 − 200")
	assert.True(t, d("300").Equal(net["2024-02"]), "sin compras: resta cero")
	assert.True(t, d("-100").Equal(net["2024-03"]), "sin ventas: el lado faltante es cero")
}

// Serie [100, 150] → +50.00%.
func TestGrowth_DosPuntos(t *testing.T) {
	series := []report.Point{
		{Key: "2024-01", Total: d("100")},
		{Key: "2024-02", Total: d("150")},
	}
	pct, ok := report.Growth(series)
	require.True(t, ok)
	assert.True(t, d("50").Equal(pct), "(150−100)/100×100 = 50%%")
}

// Serie [0, 150] → no aplica (división por cero protegida).
func TestGrowth_PrimerPuntoCero_NoAplica(t *testing.T) {
	series := []report.Point{
		{Key: "2024-01", Total: decimal.Zero},
		{Key: "2024-02", Total: d("150")},
	}
	_, ok := report.Growth(series)
	assert.False(t, ok, "con primer punto en cero el crecimiento no aplica")
}

func TestGrowth_MenosDeDosPuntos_NoAplica(t *testing.T) {
	_, ok := report.Growth([]report.Point{{Key: "2024-01", Total: d("10")}})
	assert.False(t, ok)
	_, ok = report.Growth(nil)
	assert.False(t, ok)
}

// Totales [300, 200, 0] sobre 500 → [60%, 40%, 0%] y suman 100%.
func TestShare_ParticipacionDeMercado(t *testing.T) {
	grand := d("500")
	shares := []decimal.Decimal{
		report.Share(d("300"), grand),
		report.Share(d("200"), grand),
		report.Share(decimal.Zero, grand),
	}

	assert.True(t, d("60").Equal(shares[0]))
	assert.True(t, d("40").Equal(shares[1]))
	assert.True(t, shares[2].IsZero())

	sum := shares[0].Add(shares[1]).Add(shares[2])
	assert.True(t, d("100").Equal(sum), "las participaciones deben sumar 100%%")
}

func TestShare_GranTotalCero_RetornaCero(t *testing.T) {
	assert.True(t, report.Share(d("300"), decimal.Zero).IsZero(),
		"con gran total cero la participación es 0%%, no un crash")
}
