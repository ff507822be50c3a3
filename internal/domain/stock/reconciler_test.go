package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/agrocampo/agroadmin-api/internal/domain/stock"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

// El stock mostrado es gross − Σ(depleciones), con piso en cero.
func TestAvailable_RestaDepleciones(t *testing.T) {
	got := stock.Available(d("100"), []decimal.Decimal{d("30"), d("20.5")})
	assert.True(t, d("49.5").Equal(got), "100 - 30 - 20.5 = 49.5")
}

func TestAvailable_NuncaNegativo(t *testing.T) {
	got := stock.Available(d("10"), []decimal.Decimal{d("25")})
	assert.True(t, got.Equal(decimal.Zero), "el stock mostrado nunca debe ser negativo")
}

func TestAvailable_SinDepleciones(t *testing.T) {
	got := stock.Available(d("42"), nil)
	assert.True(t, d("42").Equal(got))
}

func TestClampDisplay(t *testing.T) {
	assert.True(t, stock.ClampDisplay(d("-3")).Equal(decimal.Zero))
	assert.True(t, stock.ClampDisplay(d("7")).Equal(d("7")))
}

func TestCanDeplete(t *testing.T) {
	assert.True(t, stock.CanDeplete(d("5"), d("5")), "igual al disponible: permitido")
	assert.False(t, stock.CanDeplete(d("5"), d("10")), "mayor al disponible: rechazado")
	assert.False(t, stock.CanDeplete(d("5"), decimal.Zero), "cantidad cero: rechazada")
	assert.False(t, stock.CanDeplete(d("5"), d("-1")), "cantidad negativa: rechazada")
}

// Total de línea exacto: unit_price × quantity − discount, sin deriva de redondeo.
func TestLineTotal_Exacto(t *testing.T) {
	total := stock.LineTotal(d("1250.50"), d("3"), d("150.25"))
	assert.True(t, d("3601.25").Equal(total), "1250.50×3 − 150.25 = 3601.25")
}

func TestLineTotal_SinDescuento(t *testing.T) {
	total := stock.LineTotal(d("80"), d("2.5"), decimal.Zero)
	assert.True(t, d("200").Equal(total))
}

func TestValidDiscount(t *testing.T) {
	assert.True(t, stock.ValidDiscount(d("100"), d("2"), d("200")), "descuento igual al bruto: válido")
	assert.False(t, stock.ValidDiscount(d("100"), d("2"), d("200.01")), "descuento mayor al bruto: inválido")
	assert.False(t, stock.ValidDiscount(d("100"), d("2"), d("-5")), "descuento negativo: inválido")
}

func TestDrift(t *testing.T) {
	assert.True(t, stock.Drift(d("50"), d("50")).IsZero(), "sin desvío")
	assert.True(t, stock.Drift(d("40"), d("50")).Equal(d("-10")), "registrado por debajo del derivado")
}
