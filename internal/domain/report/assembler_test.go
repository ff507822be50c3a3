package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocampo/agroadmin-api/internal/domain/report"
)

func TestAssemble_AgrupaYOrdenaPorClave(t *testing.T) {
	items := []report.Item{
		{Key: "2024-02-01", EntityName: "Urea 46%", Quantity: d("2"), UnitPrice: d("90"), LineTotal: d("180")},
		{Key: "2024-01-15", EntityName: "Triple 15", Quantity: d("1"), UnitPrice: d("120"), LineTotal: d("120")},
		{Key: "2024-02-01", EntityName: "KCl granular", Quantity: d("3"), UnitPrice: d("70"), Discount: d("10"), LineTotal: d("200")},
	}

	sections := report.Assemble(items)

	require.Len(t, sections, 2)
	assert.Equal(t, "2024-01-15", sections[0].Key, "las secciones deben ordenar ascendente por clave")
	assert.Equal(t, "2024-02-01", sections[1].Key)

	assert.Equal(t, 1, sections[0].Count)
	assert.True(t, d("120").Equal(sections[0].Total))

	assert.Equal(t, 2, sections[1].Count)
	assert.True(t, d("380").Equal(sections[1].Total), "180 + 200")
	require.Len(t, sections[1].Details, 2)
	assert.Equal(t, "Urea 46%", sections[1].Details[0].EntityName,
		"los detalles conservan el orden de llegada dentro del grupo")
	assert.Equal(t, "KCl granular", sections[1].Details[1].EntityName)
}

func TestAssemble_InputVacio(t *testing.T) {
	sections := report.Assemble(nil)
	assert.Empty(t, sections)
	assert.True(t, report.GrandTotal(sections).IsZero())
}

func TestGrandTotal(t *testing.T) {
	sections := report.Assemble([]report.Item{
		{Key: "a", LineTotal: d("10.50")},
		{Key: "b", LineTotal: d("4.50")},
	})
	assert.True(t, d("15").Equal(report.GrandTotal(sections)))
}
