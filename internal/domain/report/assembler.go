package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Item una línea original del reporte (venta, devolución o factura) con su
// clave de agrupación y los campos que consume la fila de detalle.
type Item struct {
	Key        string // clave de grupo: fecha, empresa o cliente
	EntityName string // nombre del producto/entidad mostrado en el detalle
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	Discount   decimal.Decimal
	LineTotal  decimal.Decimal
}

// DetailRow fila de detalle bajo un grupo.
type DetailRow struct {
	EntityName string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	Discount   decimal.Decimal
	LineTotal  decimal.Decimal
}

// Section un grupo del reporte: fila resumen (Count, Total) más sus detalles.
type Section struct {
	Key     string
	Count   int
	Total   decimal.Decimal
	Details []DetailRow
}

// Assemble agrupa los ítems por clave y produce las secciones ordenadas
// ascendente por clave, cada una con su resumen y sus filas de detalle en el
// orden de llegada dentro del grupo. La paginación queda a cargo del renderer.
func Assemble(items []Item) []Section {
	byKey := make(map[string]*Section)
	keys := make([]string, 0)
	for _, it := range items {
		sec, exists := byKey[it.Key]
		if !exists {
			sec = &Section{Key: it.Key}
			byKey[it.Key] = sec
			keys = append(keys, it.Key)
		}
		sec.Count++
		sec.Total = sec.Total.Add(it.LineTotal)
		sec.Details = append(sec.Details, DetailRow{
			EntityName: it.EntityName,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Discount:   it.Discount,
			LineTotal:  it.LineTotal,
		})
	}
	sort.Strings(keys)

	sections := make([]Section, 0, len(keys))
	for _, k := range keys {
		sections = append(sections, *byKey[k])
	}
	return sections
}

// GrandTotal suma los totales de todas las secciones.
func GrandTotal(sections []Section) decimal.Decimal {
	var total decimal.Decimal
	for _, s := range sections {
		total = total.Add(s.Total)
	}
	return total
}
