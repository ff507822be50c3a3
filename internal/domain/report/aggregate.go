// Package report contiene el reductor de agregación por clave y el armador de
// reportes. Ambos son funciones puras sobre filas ya consultadas: el mismo
// input produce siempre el mismo output, sin importar el orden de las filas.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Entry una fila a agregar: clave de agrupación y monto con signo.
// La clave puede ser fecha ISO (2006-01-02), mes (2006-01), o un ID de
// empresa/cliente; las fechas ISO ordenan cronológicamente al ordenar
// lexicográficamente.
type Entry struct {
	Key    string
	Amount decimal.Decimal
}

// Point un punto de una serie ordenada.
type Point struct {
	Key   string
	Total decimal.Decimal
}

// DateKey formatea una fecha como clave diaria (2006-01-02).
func DateKey(t time.Time) string { return t.Format("2006-01-02") }

// MonthKey formatea una fecha como clave mensual (2006-01).
func MonthKey(t time.Time) string { return t.Format("2006-01") }

// SumByKey agrupa las entradas por clave y suma los montos.
// La suma es conmutativa sobre decimales exactos: reordenar el input no
// cambia el resultado.
func SumByKey(entries []Entry) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(entries))
	for _, e := range entries {
		totals[e.Key] = totals[e.Key].Add(e.Amount)
	}
	return totals
}

// Series convierte un mapa de totales en una serie ordenada ascendente por clave.
func Series(totals map[string]decimal.Decimal) []Point {
	points := make([]Point, 0, len(totals))
	for k, v := range totals {
		points = append(points, Point{Key: k, Total: v})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Key < points[j].Key })
	return points
}

// NetByKey resta b de a clave por clave (ej: ventas − compras = rotación neta).
// Las claves presentes en un solo lado asumen cero en el otro; nunca es error.
func NetByKey(a, b map[string]decimal.Decimal) map[string]decimal.Decimal {
	net := make(map[string]decimal.Decimal, len(a)+len(b))
	for k, v := range a {
		net[k] = v
	}
	for k, v := range b {
		net[k] = net[k].Sub(v)
	}
	return net
}

// Growth calcula el crecimiento porcentual entre el primer y el último punto
// de una serie ordenada: (last − first) / first × 100, redondeado a 2 decimales.
// ok es false cuando hay menos de dos puntos o el primero es cero
// (el porcentaje no aplica; jamás dividir por cero).
func Growth(series []Point) (pct decimal.Decimal, ok bool) {
	if len(series) < 2 {
		return decimal.Zero, false
	}
	first := series[0].Total
	last := series[len(series)-1].Total
	if first.IsZero() {
		return decimal.Zero, false
	}
	return last.Sub(first).Div(first).Mul(hundred).Round(2), true
}

// Share calcula la participación porcentual part/grand × 100 redondeada a 2
// decimales. Devuelve 0% cuando grand es cero.
func Share(part, grand decimal.Decimal) decimal.Decimal {
	if grand.IsZero() {
		return decimal.Zero
	}
	return part.Div(grand).Mul(hundred).Round(2)
}
