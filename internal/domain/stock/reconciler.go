// Package stock contiene la aritmética pura de inventario: stock disponible,
// totales de línea y conciliación entre el stock registrado y el derivado del
// histórico de movimientos. Sin dependencias de persistencia; funciones puras
// para poder probarlas de forma aislada.
package stock

import "github.com/shopspring/decimal"

// Available deriva el stock disponible restando las depleciones (ventas y
// devoluciones) de una cantidad base, con piso en cero para presentación.
// Usar solo sobre una cantidad BRUTA (entradas acumuladas): aplicarla sobre
// products.quantity, que ya es neta, duplicaría el descuento.
func Available(gross decimal.Decimal, depletions []decimal.Decimal) decimal.Decimal {
	available := gross
	for _, d := range depletions {
		available = available.Sub(d)
	}
	return ClampDisplay(available)
}

// ClampDisplay limita una cantidad a cero como mínimo para mostrarla en pantalla.
// No corrige el valor almacenado: un negativo persistido es un desvío que la
// auditoría debe reportar.
func ClampDisplay(qty decimal.Decimal) decimal.Decimal {
	if qty.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return qty
}

// CanDeplete indica si hay stock suficiente para descontar qty.
func CanDeplete(current, qty decimal.Decimal) bool {
	return qty.GreaterThan(decimal.Zero) && current.GreaterThanOrEqual(qty)
}

// LineTotal calcula el total de una línea: unitPrice × quantity − discount.
// Precondición: discount ≤ unitPrice × quantity (ValidDiscount); con ella el
// resultado nunca es negativo.
func LineTotal(unitPrice, quantity, discount decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(quantity).Sub(discount)
}

// ValidDiscount verifica que el descuento no sea negativo ni supere el bruto de la línea.
func ValidDiscount(unitPrice, quantity, discount decimal.Decimal) bool {
	if discount.LessThan(decimal.Zero) {
		return false
	}
	return discount.LessThanOrEqual(unitPrice.Mul(quantity))
}

// Drift devuelve la diferencia entre el stock registrado y el derivado
// (entradas − depleciones). Cero significa consistencia; distinto de cero,
// que alguna escritura se perdió o se aplicó dos veces.
func Drift(recorded, derived decimal.Decimal) decimal.Decimal {
	return recorded.Sub(derived)
}
