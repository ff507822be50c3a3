package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario (fertilizante, insumo agrícola).
//
// Quantity es SIEMPRE el stock neto disponible: cada venta y cada devolución
// la decrementan en la misma transacción que inserta el registro
// (modelo decrement-at-write). Ninguna lectura vuelve a restar el histórico;
// el caso de uso de auditoría de stock detecta desvíos contra los movimientos.
type Product struct {
	ID           string
	Name         string
	Category     string
	Price        decimal.Decimal // precio de venta por unidad de medida
	Quantity     decimal.Decimal // stock neto disponible
	UnitMeasure  string          // etiqueta: "kg", "saco 50kg", "L"
	ReorderLevel decimal.Decimal // umbral para alertas de reposición
	ExpiryDate   *time.Time      // opcional; nil = no perecedero
	ImageURL     string          // URL pública en el bucket de objetos
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AvailableForDisplay devuelve el stock a mostrar en pantalla, nunca negativo.
func (p *Product) AvailableForDisplay() decimal.Decimal {
	if p.Quantity.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return p.Quantity
}
