package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Return representa una devolución de mercancía al proveedor, referenciando
// la factura de compra original. Igual que una venta, descuenta stock del
// producto en la misma transacción (la mercancía sale de bodega).
type Return struct {
	ID        string
	CompanyID string
	InvoiceID string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
	Date      time.Time // fecha de devolución
	CreatedAt time.Time
	CreatedBy string
}
