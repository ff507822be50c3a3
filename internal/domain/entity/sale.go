package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una línea de venta a un cliente.
// Total = UnitPrice × Quantity − Discount; el descuento nunca puede superar
// el bruto (se rechaza en validación), así que Total jamás es negativo.
// La creación descuenta Quantity del producto en la misma transacción.
type Sale struct {
	ID         string
	CustomerID string
	ProductID  string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal // capturado al momento de la venta
	Discount   decimal.Decimal // monto absoluto sobre la línea
	Total      decimal.Decimal
	Date       time.Time // fecha de compra
	CreatedAt  time.Time
	CreatedBy  string
}
