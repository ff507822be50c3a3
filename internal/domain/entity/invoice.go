package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura de compra a un proveedor (Company).
// Number es consecutivo y único; se asigna dentro de la transacción de inserción.
// El total es inmutable después de creada: no existe flujo de edición.
type Invoice struct {
	ID        string
	CompanyID string
	Number    int64
	Date      time.Time
	Total     decimal.Decimal
	CreatedAt time.Time
}
