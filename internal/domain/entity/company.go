package entity

import "time"

// Company representa un proveedor de fertilizantes al que se le compra mercancía.
// Las facturas de compra y las devoluciones referencian a esta entidad.
type Company struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
