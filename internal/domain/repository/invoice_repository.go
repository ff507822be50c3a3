package repository

import (
	"time"

	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
)

// InvoiceFilter filtros opcionales para listar facturas de compra.
type InvoiceFilter struct {
	CompanyID string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// InvoiceRepository puerto de persistencia para facturas de compra.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	// NextNumber devuelve el siguiente consecutivo. Llamar dentro de la misma
	// transacción que Create; el índice único sobre number respalda la unicidad.
	NextNumber() (int64, error)
	GetByID(id string) (*entity.Invoice, error)
	List(filter InvoiceFilter) ([]*entity.Invoice, error)
}
