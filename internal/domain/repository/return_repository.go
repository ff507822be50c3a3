package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
)

// ReturnFilter filtros opcionales para listar devoluciones.
type ReturnFilter struct {
	CompanyID string
	InvoiceID string
	ProductID string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// ReturnRepository puerto de persistencia para devoluciones a proveedor.
type ReturnRepository interface {
	Create(ret *entity.Return) error
	GetByID(id string) (*entity.Return, error)
	List(filter ReturnFilter) ([]*entity.Return, error)
	// SumQuantityByProduct total devuelto de un producto (auditoría de stock).
	SumQuantityByProduct(productID string) (decimal.Decimal, error)
}
