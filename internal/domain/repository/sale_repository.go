package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
)

// SaleFilter filtros opcionales para listar ventas.
type SaleFilter struct {
	CustomerID string
	ProductID  string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(filter SaleFilter) ([]*entity.Sale, error)
	// SumQuantityByProduct total vendido de un producto (auditoría de stock).
	SumQuantityByProduct(productID string) (decimal.Decimal, error)
}
