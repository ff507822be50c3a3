package repository

import (
	"github.com/shopspring/decimal"

	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
)

// StockMovementRepository puerto para entradas y ajustes de stock.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
	// SumQuantityByProduct total de entradas/ajustes de un producto (auditoría).
	SumQuantityByProduct(productID string) (decimal.Decimal, error)
}
