package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
// UpdateInfo nunca toca Quantity: el stock solo cambia vía ventas,
// devoluciones y reposiciones dentro de una transacción.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	// Solo tiene sentido sobre un Querier transaccional.
	GetForUpdate(id string) (*entity.Product, error)
	UpdateInfo(product *entity.Product) error
	UpdateQuantity(id string, quantity decimal.Decimal) error
	SetImageURL(id, url string) error
	List(limit, offset int) ([]*entity.Product, error)
	ListBelowReorder() ([]*entity.Product, error)
	ListExpiringBefore(cutoff time.Time) ([]*entity.Product, error)
}
