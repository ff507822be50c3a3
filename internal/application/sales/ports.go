package sales

import (
	"context"

	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad entre la verificación de
// stock, el decremento del producto y la inserción del registro: si cualquier
// paso falla, nada queda escrito.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error

	RunReturn(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		returnRepo repository.ReturnRepository,
	) error) error
}
