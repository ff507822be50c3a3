package usecase

import (
	"context"

	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

// StockTxRunner transacción para operaciones que tocan producto + movimientos
// de stock (alta de producto con stock inicial, reposiciones).
type StockTxRunner interface {
	RunStock(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}

// InvoiceTxRunner transacción para la creación de facturas: la asignación del
// consecutivo y la inserción deben ocurrir en la misma tx.
type InvoiceTxRunner interface {
	RunInvoice(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
	) error) error
}
