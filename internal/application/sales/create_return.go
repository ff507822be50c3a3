package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/domain"
	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
	"github.com/agrocampo/agroadmin-api/internal/domain/stock"
)

// CreateReturnUseCase registra una devolución a proveedor contra una factura
// de compra. Igual que la venta: la mercancía sale de bodega, así que el
// stock se verifica y decrementa en la misma transacción que inserta el registro.
type CreateReturnUseCase struct {
	txRunner    TxRunner
	companyRepo repository.CompanyRepository
	invoiceRepo repository.InvoiceRepository
	productRepo repository.ProductRepository
}

// NewCreateReturnUseCase construye el caso de uso.
func NewCreateReturnUseCase(
	txRunner TxRunner,
	companyRepo repository.CompanyRepository,
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
) *CreateReturnUseCase {
	return &CreateReturnUseCase{
		txRunner:    txRunner,
		companyRepo: companyRepo,
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
	}
}

// CreateReturn valida proveedor, factura y producto, y registra la devolución
// con Commit o Rollback. La factura debe pertenecer al proveedor indicado.
func (uc *CreateReturnUseCase) CreateReturn(ctx context.Context, userID string, in dto.CreateReturnRequest) (*dto.ReturnResponse, error) {
	if in.CompanyID == "" || in.InvoiceID == "" || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	invoice, err := uc.invoiceRepo.GetByID(in.InvoiceID)
	if err != nil || invoice == nil {
		return nil, domain.ErrNotFound
	}
	if invoice.CompanyID != in.CompanyID {
		return nil, domain.ErrConflict // la factura no es de ese proveedor
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}

	unitPrice := in.UnitPrice
	if unitPrice.IsZero() {
		unitPrice = product.Price
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if !stock.ValidDiscount(unitPrice, in.Quantity, in.Discount) {
		return nil, domain.ErrInvalidInput
	}

	returnDate, err := parseDateOrToday(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	ret := &entity.Return{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		InvoiceID: in.InvoiceID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitPrice: unitPrice,
		Discount:  in.Discount,
		Total:     stock.LineTotal(unitPrice, in.Quantity, in.Discount),
		Date:      returnDate,
		CreatedAt: now,
		CreatedBy: userID,
	}

	err = uc.txRunner.RunReturn(ctx, func(
		productRepo repository.ProductRepository,
		returnRepo repository.ReturnRepository,
	) error {
		locked, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		if !stock.CanDeplete(locked.Quantity, in.Quantity) {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateQuantity(in.ProductID, locked.Quantity.Sub(in.Quantity)); err != nil {
			return err
		}
		return returnRepo.Create(ret)
	})
	if err != nil {
		return nil, err
	}

	return &dto.ReturnResponse{
		ID:          ret.ID,
		CompanyID:   ret.CompanyID,
		CompanyName: company.Name,
		InvoiceID:   ret.InvoiceID,
		ProductID:   ret.ProductID,
		ProductName: product.Name,
		Quantity:    ret.Quantity,
		UnitPrice:   ret.UnitPrice,
		Discount:    ret.Discount,
		Total:       ret.Total,
		Date:        ret.Date,
		CreatedAt:   ret.CreatedAt,
	}, nil
}
