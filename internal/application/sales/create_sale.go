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

// CreateSaleUseCase registra una venta de forma transaccional: bloquea la
// fila del producto (SELECT FOR UPDATE), verifica stock suficiente,
// decrementa y guarda la venta. Todo o nada.
type CreateSaleUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// CreateSale valida la entrada, inicia la transacción y hace Commit o Rollback.
// Errores de negocio: ErrInsufficientStock si quantity > stock disponible;
// ErrInvalidInput si el descuento supera el bruto de la línea.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.CustomerID == "" || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}

	// Lectura inicial fuera de la tx: valida existencia y resuelve el precio.
	// El chequeo de stock definitivo se repite con la fila bloqueada.
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

	saleDate, err := parseDateOrToday(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		UnitPrice:  unitPrice,
		Discount:   in.Discount,
		Total:      stock.LineTotal(unitPrice, in.Quantity, in.Discount),
		Date:       saleDate,
		CreatedAt:  now,
		CreatedBy:  userID,
	}

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Bloquea la fila del producto para evitar carreras entre vendedores
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
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	return &dto.SaleResponse{
		ID:           sale.ID,
		CustomerID:   sale.CustomerID,
		CustomerName: customer.Name,
		ProductID:    sale.ProductID,
		ProductName:  product.Name,
		Quantity:     sale.Quantity,
		UnitPrice:    sale.UnitPrice,
		Discount:     sale.Discount,
		Total:        sale.Total,
		Date:         sale.Date,
		CreatedAt:    sale.CreatedAt,
	}, nil
}

// parseDateOrToday interpreta 2006-01-02; vacío devuelve la fecha de hoy.
func parseDateOrToday(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
