package sales

import (
	"fmt"

	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

// QueryUseCase listados de ventas y devoluciones con nombres resueltos.
type QueryUseCase struct {
	saleRepo     repository.SaleRepository
	returnRepo   repository.ReturnRepository
	customerRepo repository.CustomerRepository
	companyRepo  repository.CompanyRepository
	productRepo  repository.ProductRepository
}

// NewQueryUseCase construye el caso de uso de consulta.
func NewQueryUseCase(
	saleRepo repository.SaleRepository,
	returnRepo repository.ReturnRepository,
	customerRepo repository.CustomerRepository,
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
) *QueryUseCase {
	return &QueryUseCase{
		saleRepo:     saleRepo,
		returnRepo:   returnRepo,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		productRepo:  productRepo,
	}
}

// ListSales lista ventas aplicando filtros, resolviendo nombres de cliente y
// producto con un cache por petición para no repetir lecturas.
func (uc *QueryUseCase) ListSales(filter repository.SaleFilter, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset

	sales, err := uc.saleRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}

	customerNames := map[string]string{}
	productNames := map[string]string{}

	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, dto.SaleResponse{
			ID:           s.ID,
			CustomerID:   s.CustomerID,
			CustomerName: uc.customerName(s.CustomerID, customerNames),
			ProductID:    s.ProductID,
			ProductName:  uc.productName(s.ProductID, productNames),
			Quantity:     s.Quantity,
			UnitPrice:    s.UnitPrice,
			Discount:     s.Discount,
			Total:        s.Total,
			Date:         s.Date,
			CreatedAt:    s.CreatedAt,
		})
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListReturns lista devoluciones aplicando filtros.
func (uc *QueryUseCase) ListReturns(filter repository.ReturnFilter, page dto.PageRequest) (*dto.ReturnListResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset

	returns, err := uc.returnRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("listar devoluciones: %w", err)
	}

	companyNames := map[string]string{}
	productNames := map[string]string{}

	items := make([]dto.ReturnResponse, 0, len(returns))
	for _, r := range returns {
		items = append(items, dto.ReturnResponse{
			ID:          r.ID,
			CompanyID:   r.CompanyID,
			CompanyName: uc.companyName(r.CompanyID, companyNames),
			InvoiceID:   r.InvoiceID,
			ProductID:   r.ProductID,
			ProductName: uc.productName(r.ProductID, productNames),
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			Discount:    r.Discount,
			Total:       r.Total,
			Date:        r.Date,
			CreatedAt:   r.CreatedAt,
		})
	}
	return &dto.ReturnListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func (uc *QueryUseCase) customerName(id string, cache map[string]string) string {
	if name, ok := cache[id]; ok {
		return name
	}
	name := ""
	if c, err := uc.customerRepo.GetByID(id); err == nil && c != nil {
		name = c.Name
	}
	cache[id] = name
	return name
}

func (uc *QueryUseCase) companyName(id string, cache map[string]string) string {
	if name, ok := cache[id]; ok {
		return name
	}
	name := ""
	if c, err := uc.companyRepo.GetByID(id); err == nil && c != nil {
		name = c.Name
	}
	cache[id] = name
	return name
}

func (uc *QueryUseCase) productName(id string, cache map[string]string) string {
	if name, ok := cache[id]; ok {
		return name
	}
	name := ""
	if p, err := uc.productRepo.GetByID(id); err == nil && p != nil {
		name = p.Name
	}
	cache[id] = name
	return name
}
