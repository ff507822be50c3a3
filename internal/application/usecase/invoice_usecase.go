package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/domain"
	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

// InvoiceUseCase registro y consulta de facturas de compra a proveedor.
// El consecutivo se asigna dentro de la transacción de inserción; el índice
// único sobre number convierte una carrera en error de duplicado.
type InvoiceUseCase struct {
	txRunner    InvoiceTxRunner
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
}

func NewInvoiceUseCase(txRunner InvoiceTxRunner, invoiceRepo repository.InvoiceRepository, companyRepo repository.CompanyRepository) *InvoiceUseCase {
	return &InvoiceUseCase{txRunner: txRunner, invoiceRepo: invoiceRepo, companyRepo: companyRepo}
}

// Create registra una factura de compra con consecutivo asignado en la
// misma transacción que la inserción.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Total.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	invoice := &entity.Invoice{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		Date:      date,
		Total:     in.Total,
		CreatedAt: time.Now(),
	}
	err = uc.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		number, err := invoiceRepo.NextNumber()
		if err != nil {
			return err
		}
		invoice.Number = number
		return invoiceRepo.Create(invoice)
	})
	if err != nil {
		return nil, fmt.Errorf("crear factura: %w", err)
	}
	resp := toInvoiceResponse(invoice)
	resp.CompanyName = company.Name
	return resp, nil
}

// GetByID obtiene una factura; nil si no existe.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	resp := toInvoiceResponse(invoice)
	if company, err := uc.companyRepo.GetByID(invoice.CompanyID); err == nil && company != nil {
		resp.CompanyName = company.Name
	}
	return resp, nil
}

// List lista facturas con filtros opcionales y enriquece el nombre del
// proveedor con una caché por petición.
func (uc *InvoiceUseCase) List(filter repository.InvoiceFilter) (*dto.InvoiceListResponse, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	invoices, err := uc.invoiceRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("listar facturas: %w", err)
	}
	names := make(map[string]string)
	items := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		resp := toInvoiceResponse(inv)
		name, ok := names[inv.CompanyID]
		if !ok {
			if company, err := uc.companyRepo.GetByID(inv.CompanyID); err == nil && company != nil {
				name = company.Name
			}
			names[inv.CompanyID] = name
		}
		resp.CompanyName = name
		items = append(items, *resp)
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:        inv.ID,
		CompanyID: inv.CompanyID,
		Number:    inv.Number,
		Date:      inv.Date,
		Total:     inv.Total,
		CreatedAt: inv.CreatedAt,
	}
}
