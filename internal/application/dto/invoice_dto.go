package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest registro de una factura de compra a proveedor.
// Number no se envía: el consecutivo lo asigna la transacción de inserción.
type CreateInvoiceRequest struct {
	CompanyID string          `json:"company_id" validate:"required,uuid4"`
	Date      string          `json:"date" validate:"required"` // 2006-01-02
	Total     decimal.Decimal `json:"total"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	CompanyName string          `json:"company_name,omitempty"`
	Number      int64           `json:"number"`
	Date        time.Time       `json:"date"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
}

// InvoiceListResponse listado paginado de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
