package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReturnRequest registro de una devolución a proveedor, contra una
// factura de compra existente.
type CreateReturnRequest struct {
	CompanyID string          `json:"company_id" validate:"required,uuid4"`
	InvoiceID string          `json:"invoice_id" validate:"required,uuid4"`
	ProductID string          `json:"product_id" validate:"required,uuid4"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	Date      string          `json:"date" validate:"omitempty"` // 2006-01-02; vacío = hoy
}

// ReturnResponse devolución en respuestas.
type ReturnResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	CompanyName string          `json:"company_name,omitempty"`
	InvoiceID   string          `json:"invoice_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ReturnListResponse listado paginado de devoluciones.
type ReturnListResponse struct {
	Items []ReturnResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
