package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest registro de una venta. UnitPrice vacío (cero) toma el
// precio vigente del producto. El descuento es un monto absoluto sobre la
// línea y no puede superar unit_price × quantity.
type CreateSaleRequest struct {
	CustomerID string          `json:"customer_id" validate:"required,uuid4"`
	ProductID  string          `json:"product_id" validate:"required,uuid4"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Discount   decimal.Decimal `json:"discount"`
	Date       string          `json:"date" validate:"omitempty"` // 2006-01-02; vacío = hoy
}

// SaleResponse venta en respuestas.
type SaleResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name,omitempty"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Discount     decimal.Decimal `json:"discount"`
	Total        decimal.Decimal `json:"total"`
	Date         time.Time       `json:"date"`
	CreatedAt    time.Time       `json:"created_at"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
