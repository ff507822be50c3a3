package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. Quantity es el stock inicial;
// queda registrada como movimiento IN para que la auditoría cierre.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=2,max=120"`
	Category     string          `json:"category" validate:"omitempty,max=60"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitMeasure  string          `json:"unit_measure" validate:"omitempty,max=20"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
}

// UpdateProductRequest edición de producto. No incluye Quantity: el stock
// solo cambia vía ventas, devoluciones y reposiciones.
type UpdateProductRequest struct {
	Name         string          `json:"name" validate:"omitempty,min=2,max=120"`
	Category     string          `json:"category" validate:"omitempty,max=60"`
	Price        decimal.Decimal `json:"price"`
	UnitMeasure  string          `json:"unit_measure" validate:"omitempty,max=20"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
}

// RestockRequest reposición de stock (movimiento IN, solo admin).
type RestockRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Note     string          `json:"note" validate:"omitempty,max=200"`
}

// ProductResponse producto en respuestas. Stock es la cantidad a mostrar
// (nunca negativa); Quantity el valor crudo registrado.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Quantity     decimal.Decimal `json:"quantity"`
	Stock        decimal.Decimal `json:"stock"`
	UnitMeasure  string          `json:"unit_measure,omitempty"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
