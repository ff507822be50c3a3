package dto

import "time"

// CreateCompanyRequest alta de proveedor.
type CreateCompanyRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Address string `json:"address" validate:"omitempty,max=200"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// CompanyResponse proveedor en respuestas.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse listado paginado de proveedores.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
