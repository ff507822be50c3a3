package dto

import "time"

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Address string `json:"address" validate:"omitempty,max=200"`
	Phone   string `json:"phone" validate:"omitempty,max=30"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerListResponse listado paginado de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
