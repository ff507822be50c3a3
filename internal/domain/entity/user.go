package entity

import "time"

// Roles disponibles para RBAC.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User usuario del panel de administración.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | vendedor
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
