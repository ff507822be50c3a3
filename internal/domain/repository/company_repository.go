package repository

import "github.com/agrocampo/agroadmin-api/internal/domain/entity"

// CompanyRepository puerto de persistencia para proveedores.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List(limit, offset int) ([]*entity.Company, error)
}
