package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

// CompanyUseCase operaciones sobre proveedores.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// Create registra un proveedor.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, fmt.Errorf("crear proveedor: %w", err)
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene un proveedor; nil si no existe.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// List lista proveedores con paginación.
func (uc *CompanyUseCase) List(page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	companies, err := uc.companyRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	items := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
