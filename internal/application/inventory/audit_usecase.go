// Package inventory contiene los casos de uso de control de inventario:
// auditoría de stock contra el histórico de movimientos y alertas de
// reposición y vencimiento.
package inventory

import (
	"fmt"

	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
	"github.com/agrocampo/agroadmin-api/internal/domain/stock"
)

// AuditUseCase compara el stock registrado de cada producto contra el
// derivado del histórico: Σ entradas − Σ ventas − Σ devoluciones. Un drift
// distinto de cero señala una escritura perdida o duplicada.
type AuditUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	saleRepo     repository.SaleRepository
	returnRepo   repository.ReturnRepository
}

func NewAuditUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
	returnRepo repository.ReturnRepository,
) *AuditUseCase {
	return &AuditUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		saleRepo:     saleRepo,
		returnRepo:   returnRepo,
	}
}

// auditPageSize productos por lote al recorrer el catálogo completo.
const auditPageSize = 500

// Run ejecuta la auditoría sobre todo el catálogo.
func (uc *AuditUseCase) Run() (*dto.StockAuditDTO, error) {
	out := &dto.StockAuditDTO{Rows: []dto.StockAuditRowDTO{}}
	offset := 0
	for {
		products, err := uc.productRepo.List(auditPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("auditoría de stock: %w", err)
		}
		for _, p := range products {
			entries, err := uc.movementRepo.SumQuantityByProduct(p.ID)
			if err != nil {
				return nil, err
			}
			sold, err := uc.saleRepo.SumQuantityByProduct(p.ID)
			if err != nil {
				return nil, err
			}
			returned, err := uc.returnRepo.SumQuantityByProduct(p.ID)
			if err != nil {
				return nil, err
			}
			derived := entries.Sub(sold).Sub(returned)
			drift := stock.Drift(p.Quantity, derived)
			out.Rows = append(out.Rows, dto.StockAuditRowDTO{
				ProductID:  p.ID,
				Name:       p.Name,
				Recorded:   p.Quantity,
				Derived:    derived,
				Drift:      drift,
				Consistent: drift.IsZero(),
			})
			if !drift.IsZero() {
				out.InconsistentQty++
			}
		}
		if len(products) < auditPageSize {
			return out, nil
		}
		offset += auditPageSize
	}
}
