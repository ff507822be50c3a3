package inventory

import (
	"fmt"
	"time"

	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

// AlertsUseCase arma las alertas de inventario: productos bajo su umbral de
// reposición y productos que vencen dentro de la ventana configurada.
type AlertsUseCase struct {
	productRepo repository.ProductRepository
	expiryDays  int
}

func NewAlertsUseCase(productRepo repository.ProductRepository, expiryDays int) *AlertsUseCase {
	if expiryDays <= 0 {
		expiryDays = 30
	}
	return &AlertsUseCase{productRepo: productRepo, expiryDays: expiryDays}
}

// Run obtiene ambas listas de alertas. Un producto puede aparecer en las dos.
func (uc *AlertsUseCase) Run() (*dto.InventoryAlertsDTO, error) {
	out := &dto.InventoryAlertsDTO{
		LowStock: []dto.InventoryAlertDTO{},
		Expiring: []dto.InventoryAlertDTO{},
	}

	low, err := uc.productRepo.ListBelowReorder()
	if err != nil {
		return nil, fmt.Errorf("alertas de inventario: %w", err)
	}
	for _, p := range low {
		out.LowStock = append(out.LowStock, dto.InventoryAlertDTO{
			ProductID:    p.ID,
			Name:         p.Name,
			Stock:        p.AvailableForDisplay(),
			ReorderLevel: p.ReorderLevel,
			ExpiryDate:   p.ExpiryDate,
			Reason:       "low_stock",
		})
	}

	cutoff := time.Now().AddDate(0, 0, uc.expiryDays)
	expiring, err := uc.productRepo.ListExpiringBefore(cutoff)
	if err != nil {
		return nil, fmt.Errorf("alertas de inventario: %w", err)
	}
	for _, p := range expiring {
		out.Expiring = append(out.Expiring, dto.InventoryAlertDTO{
			ProductID:    p.ID,
			Name:         p.Name,
			Stock:        p.AvailableForDisplay(),
			ReorderLevel: p.ReorderLevel,
			ExpiryDate:   p.ExpiryDate,
			Reason:       "expiring",
		})
	}
	return out, nil
}
