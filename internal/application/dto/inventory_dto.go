package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockAuditRowDTO una fila de la auditoría de stock: compara la cantidad
// registrada del producto contra la derivada de movimientos
// (entradas − ventas − devoluciones).
type StockAuditRowDTO struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	Recorded   decimal.Decimal `json:"recorded"`   // products.quantity
	Derived    decimal.Decimal `json:"derived"`    // Σ entradas − Σ ventas − Σ devoluciones
	Drift      decimal.Decimal `json:"drift"`      // recorded − derived; 0 = consistente
	Consistent bool            `json:"consistent"`
}

// StockAuditDTO respuesta de GET /api/inventory/stock-audit.
type StockAuditDTO struct {
	Rows            []StockAuditRowDTO `json:"rows"`
	InconsistentQty int                `json:"inconsistent_qty"`
}

// InventoryAlertDTO producto que requiere atención: bajo el umbral de
// reposición o próximo a vencer.
type InventoryAlertDTO struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	Stock        decimal.Decimal `json:"stock"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	ExpiryDate   *time.Time      `json:"expiry_date,omitempty"`
	Reason       string          `json:"reason"` // "low_stock" | "expiring"
}

// InventoryAlertsDTO respuesta de GET /api/inventory/alerts.
type InventoryAlertsDTO struct {
	LowStock []InventoryAlertDTO `json:"low_stock"`
	Expiring []InventoryAlertDTO `json:"expiring"`
}
