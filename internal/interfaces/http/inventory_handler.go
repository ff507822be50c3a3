package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/application/inventory"
)

// InventoryHandler auditoría de stock y alertas (protegido).
type InventoryHandler struct {
	auditUC  *inventory.AuditUseCase
	alertsUC *inventory.AlertsUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(auditUC *inventory.AuditUseCase, alertsUC *inventory.AlertsUseCase) *InventoryHandler {
	return &InventoryHandler{auditUC: auditUC, alertsUC: alertsUC}
}

// StockAudit godoc
// @Summary      Auditoría de stock (solo admin)
// @Description  Compara el stock registrado de cada producto contra el derivado del histórico de movimientos, ventas y devoluciones.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockAuditDTO
// @Router       /api/inventory/stock-audit [get]
func (h *InventoryHandler) StockAudit(c *fiber.Ctx) error {
	out, err := h.auditUC.Run()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Alerts godoc
// @Summary      Alertas de inventario
// @Description  Productos bajo el umbral de reposición y próximos a vencer.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryAlertsDTO
// @Router       /api/inventory/alerts [get]
func (h *InventoryHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.alertsUC.Run()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
