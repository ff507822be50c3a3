package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrocampo/agroadmin-api/internal/application/analytics"
	"github.com/agrocampo/agroadmin-api/internal/application/dto"
)

// AnalyticsHandler tablero de analítica (protegido).
type AnalyticsHandler struct {
	overviewUC    *analytics.OverviewUseCase
	turnoverUC    *analytics.TurnoverUseCase
	salesByDateUC *analytics.SalesByDateUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(
	overviewUC *analytics.OverviewUseCase,
	turnoverUC *analytics.TurnoverUseCase,
	salesByDateUC *analytics.SalesByDateUseCase,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		overviewUC:    overviewUC,
		turnoverUC:    turnoverUC,
		salesByDateUC: salesByDateUC,
	}
}

// Overview godoc
// @Summary      Resumen del tablero
// @Description  Series mensuales de compras, ventas y devoluciones, rotación neta y crecimientos. Sin fechas usa los últimos 12 meses.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Desde (2006-01-02)"
// @Param        end_date    query  string  false  "Hasta (2006-01-02)"
// @Success      200  {object}  dto.OverviewDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/overview [get]
func (h *AnalyticsHandler) Overview(c *fiber.Ctx) error {
	period, err := analytics.ParsePeriod(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.overviewUC.Run(c.UserContext(), period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Turnover godoc
// @Summary      Rotación por proveedor y cliente
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Desde (2006-01-02)"
// @Param        end_date    query  string  false  "Hasta (2006-01-02)"
// @Success      200  {object}  dto.TurnoverDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/turnover [get]
func (h *AnalyticsHandler) Turnover(c *fiber.Ctx) error {
	period, err := analytics.ParsePeriod(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.turnoverUC.Run(c.UserContext(), period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesByDate godoc
// @Summary      Serie diaria de ventas
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Desde (2006-01-02)"
// @Param        end_date    query  string  false  "Hasta (2006-01-02)"
// @Success      200  {object}  dto.SalesByDateDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/sales-by-date [get]
func (h *AnalyticsHandler) SalesByDate(c *fiber.Ctx) error {
	period, err := analytics.ParsePeriod(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.salesByDateUC.Run(c.UserContext(), period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
