package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/agrocampo/agroadmin-api/internal/application/analytics"
	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/application/reports"
)

// ReportHandler exportación de reportes PDF y XLSX (protegido).
type ReportHandler struct {
	pdfUC  *reports.PDFReportUseCase
	xlsxUC *reports.XLSXTurnoverUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(pdfUC *reports.PDFReportUseCase, xlsxUC *reports.XLSXTurnoverUseCase) *ReportHandler {
	return &ReportHandler{pdfUC: pdfUC, xlsxUC: xlsxUC}
}

// SalesPDF godoc
// @Summary      Reporte PDF de ventas
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        start_date  query  string  false  "Desde (2006-01-02)"
// @Param        end_date    query  string  false  "Hasta (2006-01-02)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales/pdf [get]
func (h *ReportHandler) SalesPDF(c *fiber.Ctx) error {
	period, err := analytics.ParsePeriod(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	data, err := h.pdfUC.SalesPDF(c.UserContext(), period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendFile(c, data, "application/pdf", fmt.Sprintf("ventas_%s.pdf", time.Now().Format("20060102")))
}

// ReturnsPDF godoc
// @Summary      Reporte PDF de devoluciones
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        start_date  query  string  false  "Desde (2006-01-02)"
// @Param        end_date    query  string  false  "Hasta (2006-01-02)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/returns/pdf [get]
func (h *ReportHandler) ReturnsPDF(c *fiber.Ctx) error {
	period, err := analytics.ParsePeriod(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	data, err := h.pdfUC.ReturnsPDF(c.UserContext(), period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendFile(c, data, "application/pdf", fmt.Sprintf("devoluciones_%s.pdf", time.Now().Format("20060102")))
}

// TurnoverXLSX godoc
// @Summary      Exportación XLSX de rotación
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        start_date  query  string  false  "Desde (2006-01-02)"
// @Param        end_date    query  string  false  "Hasta (2006-01-02)"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/turnover/xlsx [get]
func (h *ReportHandler) TurnoverXLSX(c *fiber.Ctx) error {
	period, err := analytics.ParsePeriod(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	data, err := h.xlsxUC.Run(c.UserContext(), period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	return sendFile(c, data, xlsxMIME, fmt.Sprintf("rotacion_%s.xlsx", time.Now().Format("20060102")))
}

func sendFile(c *fiber.Ctx, data []byte, contentType, filename string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
