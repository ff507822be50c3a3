// Package excel implementa la exportación XLSX del reporte de rotación
// con excelize.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/agrocampo/agroadmin-api/internal/application/reports"
)

var _ reports.XLSXExporter = (*ExcelizeExporter)(nil)

// ExcelizeExporter genera la hoja de rotación: una pestaña por ranking.
type ExcelizeExporter struct{}

// NewExcelizeExporter construye el exportador.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// Export arma el libro y devuelve sus bytes.
func (e *ExcelizeExporter) Export(sheet reports.TurnoverSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E8F5E9"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: crear estilo: %w", err)
	}

	const companySheet = "Compras por proveedor"
	if err := f.SetSheetName("Sheet1", companySheet); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}
	if err := e.writeRanking(f, companySheet, headerStyle, sheet, sheet.ByCompany, "Proveedor", sheet.PurchasesTotal.StringFixed(2)); err != nil {
		return nil, err
	}

	const customerSheet = "Ventas por cliente"
	if _, err := f.NewSheet(customerSheet); err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	if err := e.writeRanking(f, customerSheet, headerStyle, sheet, sheet.ByCustomer, "Cliente", sheet.SalesTotal.StringFixed(2)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *ExcelizeExporter) writeRanking(
	f *excelize.File,
	sheetName string,
	headerStyle int,
	sheet reports.TurnoverSheet,
	rows []reports.SheetRow,
	entityLabel, grandTotal string,
) error {
	period := fmt.Sprintf("Período: %s a %s",
		sheet.Start.Format("2006-01-02"), sheet.End.Format("2006-01-02"))
	if err := f.SetCellValue(sheetName, "A1", period); err != nil {
		return fmt.Errorf("excel: escribir período: %w", err)
	}

	headers := []string{entityLabel, "Total", "Participación %"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("excel: escribir cabecera: %w", err)
		}
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, r := range rows {
		rowNum := i + 4
		nameCell, _ := excelize.CoordinatesToCellName(1, rowNum)
		totalCell, _ := excelize.CoordinatesToCellName(2, rowNum)
		shareCell, _ := excelize.CoordinatesToCellName(3, rowNum)
		if err := f.SetCellValue(sheetName, nameCell, r.Name); err != nil {
			return fmt.Errorf("excel: escribir fila: %w", err)
		}
		total, _ := r.Total.Float64()
		share, _ := r.SharePct.Float64()
		_ = f.SetCellValue(sheetName, totalCell, total)
		_ = f.SetCellValue(sheetName, shareCell, share)
	}

	totalRow := len(rows) + 5
	labelCell, _ := excelize.CoordinatesToCellName(1, totalRow)
	valueCell, _ := excelize.CoordinatesToCellName(2, totalRow)
	if err := f.SetCellValue(sheetName, labelCell, "TOTAL"); err != nil {
		return fmt.Errorf("excel: escribir total: %w", err)
	}
	_ = f.SetCellValue(sheetName, valueCell, grandTotal)
	_ = f.SetCellStyle(sheetName, labelCell, valueCell, headerStyle)

	_ = f.SetColWidth(sheetName, "A", "A", 34)
	_ = f.SetColWidth(sheetName, "B", "C", 18)
	return nil
}
