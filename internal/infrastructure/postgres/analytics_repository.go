package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para analítica y reportes.
// Devuelve filas planas o totales ya agrupados; la agregación por clave
// corre en domain/report.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de consultas de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// SalesAmounts filas {fecha, total} de ventas en el rango.
func (r *AnalyticsRepo) SalesAmounts(ctx context.Context, start, end time.Time) ([]repository.DatedAmount, error) {
	return r.datedAmounts(ctx, `SELECT date, total FROM sales WHERE date BETWEEN $1 AND $2`, start, end)
}

// PurchaseAmounts filas {fecha, total} de facturas de compra en el rango.
func (r *AnalyticsRepo) PurchaseAmounts(ctx context.Context, start, end time.Time) ([]repository.DatedAmount, error) {
	return r.datedAmounts(ctx, `SELECT date, total FROM invoices WHERE date BETWEEN $1 AND $2`, start, end)
}

// ReturnAmounts filas {fecha, total} de devoluciones en el rango.
func (r *AnalyticsRepo) ReturnAmounts(ctx context.Context, start, end time.Time) ([]repository.DatedAmount, error) {
	return r.datedAmounts(ctx, `SELECT date, total FROM returns WHERE date BETWEEN $1 AND $2`, start, end)
}

func (r *AnalyticsRepo) datedAmounts(ctx context.Context, query string, start, end time.Time) ([]repository.DatedAmount, error) {
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query dated amounts: %w", err)
	}
	defer rows.Close()
	var list []repository.DatedAmount
	for rows.Next() {
		var d repository.DatedAmount
		if err := rows.Scan(&d.Date, &d.Amount); err != nil {
			return nil, fmt.Errorf("scan dated amount: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// TurnoverByCompany total de compras por proveedor en el rango, mayor primero.
func (r *AnalyticsRepo) TurnoverByCompany(ctx context.Context, start, end time.Time) ([]repository.EntityTotal, error) {
	query := `
		SELECT c.id, c.name, COALESCE(SUM(i.total), 0)
		FROM invoices i JOIN companies c ON c.id = i.company_id
		WHERE i.date BETWEEN $1 AND $2
		GROUP BY c.id, c.name
		ORDER BY 3 DESC`
	return r.entityTotals(ctx, query, start, end)
}

// TurnoverByCustomer total de ventas por cliente en el rango, mayor primero.
func (r *AnalyticsRepo) TurnoverByCustomer(ctx context.Context, start, end time.Time) ([]repository.EntityTotal, error) {
	query := `
		SELECT cu.id, cu.name, COALESCE(SUM(s.total), 0)
		FROM sales s JOIN customers cu ON cu.id = s.customer_id
		WHERE s.date BETWEEN $1 AND $2
		GROUP BY cu.id, cu.name
		ORDER BY 3 DESC`
	return r.entityTotals(ctx, query, start, end)
}

func (r *AnalyticsRepo) entityTotals(ctx context.Context, query string, start, end time.Time) ([]repository.EntityTotal, error) {
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query entity totals: %w", err)
	}
	defer rows.Close()
	var list []repository.EntityTotal
	for rows.Next() {
		var t repository.EntityTotal
		if err := rows.Scan(&t.ID, &t.Name, &t.Total); err != nil {
			return nil, fmt.Errorf("scan entity total: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// SaleLines líneas de venta del rango con el nombre del producto, para el reporte PDF.
func (r *AnalyticsRepo) SaleLines(ctx context.Context, start, end time.Time) ([]repository.ReportLine, error) {
	query := `
		SELECT s.date, p.name, s.quantity, s.unit_price, s.discount, s.total
		FROM sales s JOIN products p ON p.id = s.product_id
		WHERE s.date BETWEEN $1 AND $2
		ORDER BY s.date ASC, s.created_at ASC`
	return r.reportLines(ctx, query, start, end)
}

// ReturnLines líneas de devolución del rango con el nombre del producto, para el reporte PDF.
func (r *AnalyticsRepo) ReturnLines(ctx context.Context, start, end time.Time) ([]repository.ReportLine, error) {
	query := `
		SELECT rt.date, p.name, rt.quantity, rt.unit_price, rt.discount, rt.total
		FROM returns rt JOIN products p ON p.id = rt.product_id
		WHERE rt.date BETWEEN $1 AND $2
		ORDER BY rt.date ASC, rt.created_at ASC`
	return r.reportLines(ctx, query, start, end)
}

func (r *AnalyticsRepo) reportLines(ctx context.Context, query string, start, end time.Time) ([]repository.ReportLine, error) {
	rows, err := r.q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query report lines: %w", err)
	}
	defer rows.Close()
	var list []repository.ReportLine
	for rows.Next() {
		var l repository.ReportLine
		if err := rows.Scan(&l.Date, &l.ProductName, &l.Quantity, &l.UnitPrice, &l.Discount, &l.Total); err != nil {
			return nil, fmt.Errorf("scan report line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
