package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrocampo/agroadmin-api/internal/domain"
	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas de compra.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una factura de compra. Un choque de consecutivo por carrera
// se reporta como duplicado (índice único sobre number).
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, company_id, number, date, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.CompanyID, invoice.Number, invoice.Date, invoice.Total, invoice.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// NextNumber devuelve el siguiente consecutivo. Llamar dentro de la misma
// transacción que Create.
func (r *InvoiceRepo) NextNumber() (int64, error) {
	var next int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(number), 0) + 1 FROM invoices`,
	).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("next invoice number: %w", err)
	}
	return next, nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, company_id, number, date, total, created_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.CompanyID, &inv.Number, &inv.Date, &inv.Total, &inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// List lista facturas con filtros opcionales, más recientes primero.
func (r *InvoiceRepo) List(filter repository.InvoiceFilter) ([]*entity.Invoice, error) {
	query := `
		SELECT id, company_id, number, date, total, created_at
		FROM invoices WHERE 1=1`
	args := []any{}
	n := 1
	if filter.CompanyID != "" {
		query += fmt.Sprintf(" AND company_id = $%d", n)
		args = append(args, filter.CompanyID)
		n++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND date >= $%d", n)
		args = append(args, *filter.From)
		n++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND date <= $%d", n)
		args = append(args, *filter.To)
		n++
	}
	query += fmt.Sprintf(" ORDER BY number DESC LIMIT $%d OFFSET $%d", n, n+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompanyID, &inv.Number, &inv.Date, &inv.Total, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
