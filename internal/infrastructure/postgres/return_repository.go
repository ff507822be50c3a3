package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

var _ repository.ReturnRepository = (*ReturnRepo)(nil)

const returnColumns = `id, company_id, invoice_id, product_id, quantity, unit_price, discount, total, date, created_at, created_by`

// ReturnRepo implementación del puerto ReturnRepository sobre PostgreSQL (usable con pool o tx).
type ReturnRepo struct {
	q Querier
}

// NewReturnRepository construye el adaptador de persistencia para devoluciones a proveedor.
func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

// Create persiste una devolución. Llamar dentro de la transacción que
// descuenta el stock.
func (r *ReturnRepo) Create(ret *entity.Return) error {
	query := `
		INSERT INTO returns (` + returnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		ret.ID, ret.CompanyID, ret.InvoiceID, ret.ProductID, ret.Quantity,
		ret.UnitPrice, ret.Discount, ret.Total, ret.Date, ret.CreatedAt, ret.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert return: %w", err)
	}
	return nil
}

// GetByID obtiene una devolución por ID.
func (r *ReturnRepo) GetByID(id string) (*entity.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE id = $1`
	var ret entity.Return
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&ret.ID, &ret.CompanyID, &ret.InvoiceID, &ret.ProductID, &ret.Quantity,
		&ret.UnitPrice, &ret.Discount, &ret.Total, &ret.Date, &ret.CreatedAt, &ret.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get return: %w", err)
	}
	return &ret, nil
}

// List lista devoluciones con filtros opcionales, más recientes primero.
func (r *ReturnRepo) List(filter repository.ReturnFilter) ([]*entity.Return, error) {
	query := `SELECT ` + returnColumns + ` FROM returns WHERE 1=1`
	args := []any{}
	n := 1
	if filter.CompanyID != "" {
		query += fmt.Sprintf(" AND company_id = $%d", n)
		args = append(args, filter.CompanyID)
		n++
	}
	if filter.InvoiceID != "" {
		query += fmt.Sprintf(" AND invoice_id = $%d", n)
		args = append(args, filter.InvoiceID)
		n++
	}
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", n)
		args = append(args, filter.ProductID)
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
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d OFFSET $%d", n, n+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list returns: %w", err)
	}
	defer rows.Close()
	var list []*entity.Return
	for rows.Next() {
		var ret entity.Return
		if err := rows.Scan(&ret.ID, &ret.CompanyID, &ret.InvoiceID, &ret.ProductID, &ret.Quantity,
			&ret.UnitPrice, &ret.Discount, &ret.Total, &ret.Date, &ret.CreatedAt, &ret.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan return: %w", err)
		}
		list = append(list, &ret)
	}
	return list, rows.Err()
}

// SumQuantityByProduct total devuelto de un producto (auditoría de stock).
func (r *ReturnRepo) SumQuantityByProduct(productID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM returns WHERE product_id = $1`,
		productID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum returns by product: %w", err)
	}
	return total, nil
}
