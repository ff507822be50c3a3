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

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, customer_id, product_id, quantity, unit_price, discount, total, date, created_at, created_by`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una línea de venta. Llamar dentro de la transacción que
// descuenta el stock.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, sale.ProductID, sale.Quantity, sale.UnitPrice,
		sale.Discount, sale.Total, sale.Date, sale.CreatedAt, sale.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CustomerID, &s.ProductID, &s.Quantity, &s.UnitPrice,
		&s.Discount, &s.Total, &s.Date, &s.CreatedAt, &s.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List lista ventas con filtros opcionales, más recientes primero.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1=1`
	args := []any{}
	n := 1
	if filter.CustomerID != "" {
		query += fmt.Sprintf(" AND customer_id = $%d", n)
		args = append(args, filter.CustomerID)
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
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.ProductID, &s.Quantity, &s.UnitPrice,
			&s.Discount, &s.Total, &s.Date, &s.CreatedAt, &s.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SumQuantityByProduct total vendido de un producto (auditoría de stock).
func (r *SaleRepo) SumQuantityByProduct(productID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM sales WHERE product_id = $1`,
		productID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum sales by product: %w", err)
	}
	return total, nil
}
