package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/agrocampo/agroadmin-api/internal/domain"
	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, category, price, quantity, unit_measure, reorder_level, expiry_date, image_url, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto con su stock inicial.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.Price, product.Quantity,
		product.UnitMeasure, product.ReorderLevel, product.ExpiryDate, product.ImageURL,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
// Solo tiene sentido sobre un Querier transaccional.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// UpdateInfo actualiza los datos del producto. No toca Quantity: el stock solo
// cambia vía ventas, devoluciones y reposiciones.
func (r *ProductRepo) UpdateInfo(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category = $3, price = $4, unit_measure = $5,
			reorder_level = $6, expiry_date = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, product.Price, product.UnitMeasure,
		product.ReorderLevel, product.ExpiryDate, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity escribe el nuevo stock. Llamar con la fila ya bloqueada.
func (r *ProductRepo) UpdateQuantity(id string, quantity decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// SetImageURL guarda la URL pública de la imagen del producto.
func (r *ProductRepo) SetImageURL(id, url string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET image_url = $2, updated_at = now() WHERE id = $1`,
		id, url,
	)
	if err != nil {
		return fmt.Errorf("update product image: %w", err)
	}
	return nil
}

// List lista productos con paginación, ordenados por nombre.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return r.scanList(rows)
}

// ListBelowReorder lista productos con stock bajo su umbral de reposición.
func (r *ProductRepo) ListBelowReorder() ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE reorder_level > 0 AND quantity <= reorder_level
		ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products below reorder: %w", err)
	}
	return r.scanList(rows)
}

// ListExpiringBefore lista productos con fecha de vencimiento antes del corte.
func (r *ProductRepo) ListExpiringBefore(cutoff time.Time) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE expiry_date IS NOT NULL AND expiry_date <= $1
		ORDER BY expiry_date ASC`
	rows, err := r.q.Query(context.Background(), query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list expiring products: %w", err)
	}
	return r.scanList(rows)
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Category, &p.Price, &p.Quantity, &p.UnitMeasure,
		&p.ReorderLevel, &p.ExpiryDate, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) scanList(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Quantity, &p.UnitMeasure,
			&p.ReorderLevel, &p.ExpiryDate, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
