package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocampo/agroadmin-api/internal/application/inventory"
	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con sumas precargadas por producto.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error                   { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error)       { return nil, nil }
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error)  { return nil, nil }
func (f *fakeProductRepo) UpdateInfo(p *entity.Product) error               { return nil }
func (f *fakeProductRepo) UpdateQuantity(string, decimal.Decimal) error     { return nil }
func (f *fakeProductRepo) SetImageURL(id, url string) error                 { return nil }
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	if offset >= len(f.products) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.products) {
		end = len(f.products)
	}
	return f.products[offset:end], nil
}
func (f *fakeProductRepo) ListBelowReorder() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.ReorderLevel.GreaterThan(decimal.Zero) && !p.Quantity.GreaterThan(p.ReorderLevel) {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProductRepo) ListExpiringBefore(cutoff time.Time) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.ExpiryDate != nil && p.ExpiryDate.Before(cutoff) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeSums struct {
	byProduct map[string]decimal.Decimal
}

func (f *fakeSums) sum(productID string) (decimal.Decimal, error) {
	return f.byProduct[productID], nil
}

type fakeMovementRepo struct{ fakeSums }

func (f *fakeMovementRepo) Create(*entity.StockMovement) error { return nil }
func (f *fakeMovementRepo) ListByProduct(string, int, int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (f *fakeMovementRepo) SumQuantityByProduct(id string) (decimal.Decimal, error) {
	return f.sum(id)
}

type fakeSaleRepo struct{ fakeSums }

func (f *fakeSaleRepo) Create(*entity.Sale) error                          { return nil }
func (f *fakeSaleRepo) GetByID(string) (*entity.Sale, error)               { return nil, nil }
func (f *fakeSaleRepo) List(repository.SaleFilter) ([]*entity.Sale, error) { return nil, nil }
func (f *fakeSaleRepo) SumQuantityByProduct(id string) (decimal.Decimal, error) {
	return f.sum(id)
}

type fakeReturnRepo struct{ fakeSums }

func (f *fakeReturnRepo) Create(*entity.Return) error                          { return nil }
func (f *fakeReturnRepo) GetByID(string) (*entity.Return, error)               { return nil, nil }
func (f *fakeReturnRepo) List(repository.ReturnFilter) ([]*entity.Return, error) { return nil, nil }
func (f *fakeReturnRepo) SumQuantityByProduct(id string) (decimal.Decimal, error) {
	return f.sum(id)
}

// ──────────────────────────────────────────────────────────────────────────────

// Producto consistente: registrado == entradas − ventas − devoluciones.
// Producto con desvío: una venta no descontó el stock.
func TestAudit_DetectaDesvioDeStock(t *testing.T) {
	products := &fakeProductRepo{products: []*entity.Product{
		{ID: "p1", Name: "Urea 46%", Quantity: d("70")},
		{ID: "p2", Name: "Triple 15", Quantity: d("50")},
	}}
	movements := &fakeMovementRepo{fakeSums{byProduct: map[string]decimal.Decimal{
		"p1": d("100"), "p2": d("60"),
	}}}
	soldQty := &fakeSaleRepo{fakeSums{byProduct: map[string]decimal.Decimal{
		"p1": d("25"), "p2": d("15"),
	}}}
	returnedQty := &fakeReturnRepo{fakeSums{byProduct: map[string]decimal.Decimal{
		"p1": d("5"),
	}}}

	uc := inventory.NewAuditUseCase(products, movements, soldQty, returnedQty)
	out, err := uc.Run()
	require.NoError(t, err)
	require.Len(t, out.Rows, 2)

	// p1: 100 − 25 − 5 = 70 = registrado → consistente
	assert.True(t, out.Rows[0].Consistent)
	assert.True(t, out.Rows[0].Drift.IsZero())

	// p2: 60 − 15 = 45, registrado 50 → drift +5
	assert.False(t, out.Rows[1].Consistent)
	assert.True(t, d("45").Equal(out.Rows[1].Derived))
	assert.True(t, d("5").Equal(out.Rows[1].Drift), "registrado − derivado")

	assert.Equal(t, 1, out.InconsistentQty)
}

func TestAudit_CatalogoVacio(t *testing.T) {
	uc := inventory.NewAuditUseCase(
		&fakeProductRepo{},
		&fakeMovementRepo{fakeSums{byProduct: map[string]decimal.Decimal{}}},
		&fakeSaleRepo{fakeSums{byProduct: map[string]decimal.Decimal{}}},
		&fakeReturnRepo{fakeSums{byProduct: map[string]decimal.Decimal{}}},
	)
	out, err := uc.Run()
	require.NoError(t, err)
	assert.Empty(t, out.Rows)
	assert.Zero(t, out.InconsistentQty)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestAlerts_BajoUmbralYPorVencer(t *testing.T) {
	soon := time.Now().AddDate(0, 0, 10)
	far := time.Now().AddDate(0, 6, 0)
	products := &fakeProductRepo{products: []*entity.Product{
		{ID: "p1", Name: "Urea 46%", Quantity: d("3"), ReorderLevel: d("10")},
		{ID: "p2", Name: "Triple 15", Quantity: d("80"), ReorderLevel: d("10"), ExpiryDate: &soon},
		{ID: "p3", Name: "KCl granular", Quantity: d("200"), ReorderLevel: d("20"), ExpiryDate: &far},
	}}

	uc := inventory.NewAlertsUseCase(products, 30)
	out, err := uc.Run()
	require.NoError(t, err)

	require.Len(t, out.LowStock, 1)
	assert.Equal(t, "p1", out.LowStock[0].ProductID)
	assert.Equal(t, "low_stock", out.LowStock[0].Reason)

	require.Len(t, out.Expiring, 1)
	assert.Equal(t, "p2", out.Expiring[0].ProductID)
	assert.Equal(t, "expiring", out.Expiring[0].Reason)
}
