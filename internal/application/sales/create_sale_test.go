package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/application/sales"
	"github.com/agrocampo/agroadmin-api/internal/domain"
	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El fakeTxRunner imita el Rollback de PostgreSQL: toma un
// snapshot de los repos antes de ejecutar fn y lo restaura si fn falla, de
// modo que el test verifica atomicidad de verdad y no solo el orden de llamadas.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return f.GetByID(id) }
func (f *fakeProductRepo) UpdateInfo(p *entity.Product) error              { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) UpdateQuantity(id string, qty decimal.Decimal) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = qty
	return nil
}
func (f *fakeProductRepo) SetImageURL(id, url string) error { return nil }
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) ListBelowReorder() ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) ListExpiringBefore(cutoff time.Time) ([]*entity.Product, error) {
	return nil, nil
}

type fakeSaleRepo struct {
	created []*entity.Sale
}

func (f *fakeSaleRepo) Create(s *entity.Sale) error                 { f.created = append(f.created, s); return nil }
func (f *fakeSaleRepo) GetByID(id string) (*entity.Sale, error)     { return nil, nil }
func (f *fakeSaleRepo) List(repository.SaleFilter) ([]*entity.Sale, error) { return nil, nil }
func (f *fakeSaleRepo) SumQuantityByProduct(string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	for _, s := range f.created {
		sum = sum.Add(s.Quantity)
	}
	return sum, nil
}

type fakeReturnRepo struct {
	created []*entity.Return
}

func (f *fakeReturnRepo) Create(r *entity.Return) error               { f.created = append(f.created, r); return nil }
func (f *fakeReturnRepo) GetByID(id string) (*entity.Return, error)   { return nil, nil }
func (f *fakeReturnRepo) List(repository.ReturnFilter) ([]*entity.Return, error) { return nil, nil }
func (f *fakeReturnRepo) SumQuantityByProduct(string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { f.customers[c.ID] = c; return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }

type fakeTxRunner struct {
	products *fakeProductRepo
	sales    *fakeSaleRepo
	returns  *fakeReturnRepo
}

func (f *fakeTxRunner) RunSale(_ context.Context, fn func(
	repository.ProductRepository, repository.SaleRepository) error) error {
	snapshot := f.snapshotProducts()
	salesLen := len(f.sales.created)
	if err := fn(f.products, f.sales); err != nil {
		f.products.products = snapshot
		f.sales.created = f.sales.created[:salesLen]
		return err
	}
	return nil
}

func (f *fakeTxRunner) RunReturn(_ context.Context, fn func(
	repository.ProductRepository, repository.ReturnRepository) error) error {
	snapshot := f.snapshotProducts()
	returnsLen := len(f.returns.created)
	if err := fn(f.products, f.returns); err != nil {
		f.products.products = snapshot
		f.returns.created = f.returns.created[:returnsLen]
		return err
	}
	return nil
}

func (f *fakeTxRunner) snapshotProducts() map[string]*entity.Product {
	snap := make(map[string]*entity.Product, len(f.products.products))
	for k, v := range f.products.products {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

// ──────────────────────────────────────────────────────────────────────────────

const (
	testCustomerID = "11111111-1111-4111-8111-111111111111"
	testProductID  = "22222222-2222-4222-8222-222222222222"
	testUserID     = "33333333-3333-4333-8333-333333333333"
)

func setup(productQty string) (*sales.CreateSaleUseCase, *fakeProductRepo, *fakeSaleRepo) {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		testProductID: {
			ID:       testProductID,
			Name:     "Urea 46%",
			Price:    d("95.50"),
			Quantity: d(productQty),
		},
	}}
	saleRepo := &fakeSaleRepo{}
	customers := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		testCustomerID: {ID: testCustomerID, Name: "Finca La Esperanza"},
	}}
	runner := &fakeTxRunner{products: products, sales: saleRepo, returns: &fakeReturnRepo{}}
	return sales.NewCreateSaleUseCase(runner, customers, products), products, saleRepo
}

// Venta válida: descuenta stock, inserta la venta y calcula el total exacto.
func TestCreateSale_DescuentaStockYCalculaTotal(t *testing.T) {
	uc, products, saleRepo := setup("10")

	out, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		CustomerID: testCustomerID,
		ProductID:  testProductID,
		Quantity:   d("3"),
		Discount:   d("10.50"),
	})
	require.NoError(t, err)

	assert.True(t, d("276").Equal(out.Total), "95.50×3 − 10.50 = 276.00")
	assert.True(t, d("7").Equal(products.products[testProductID].Quantity),
		"el stock debe quedar en 10 − 3 = 7")
	require.Len(t, saleRepo.created, 1)
	assert.Equal(t, "Urea 46%", out.ProductName)
}

// Stock insuficiente: la venta se rechaza y NO queda ningún efecto —
// ni decremento del producto ni fila de venta (todo o nada).
func TestCreateSale_StockInsuficiente_NoEscribeNada(t *testing.T) {
	uc, products, saleRepo := setup("5")

	_, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		CustomerID: testCustomerID,
		ProductID:  testProductID,
		Quantity:   d("10"),
	})

	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, d("5").Equal(products.products[testProductID].Quantity),
		"el stock no debe cambiar en una venta rechazada")
	assert.Empty(t, saleRepo.created, "no debe insertarse fila de venta")
}

// Vender exactamente el stock disponible es válido y deja el stock en cero.
func TestCreateSale_VentaDelStockCompleto(t *testing.T) {
	uc, products, _ := setup("5")

	_, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		CustomerID: testCustomerID,
		ProductID:  testProductID,
		Quantity:   d("5"),
	})

	require.NoError(t, err)
	assert.True(t, products.products[testProductID].Quantity.IsZero())
}

// Descuento mayor al bruto de la línea: rechazado antes de cualquier escritura.
func TestCreateSale_DescuentoMayorAlBruto_Rechazado(t *testing.T) {
	uc, products, saleRepo := setup("10")

	_, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		CustomerID: testCustomerID,
		ProductID:  testProductID,
		Quantity:   d("2"),
		Discount:   d("500"), // bruto = 191.00
	})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, d("10").Equal(products.products[testProductID].Quantity))
	assert.Empty(t, saleRepo.created)
}

func TestCreateSale_CantidadCeroONegativa_Rechazada(t *testing.T) {
	uc, _, _ := setup("10")

	_, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		CustomerID: testCustomerID,
		ProductID:  testProductID,
		Quantity:   decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		CustomerID: testCustomerID,
		ProductID:  testProductID,
		Quantity:   d("-2"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Sin precio explícito, la venta toma el precio vigente del producto.
func TestCreateSale_PrecioPorDefectoDelProducto(t *testing.T) {
	uc, _, saleRepo := setup("10")

	out, err := uc.CreateSale(context.Background(), testUserID, dto.CreateSaleRequest{
		CustomerID: testCustomerID,
		ProductID:  testProductID,
		Quantity:   d("1"),
	})
	require.NoError(t, err)
	assert.True(t, d("95.50").Equal(out.UnitPrice))
	assert.True(t, d("95.50").Equal(saleRepo.created[0].Total))
}
