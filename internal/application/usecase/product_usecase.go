package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrocampo/agroadmin-api/internal/application/dto"
	"github.com/agrocampo/agroadmin-api/internal/domain"
	"github.com/agrocampo/agroadmin-api/internal/domain/entity"
	"github.com/agrocampo/agroadmin-api/internal/domain/repository"
)

// ProductUseCase operaciones sobre productos. El alta con stock inicial y la
// reposición escriben producto + movimiento IN en una sola transacción, para
// que la auditoría de stock siempre cierre.
type ProductUseCase struct {
	txRunner    StockTxRunner
	productRepo repository.ProductRepository
	storage     ImageStorage
}

// ImageStorage puerto hacia el bucket de objetos para imágenes de producto.
type ImageStorage interface {
	// Upload sube el blob con el nombre dado y devuelve su URL pública.
	Upload(ctx context.Context, name string, contentType string, data []byte) (string, error)
}

// NewProductUseCase construye el caso de uso. storage puede ser nil si la
// subida de imágenes está deshabilitada.
func NewProductUseCase(txRunner StockTxRunner, productRepo repository.ProductRepository, storage ImageStorage) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo, storage: storage}
}

// Create registra un producto. Si Quantity > 0 guarda además el movimiento IN
// inicial en la misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.LessThan(decimal.Zero) || in.Quantity.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		Price:        in.Price,
		Quantity:     in.Quantity,
		UnitMeasure:  in.UnitMeasure,
		ReorderLevel: in.ReorderLevel,
		ExpiryDate:   in.ExpiryDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.txRunner.RunStock(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if product.Quantity.IsZero() {
			return nil
		}
		return movementRepo.Create(&entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      entity.MovementTypeIN,
			Quantity:  product.Quantity,
			Note:      "stock inicial",
			Date:      now,
			CreatedAt: now,
			CreatedBy: userID,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	return toProductResponse(product), nil
}

// Restock repone stock: bloquea la fila, suma la cantidad y guarda el
// movimiento IN, todo en una transacción.
func (uc *ProductUseCase) Restock(ctx context.Context, userID, productID string, in dto.RestockRequest) (*dto.ProductResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	var updated *entity.Product
	now := time.Now()

	err := uc.txRunner.RunStock(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		locked, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		newQty := locked.Quantity.Add(in.Quantity)
		if err := productRepo.UpdateQuantity(productID, newQty); err != nil {
			return err
		}
		locked.Quantity = newQty
		updated = locked
		return movementRepo.Create(&entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: productID,
			Type:      entity.MovementTypeIN,
			Quantity:  in.Quantity,
			Note:      in.Note,
			Date:      now,
			CreatedAt: now,
			CreatedBy: userID,
		})
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(updated), nil
}

// GetByID obtiene un producto; nil si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update edita los datos del producto. Quantity no se toca aquí.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Category != "" {
		product.Category = in.Category
	}
	if !in.Price.IsZero() {
		product.Price = in.Price
	}
	if in.UnitMeasure != "" {
		product.UnitMeasure = in.UnitMeasure
	}
	if !in.ReorderLevel.IsZero() {
		product.ReorderLevel = in.ReorderLevel
	}
	if in.ExpiryDate != nil {
		product.ExpiryDate = in.ExpiryDate
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.UpdateInfo(product); err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UploadImage sube la imagen al bucket y guarda la URL pública en el producto.
func (uc *ProductUseCase) UploadImage(ctx context.Context, productID, contentType string, data []byte) (*dto.ProductResponse, error) {
	if uc.storage == nil {
		return nil, domain.ErrConflict // almacenamiento no configurado
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	name := fmt.Sprintf("products/%s/%d", productID, time.Now().UnixNano())
	url, err := uc.storage.Upload(ctx, name, contentType, data)
	if err != nil {
		return nil, fmt.Errorf("subir imagen: %w", err)
	}
	if err := uc.productRepo.SetImageURL(productID, url); err != nil {
		return nil, err
	}
	product.ImageURL = url
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Price:        p.Price,
		Quantity:     p.Quantity,
		Stock:        p.AvailableForDisplay(),
		UnitMeasure:  p.UnitMeasure,
		ReorderLevel: p.ReorderLevel,
		ExpiryDate:   p.ExpiryDate,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
