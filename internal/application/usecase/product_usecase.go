package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo. Crear y actualizar exigen CEO o MANAGER;
// la cantidad en inventario nunca se edita por aquí (solo ventas y ajustes).
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// canManageCatalog decide qué roles administran el catálogo (switch exhaustivo).
func canManageCatalog(role entity.Role) bool {
	switch role {
	case entity.RoleCEO, entity.RoleManager:
		return true
	case entity.RoleHR, entity.RoleEmployee:
		return false
	default:
		return false
	}
}

// Create da de alta un producto con su cantidad inicial.
func (uc *ProductUseCase) Create(ctx context.Context, actor entity.Actor, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !canManageCatalog(actor.Role) {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.Price.IsNegative() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista el catálogo (cualquier rol autenticado).
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Products: make([]dto.ProductResponse, 0, len(list)),
		Limit:    page.Limit,
		Offset:   page.Offset,
	}
	for _, p := range list {
		out.Products = append(out.Products, *toProductResponse(p))
	}
	return out, nil
}

// Update modifica nombre, descripción o precio. No toca la cantidad.
func (uc *ProductUseCase) Update(ctx context.Context, actor entity.Actor, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if !canManageCatalog(actor.Role) {
		return nil, domain.ErrForbidden
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
