package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// CreateSaleUseCase registra ventas de forma transaccional: valida stock con
// bloqueo de fila (SELECT FOR UPDATE), descuenta inventario, congela el precio
// de cada línea y calcula el total, todo con Commit/Rollback.
type CreateSaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// CreateSale registra una venta para el actor (debe ser EMPLOYEE).
//
// Los ítems se procesan en el orden recibido. Por cada uno se bloquea la fila
// del producto: dos checkouts concurrentes sobre el mismo producto se
// serializan en ese bloqueo, así la cantidad nunca queda negativa. Si un
// producto no existe o no tiene stock suficiente, toda la operación se
// revierte: sin cabecera, sin líneas y sin descuentos parciales.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, actor entity.Actor, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if actor.Role != entity.RoleEmployee {
		return nil, domain.ErrForbidden
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		EmployeeID: actor.UserID,
		CreatedAt:  now,
	}
	var items []*entity.SaleItem

	err := uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		total := decimal.Zero
		items = items[:0]
		for _, item := range in.Items {
			// Bloquea la fila del producto. Si el mismo producto se repite en
			// la solicitud, la segunda lectura ve el descuento ya aplicado
			// dentro de la tx, así el decremento es acumulativo.
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return &domain.ProductNotFoundError{ProductID: item.ProductID}
			}
			if product.Quantity < item.Quantity {
				return &domain.StockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   item.Quantity,
					Available:   product.Quantity,
					Err:         domain.ErrInsufficientStock,
				}
			}
			if err := productRepo.UpdateQuantity(product.ID, product.Quantity-item.Quantity); err != nil {
				return err
			}
			items = append(items, &entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				ProductID:   product.ID,
				Quantity:    item.Quantity,
				PriceAtSale: product.Price, // foto del precio al momento de la venta
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(item.Quantity)))
		}
		sale.TotalAmount = total
		return saleRepo.Create(sale, items)
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, items), nil
}

// GetSale obtiene una venta con sus líneas. Un EMPLOYEE solo puede ver las suyas.
func (uc *CreateSaleUseCase) GetSale(ctx context.Context, actor entity.Actor, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if actor.Role == entity.RoleEmployee && sale.EmployeeID != actor.UserID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.saleRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:          sale.ID,
		EmployeeID:  sale.EmployeeID,
		TotalAmount: sale.TotalAmount,
		CreatedAt:   sale.CreatedAt,
		Items:       make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			PriceAtSale: it.PriceAtSale,
		})
	}
	return resp
}
