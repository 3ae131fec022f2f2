package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// AdjustStockUseCase aplica ajustes de inventario iniciados por un MANAGER:
// delta con signo sobre la cantidad del producto, con bloqueo de fila y
// entrada de auditoría en la misma transacción.
type AdjustStockUseCase struct {
	txRunner TxRunner
	logRepo  repository.InventoryLogRepository
}

// NewAdjustStockUseCase construye el caso de uso.
func NewAdjustStockUseCase(txRunner TxRunner, logRepo repository.InventoryLogRepository) *AdjustStockUseCase {
	return &AdjustStockUseCase{txRunner: txRunner, logRepo: logRepo}
}

// Adjust aplica el delta al producto. Se rechaza si dejaría la cantidad
// negativa. No es idempotente por diseño: repetir la petición vuelve a
// aplicar el delta.
func (uc *AdjustStockUseCase) Adjust(ctx context.Context, actor entity.Actor, in dto.AdjustStockRequest) (*dto.AdjustStockResponse, error) {
	if actor.Role != entity.RoleManager {
		return nil, domain.ErrForbidden
	}
	if in.ProductID == "" || in.Adjustment == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var newQuantity int64

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		logRepo repository.InventoryLogRepository,
	) error {
		// Bloquea la fila del producto: ajustes y ventas concurrentes sobre el
		// mismo producto se serializan aquí.
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return &domain.ProductNotFoundError{ProductID: in.ProductID}
		}
		newQuantity = product.Quantity + in.Adjustment
		if newQuantity < 0 {
			return &domain.StockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Requested:   in.Adjustment,
				Available:   product.Quantity,
				Err:         domain.ErrNegativeStock,
			}
		}
		if err := productRepo.UpdateQuantity(product.ID, newQuantity); err != nil {
			return err
		}
		return logRepo.Create(&entity.InventoryLog{
			ID:         uuid.New().String(),
			ManagerID:  actor.UserID,
			ProductID:  product.ID,
			Adjustment: in.Adjustment,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.AdjustStockResponse{
		ProductID:   in.ProductID,
		Adjustment:  in.Adjustment,
		NewQuantity: newQuantity,
	}, nil
}

// ListLogs devuelve la auditoría de ajustes (CEO y MANAGER).
func (uc *AdjustStockUseCase) ListLogs(ctx context.Context, actor entity.Actor, page dto.PageRequest) (*dto.InventoryLogListResponse, error) {
	switch actor.Role {
	case entity.RoleCEO, entity.RoleManager:
	case entity.RoleHR, entity.RoleEmployee:
		return nil, domain.ErrForbidden
	default:
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()

	logs, err := uc.logRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.InventoryLogListResponse{
		Logs:   make([]dto.InventoryLogResponse, 0, len(logs)),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for _, l := range logs {
		out.Logs = append(out.Logs, dto.InventoryLogResponse{
			ID:         l.ID,
			ManagerID:  l.ManagerID,
			ProductID:  l.ProductID,
			Adjustment: l.Adjustment,
			CreatedAt:  l.CreatedAt,
		})
	}
	return out, nil
}
