package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// InventoryLogRepository puerto de persistencia para la auditoría de ajustes (append-only).
type InventoryLogRepository interface {
	Create(log *entity.InventoryLog) error
	List(limit, offset int) ([]*entity.InventoryLog, error)
}
