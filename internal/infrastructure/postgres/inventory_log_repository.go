package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo implementación del puerto InventoryLogRepository sobre PostgreSQL.
// La tabla es append-only: solo INSERT y SELECT, nunca UPDATE ni DELETE.
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador de auditoría de ajustes. Pasar pool o tx (Querier).
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// Create registra un ajuste de inventario.
func (r *InventoryLogRepo) Create(log *entity.InventoryLog) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO inventory_logs (id, manager_id, product_id, adjustment, created_at) VALUES ($1, $2, $3, $4, $5)`,
		log.ID, log.ManagerID, log.ProductID, log.Adjustment, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory log: %w", err)
	}
	return nil
}

// List lista los ajustes, más recientes primero.
func (r *InventoryLogRepo) List(limit, offset int) ([]*entity.InventoryLog, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, manager_id, product_id, adjustment, created_at
		 FROM inventory_logs ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list inventory logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLog
	for rows.Next() {
		var l entity.InventoryLog
		if err := rows.Scan(&l.ID, &l.ManagerID, &l.ProductID, &l.Adjustment, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
