package dto

import "time"

// AdjustStockRequest body para POST /api/inventory/adjustments.
// Adjustment es un delta con signo; la operación no es idempotente por diseño
// (reenviar la misma petición vuelve a aplicar el delta).
type AdjustStockRequest struct {
	ProductID  string `json:"product_id" validate:"required,uuid"`
	Adjustment int64  `json:"adjustment" validate:"required"`
}

// AdjustStockResponse resultado de un ajuste aplicado.
type AdjustStockResponse struct {
	ProductID   string `json:"product_id"`
	Adjustment  int64  `json:"adjustment"`
	NewQuantity int64  `json:"new_quantity"`
}

// InventoryLogResponse entrada de auditoría de un ajuste.
type InventoryLogResponse struct {
	ID         string    `json:"id"`
	ManagerID  string    `json:"manager_id"`
	ProductID  string    `json:"product_id"`
	Adjustment int64     `json:"adjustment"`
	CreatedAt  time.Time `json:"created_at"`
}

// InventoryLogListResponse listado paginado de la auditoría.
type InventoryLogListResponse struct {
	Logs   []InventoryLogResponse `json:"logs"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}
