package entity

import "time"

// InventoryLog entrada de auditoría de un ajuste de inventario. Append-only:
// se crea en cada ajuste exitoso y nunca se modifica.
type InventoryLog struct {
	ID         string
	ManagerID  string
	ProductID  string
	Adjustment int64 // delta con signo aplicado a la cantidad del producto
	CreatedAt  time.Time
}
