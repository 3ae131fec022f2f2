package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Quantity solo cambia vía ventas (decremento) o ajustes de inventario (delta);
// nunca puede quedar negativa.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta unitario
	Quantity    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
