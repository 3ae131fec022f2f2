package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale cabecera de una venta. Inmutable después del commit:
// TotalAmount = Σ(PriceAtSale × Quantity) de sus líneas, calculado al momento de la venta.
type Sale struct {
	ID          string
	EmployeeID  string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

// SaleItem línea de una venta. PriceAtSale es una foto del precio del producto
// en el momento de la venta, independiente de cambios de precio posteriores.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	Quantity    int64
	PriceAtSale decimal.Decimal
}
