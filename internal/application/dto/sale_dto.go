package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea de la venta solicitada.
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

// CreateSaleRequest body para POST /api/sales. Los ítems se procesan en orden.
type CreateSaleRequest struct {
	Items []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse línea persistida con su precio congelado.
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Quantity    int64           `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
}

// SaleResponse venta registrada con su total calculado.
type SaleResponse struct {
	ID          string             `json:"id"`
	EmployeeID  string             `json:"employee_id"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	CreatedAt   time.Time          `json:"created_at"`
	Items       []SaleItemResponse `json:"items,omitempty"`
}

// SaleListResponse historial paginado de ventas.
type SaleListResponse struct {
	Sales  []SaleResponse `json:"sales"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}
