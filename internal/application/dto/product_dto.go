package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=255"`
	Description string          `json:"description" validate:"omitempty"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Quantity    int64           `json:"quantity" validate:"min=0"`
}

// UpdateProductRequest body para PUT /api/products/:id.
// No incluye quantity: el stock solo cambia vía ventas y ajustes.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int64           `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}
