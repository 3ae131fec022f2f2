package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción: serializa a los escritores
	// concurrentes sobre el mismo producto.
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateQuantity fija la cantidad en inventario. El caso de uso ya validó
	// que el valor no sea negativo bajo el bloqueo de fila.
	UpdateQuantity(id string, quantity int64) error
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
}
