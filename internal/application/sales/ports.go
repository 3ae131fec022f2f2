package sales

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la venta multi-ítem sea
// todo-o-nada: cualquier error hace rollback de cabecera, líneas y descuentos.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
