package inventory

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El ajuste de cantidad y su entrada de
// auditoría se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		logRepo repository.InventoryLogRepository,
	) error) error
}
