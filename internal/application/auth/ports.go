package auth

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con el
// repositorio de usuarios atado a esa tx. El registro lo usa para que la
// precondición "solo un CEO" y el insert sean atómicos.
type TxRunner interface {
	RunUsers(ctx context.Context, fn func(userRepo repository.UserRepository) error) error
}
