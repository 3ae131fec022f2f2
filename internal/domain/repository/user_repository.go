package repository

import "github.com/jhoicas/Tienda-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// CountByRole cuenta usuarios con el rol dado. Dentro de una transacción de
	// registro sirve como precondición explícita de unicidad del CEO.
	CountByRole(role entity.Role) (int, error)
	Update(user *entity.User) error
	// ListExcludingRole lista usuarios cuyo rol no es el indicado (vista de HR: todos menos el CEO).
	ListExcludingRole(role entity.Role, limit, offset int) ([]*entity.User, error)
}
