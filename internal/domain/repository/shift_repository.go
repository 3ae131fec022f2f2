package repository

import (
	"time"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ShiftRepository puerto de persistencia para jornadas.
// La unicidad (empleado, fecha) la garantiza el almacén; las operaciones de
// marcado son condicionales para que "el primer check-in gana" incluso bajo
// peticiones concurrentes.
type ShiftRepository interface {
	// EnsureForDate crea la fila (empleado, fecha) si no existe; si ya existe no hace nada.
	EnsureForDate(employeeID string, date time.Time) error
	// SetCheckIn fija check_in solo si aún es NULL. Devuelve true si lo fijó.
	SetCheckIn(employeeID string, date time.Time, t time.Time) (bool, error)
	// SetCheckOut fija check_out solo si la fila existe y check_out es NULL.
	// Devuelve false (sin error) si no hay fila para ese día.
	SetCheckOut(employeeID string, date time.Time, t time.Time) (bool, error)
	GetByEmployeeAndDate(employeeID string, date time.Time) (*entity.Shift, error)
	ListAll(limit, offset int) ([]*entity.Shift, error)
}
