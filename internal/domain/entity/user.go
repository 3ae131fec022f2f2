package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain"
)

// Role es el rol de un usuario. Enumeración cerrada: todo switch sobre Role
// debe cubrir los cuatro valores.
type Role string

// Roles válidos para User. Solo puede existir un CEO en todo el sistema.
const (
	RoleCEO      Role = "CEO"
	RoleManager  Role = "MANAGER"
	RoleHR       Role = "HR"
	RoleEmployee Role = "EMPLOYEE"
)

// ParseRole valida un rol recibido como string (JWT, body JSON, columna de DB).
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCEO, RoleManager, RoleHR, RoleEmployee:
		return Role(s), nil
	default:
		return "", domain.ErrInvalidInput
	}
}

// IsValid reporta si el rol es uno de los cuatro conocidos.
func (r Role) IsValid() bool {
	switch r {
	case RoleCEO, RoleManager, RoleHR, RoleEmployee:
		return true
	default:
		return false
	}
}

// Actor identidad autenticada que ejecuta una operación. Se pasa explícitamente
// a cada caso de uso; nunca hay un "usuario actual" ambiente.
type Actor struct {
	UserID string
	Role   Role
}

// User representa un usuario del sistema.
// Salary y la ventana de turno (ShiftStart/ShiftEnd, formato "15:04") los gestiona HR.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         Role
	Salary       *decimal.Decimal
	ShiftStart   *string
	ShiftEnd     *string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
