package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest entrada para registro (auth): username, password y rol.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	Role     string `json:"role" validate:"required,oneof=CEO MANAGER HR EMPLOYEE"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string           `json:"id"`
	Username   string           `json:"username"`
	Name       string           `json:"name"`
	Role       string           `json:"role"`
	Salary     *decimal.Decimal `json:"salary,omitempty"`
	ShiftStart *string          `json:"shift_start,omitempty"`
	ShiftEnd   *string          `json:"shift_end,omitempty"`
	Status     string           `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
