package entity

import "time"

// Shift registro de jornada de un empleado: a lo sumo uno por (empleado, fecha).
// CheckIn se fija solo la primera vez; CheckOut se fija una sola vez.
type Shift struct {
	ID         string
	EmployeeID string
	Date       time.Time // solo la parte de fecha es significativa
	CheckIn    *time.Time
	CheckOut   *time.Time
}
