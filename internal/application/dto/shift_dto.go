package dto

import "time"

// ShiftResponse jornada de un empleado en una fecha.
type ShiftResponse struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	Date       string     `json:"date"` // YYYY-MM-DD
	CheckIn    *time.Time `json:"check_in,omitempty"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
}

// ShiftListResponse listado paginado de jornadas (vista HR/CEO).
type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}
