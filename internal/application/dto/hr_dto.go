package dto

import "github.com/shopspring/decimal"

// UpdateSalaryRequest body para PUT /api/hr/employees/:id/salary.
type UpdateSalaryRequest struct {
	Salary decimal.Decimal `json:"salary" validate:"required"`
}

// UpdateShiftWindowRequest body para PUT /api/hr/employees/:id/shift-window.
// Horas en formato "15:04".
type UpdateShiftWindowRequest struct {
	ShiftStart string `json:"shift_start" validate:"required"`
	ShiftEnd   string `json:"shift_end" validate:"required"`
}

// EmployeeListResponse listado de personal para HR (excluye al CEO).
type EmployeeListResponse struct {
	Employees []UserResponse `json:"employees"`
	Limit     int            `json:"limit"`
	Offset    int            `json:"offset"`
}
