package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// EmployeeSalesResult ventas acumuladas de un empleado.
type EmployeeSalesResult struct {
	EmployeeID string
	Username   string
	SaleCount  int64
	TotalSales decimal.Decimal
}

// ManagerActivityResult actividad de ajustes de un manager.
type ManagerActivityResult struct {
	ManagerID       string
	Username        string
	AdjustmentCount int64
	NetStockChange  int64 // suma de los deltas con signo
}

// ReportRepository consultas de solo lectura para el dashboard del CEO.
// Siempre se recalculan sobre los datos actuales; no hay caché.
type ReportRepository interface {
	// SalesTotals devuelve el ingreso total (suma de Sale.TotalAmount) y el número de ventas.
	SalesTotals(ctx context.Context) (revenue decimal.Decimal, count int64, err error)
	// LowStock lista los productos con quantity < threshold.
	LowStock(ctx context.Context, threshold int64) ([]*entity.Product, error)
	// SalesByEmployee agrupa ventas por empleado (incluye empleados sin ventas).
	SalesByEmployee(ctx context.Context) ([]EmployeeSalesResult, error)
	// AdjustmentsByManager agrupa los ajustes de inventario por manager.
	AdjustmentsByManager(ctx context.Context) ([]ManagerActivityResult, error)
}
