package dto

import "github.com/shopspring/decimal"

// LowStockProductDTO producto por debajo del umbral de stock.
type LowStockProductDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
}

// EmployeeSalesDTO ventas acumuladas por empleado.
type EmployeeSalesDTO struct {
	EmployeeID string          `json:"employee_id"`
	Username   string          `json:"username"`
	SaleCount  int64           `json:"sale_count"`
	TotalSales decimal.Decimal `json:"total_sales"`
}

// ManagerActivityDTO ajustes de inventario por manager.
type ManagerActivityDTO struct {
	ManagerID       string `json:"manager_id"`
	Username        string `json:"username"`
	AdjustmentCount int64  `json:"adjustment_count"`
	NetStockChange  int64  `json:"net_stock_change"`
}

// DashboardSummaryDTO resumen agregado para el CEO. Se recalcula en cada
// petición sobre los datos actuales.
type DashboardSummaryDTO struct {
	TotalRevenue    decimal.Decimal      `json:"total_revenue"`
	TotalSales      int64                `json:"total_sales"`
	LowStock        []LowStockProductDTO `json:"low_stock"`
	EmployeeSales   []EmployeeSalesDTO   `json:"employee_sales"`
	ManagerActivity []ManagerActivityDTO `json:"manager_activity"`
}
