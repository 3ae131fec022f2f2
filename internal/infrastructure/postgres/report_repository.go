package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas del dashboard sobre PostgreSQL.
// Solo lectura: siempre calcula sobre los datos actuales, sin caché.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesTotals devuelve el ingreso total y el número de ventas.
func (r *ReportRepo) SalesTotals(ctx context.Context) (decimal.Decimal, int64, error) {
	var revenue decimal.Decimal
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_amount), 0), COUNT(*) FROM sales`,
	).Scan(&revenue, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("sales totals: %w", err)
	}
	return revenue, count, nil
}

// LowStock lista los productos con quantity < threshold, los más bajos primero.
func (r *ReportRepo) LowStock(ctx context.Context, threshold int64) ([]*entity.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, price, quantity, created_at, updated_at
		 FROM products WHERE quantity < $1 ORDER BY quantity ASC, name ASC`,
		threshold,
	)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan low stock product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SalesByEmployee agrupa ventas por empleado. LEFT JOIN: los empleados sin
// ventas aparecen con cero.
func (r *ReportRepo) SalesByEmployee(ctx context.Context) ([]repository.EmployeeSalesResult, error) {
	query := `
		SELECT u.id, u.username, COUNT(s.id), COALESCE(SUM(s.total_amount), 0)
		FROM users u
		LEFT JOIN sales s ON s.employee_id = u.id
		WHERE u.role = 'EMPLOYEE'
		GROUP BY u.id, u.username
		ORDER BY COALESCE(SUM(s.total_amount), 0) DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sales by employee: %w", err)
	}
	defer rows.Close()
	var list []repository.EmployeeSalesResult
	for rows.Next() {
		var row repository.EmployeeSalesResult
		if err := rows.Scan(&row.EmployeeID, &row.Username, &row.SaleCount, &row.TotalSales); err != nil {
			return nil, fmt.Errorf("scan employee sales: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// AdjustmentsByManager agrupa los ajustes de inventario por manager.
func (r *ReportRepo) AdjustmentsByManager(ctx context.Context) ([]repository.ManagerActivityResult, error) {
	query := `
		SELECT u.id, u.username, COUNT(l.id), COALESCE(SUM(l.adjustment), 0)
		FROM users u
		LEFT JOIN inventory_logs l ON l.manager_id = u.id
		WHERE u.role = 'MANAGER'
		GROUP BY u.id, u.username
		ORDER BY COUNT(l.id) DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("adjustments by manager: %w", err)
	}
	defer rows.Close()
	var list []repository.ManagerActivityResult
	for rows.Next() {
		var row repository.ManagerActivityResult
		if err := rows.Scan(&row.ManagerID, &row.Username, &row.AdjustmentCount, &row.NetStockChange); err != nil {
			return nil, fmt.Errorf("scan manager activity: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
