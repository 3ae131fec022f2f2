package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta y todas sus líneas. Se usa dentro de
// la transacción de CreateSale: o entra todo o no entra nada.
func (r *SaleRepo) Create(sale *entity.Sale, items []*entity.SaleItem) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx,
		`INSERT INTO sales (id, employee_id, total_amount, created_at) VALUES ($1, $2, $3, $4)`,
		sale.ID, sale.EmployeeID, sale.TotalAmount, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for _, item := range items {
		_, err := r.q.Exec(ctx,
			`INSERT INTO sale_items (id, sale_id, product_id, quantity, price_at_sale) VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.SaleID, item.ProductID, item.Quantity, item.PriceAtSale,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de una venta.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(),
		`SELECT id, employee_id, total_amount, created_at FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.EmployeeID, &s.TotalAmount, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetItems obtiene las líneas de una venta.
func (r *SaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, sale_id, product_id, quantity, price_at_sale FROM sale_items WHERE sale_id = $1`,
		saleID,
	)
	if err != nil {
		return nil, fmt.Errorf("get sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.ProductID, &it.Quantity, &it.PriceAtSale); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// ListByEmployee lista las ventas de un empleado, más recientes primero.
func (r *SaleRepo) ListByEmployee(employeeID string, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, employee_id, total_amount, created_at
		FROM sales WHERE employee_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, employeeID, limit, offset)
}

// ListAll lista todas las ventas, más recientes primero.
func (r *SaleRepo) ListAll(limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, employee_id, total_amount, created_at
		FROM sales ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *SaleRepo) list(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.TotalAmount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
