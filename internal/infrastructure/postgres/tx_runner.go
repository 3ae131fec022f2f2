package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/inventory"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// Ensure TxRunner implementa los puertos transaccionales de la aplicación.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSale inicia una transacción con repos de productos y ventas (para CreateSale)
// y hace Commit o Rollback.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewSaleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Run inicia una transacción con repos de productos y auditoría (para ajustes de inventario).
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewInventoryLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunUsers inicia una transacción con el repo de usuarios (para el registro y
// su precondición de unicidad del CEO).
func (r *TxRunner) RunUsers(ctx context.Context, fn func(userRepo repository.UserRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
