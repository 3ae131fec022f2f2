// Package memory implementa los puertos de persistencia en memoria.
// Se usa en tests y en modo demo, sin necesidad de PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/inventory"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ sales.TxRunner = (*Store)(nil)
var _ inventory.TxRunner = (*Store)(nil)
var _ auth.TxRunner = (*Store)(nil)

// Store almacén en memoria. Un único mutex protege todo el estado y se
// mantiene durante toda una "transacción", igual que el bloqueo de fila
// serializa a los escritores en PostgreSQL (aquí con grano más grueso).
type Store struct {
	mu        sync.Mutex
	users     map[string]entity.User
	products  map[string]entity.Product
	sales     map[string]entity.Sale
	saleItems map[string][]entity.SaleItem
	shifts    map[string]entity.Shift // clave: employeeID|YYYY-MM-DD
	logs      []entity.InventoryLog
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:     make(map[string]entity.User),
		products:  make(map[string]entity.Product),
		sales:     make(map[string]entity.Sale),
		saleItems: make(map[string][]entity.SaleItem),
		shifts:    make(map[string]entity.Shift),
	}
}

// Users devuelve el repositorio de usuarios (fuera de transacción).
func (s *Store) Users() repository.UserRepository { return &UserRepo{s: s} }

// Products devuelve el repositorio de productos (fuera de transacción).
func (s *Store) Products() repository.ProductRepository { return &ProductRepo{s: s} }

// Sales devuelve el repositorio de ventas (fuera de transacción).
func (s *Store) Sales() repository.SaleRepository { return &SaleRepo{s: s} }

// Shifts devuelve el repositorio de jornadas.
func (s *Store) Shifts() repository.ShiftRepository { return &ShiftRepo{s: s} }

// InventoryLogs devuelve el repositorio de auditoría de ajustes (fuera de transacción).
func (s *Store) InventoryLogs() repository.InventoryLogRepository { return &InventoryLogRepo{s: s} }

// Reports devuelve el repositorio de consultas del dashboard.
func (s *Store) Reports() repository.ReportRepository { return &ReportRepo{s: s} }

// snapshot copia el estado mutable para poder revertirlo si la tx falla.
type snapshot struct {
	users     map[string]entity.User
	products  map[string]entity.Product
	sales     map[string]entity.Sale
	saleItems map[string][]entity.SaleItem
	logs      []entity.InventoryLog
}

func (s *Store) takeSnapshot() snapshot {
	snap := snapshot{
		users:     make(map[string]entity.User, len(s.users)),
		products:  make(map[string]entity.Product, len(s.products)),
		sales:     make(map[string]entity.Sale, len(s.sales)),
		saleItems: make(map[string][]entity.SaleItem, len(s.saleItems)),
		logs:      make([]entity.InventoryLog, len(s.logs)),
	}
	for k, v := range s.users {
		snap.users[k] = v
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.sales {
		snap.sales[k] = v
	}
	for k, v := range s.saleItems {
		items := make([]entity.SaleItem, len(v))
		copy(items, v)
		snap.saleItems[k] = items
	}
	copy(snap.logs, s.logs)
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.products = snap.products
	s.sales = snap.sales
	s.saleItems = snap.saleItems
	s.logs = snap.logs
}

// RunSale ejecuta fn bajo el mutex del almacén con semántica todo-o-nada:
// si fn devuelve error, el estado vuelve al snapshot previo.
func (s *Store) RunSale(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.takeSnapshot()
	if err := fn(&ProductRepo{s: s, inTx: true}, &SaleRepo{s: s, inTx: true}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// Run ejecuta fn bajo el mutex con semántica todo-o-nada (ajustes de inventario).
func (s *Store) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	logRepo repository.InventoryLogRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.takeSnapshot()
	if err := fn(&ProductRepo{s: s, inTx: true}, &InventoryLogRepo{s: s, inTx: true}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// RunUsers ejecuta fn bajo el mutex con semántica todo-o-nada (registro de usuarios).
func (s *Store) RunUsers(_ context.Context, fn func(userRepo repository.UserRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.takeSnapshot()
	if err := fn(&UserRepo{s: s, inTx: true}); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}
