package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)
var _ repository.ProductRepository = (*ProductRepo)(nil)
var _ repository.SaleRepository = (*SaleRepo)(nil)
var _ repository.ShiftRepository = (*ShiftRepo)(nil)
var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)
var _ repository.ReportRepository = (*ReportRepo)(nil)

// Los repos con inTx=true asumen que el mutex ya lo tiene la transacción.
func (s *Store) lockUnless(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return nil
	}
	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return list[offset:end]
}

// UserRepo repositorio de usuarios en memoria.
type UserRepo struct {
	s    *Store
	inTx bool
}

func (r *UserRepo) Create(user *entity.User) error {
	defer r.s.lockUnless(r.inTx)()
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return domain.ErrUsernameAlreadyExists
		}
		// Mismo respaldo que el índice parcial users_single_ceo en PostgreSQL.
		if user.Role == entity.RoleCEO && u.Role == entity.RoleCEO {
			return domain.ErrCEOAlreadyExists
		}
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	defer r.s.lockUnless(r.inTx)()
	if u, ok := r.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	defer r.s.lockUnless(r.inTx)()
	for _, u := range r.s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) CountByRole(role entity.Role) (int, error) {
	defer r.s.lockUnless(r.inTx)()
	count := 0
	for _, u := range r.s.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *UserRepo) Update(user *entity.User) error {
	defer r.s.lockUnless(r.inTx)()
	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepo) ListExcludingRole(role entity.Role, limit, offset int) ([]*entity.User, error) {
	defer r.s.lockUnless(r.inTx)()
	var list []entity.User
	for _, u := range r.s.users {
		if u.Role != role {
			list = append(list, u)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	page := paginate(list, limit, offset)
	out := make([]*entity.User, 0, len(page))
	for i := range page {
		out = append(out, &page[i])
	}
	return out, nil
}

// ProductRepo repositorio de productos en memoria.
type ProductRepo struct {
	s    *Store
	inTx bool
}

func (r *ProductRepo) Create(product *entity.Product) error {
	defer r.s.lockUnless(r.inTx)()
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	defer r.s.lockUnless(r.inTx)()
	if p, ok := r.s.products[id]; ok {
		return &p, nil
	}
	return nil, nil
}

// GetForUpdate en memoria equivale a GetByID: la transacción ya tiene el mutex
// del almacén completo, así que los escritores concurrentes están serializados.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *ProductRepo) UpdateQuantity(id string, quantity int64) error {
	defer r.s.lockUnless(r.inTx)()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	p.UpdatedAt = time.Now().UTC()
	r.s.products[id] = p
	return nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	defer r.s.lockUnless(r.inTx)()
	existing, ok := r.s.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	// Quantity solo cambia vía UpdateQuantity.
	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.UpdatedAt = product.UpdatedAt
	r.s.products[product.ID] = existing
	return nil
}

func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	defer r.s.lockUnless(r.inTx)()
	var list []entity.Product
	for _, p := range r.s.products {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	page := paginate(list, limit, offset)
	out := make([]*entity.Product, 0, len(page))
	for i := range page {
		out = append(out, &page[i])
	}
	return out, nil
}

// SaleRepo repositorio de ventas en memoria.
type SaleRepo struct {
	s    *Store
	inTx bool
}

func (r *SaleRepo) Create(sale *entity.Sale, items []*entity.SaleItem) error {
	defer r.s.lockUnless(r.inTx)()
	r.s.sales[sale.ID] = *sale
	stored := make([]entity.SaleItem, 0, len(items))
	for _, it := range items {
		stored = append(stored, *it)
	}
	r.s.saleItems[sale.ID] = stored
	return nil
}

func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	defer r.s.lockUnless(r.inTx)()
	if s, ok := r.s.sales[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *SaleRepo) GetItems(saleID string) ([]*entity.SaleItem, error) {
	defer r.s.lockUnless(r.inTx)()
	items := r.s.saleItems[saleID]
	out := make([]*entity.SaleItem, 0, len(items))
	for i := range items {
		it := items[i]
		out = append(out, &it)
	}
	return out, nil
}

func (r *SaleRepo) ListByEmployee(employeeID string, limit, offset int) ([]*entity.Sale, error) {
	return r.listFiltered(func(s entity.Sale) bool { return s.EmployeeID == employeeID }, limit, offset)
}

func (r *SaleRepo) ListAll(limit, offset int) ([]*entity.Sale, error) {
	return r.listFiltered(func(entity.Sale) bool { return true }, limit, offset)
}

func (r *SaleRepo) listFiltered(keep func(entity.Sale) bool, limit, offset int) ([]*entity.Sale, error) {
	defer r.s.lockUnless(r.inTx)()
	var list []entity.Sale
	for _, s := range r.s.sales {
		if keep(s) {
			list = append(list, s)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	page := paginate(list, limit, offset)
	out := make([]*entity.Sale, 0, len(page))
	for i := range page {
		out = append(out, &page[i])
	}
	return out, nil
}

// ShiftRepo repositorio de jornadas en memoria.
type ShiftRepo struct {
	s    *Store
	inTx bool
}

func shiftKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (r *ShiftRepo) EnsureForDate(employeeID string, date time.Time) error {
	defer r.s.lockUnless(r.inTx)()
	key := shiftKey(employeeID, date)
	if _, ok := r.s.shifts[key]; !ok {
		r.s.shifts[key] = entity.Shift{
			ID:         uuid.NewString(),
			EmployeeID: employeeID,
			Date:       date,
		}
	}
	return nil
}

func (r *ShiftRepo) SetCheckIn(employeeID string, date time.Time, t time.Time) (bool, error) {
	defer r.s.lockUnless(r.inTx)()
	key := shiftKey(employeeID, date)
	s, ok := r.s.shifts[key]
	if !ok || s.CheckIn != nil {
		return false, nil
	}
	s.CheckIn = &t
	r.s.shifts[key] = s
	return true, nil
}

func (r *ShiftRepo) SetCheckOut(employeeID string, date time.Time, t time.Time) (bool, error) {
	defer r.s.lockUnless(r.inTx)()
	key := shiftKey(employeeID, date)
	s, ok := r.s.shifts[key]
	if !ok || s.CheckOut != nil {
		return false, nil
	}
	s.CheckOut = &t
	r.s.shifts[key] = s
	return true, nil
}

func (r *ShiftRepo) GetByEmployeeAndDate(employeeID string, date time.Time) (*entity.Shift, error) {
	defer r.s.lockUnless(r.inTx)()
	if s, ok := r.s.shifts[shiftKey(employeeID, date)]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *ShiftRepo) ListAll(limit, offset int) ([]*entity.Shift, error) {
	defer r.s.lockUnless(r.inTx)()
	var list []entity.Shift
	for _, s := range r.s.shifts {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	page := paginate(list, limit, offset)
	out := make([]*entity.Shift, 0, len(page))
	for i := range page {
		out = append(out, &page[i])
	}
	return out, nil
}

// InventoryLogRepo auditoría de ajustes en memoria (append-only).
type InventoryLogRepo struct {
	s    *Store
	inTx bool
}

func (r *InventoryLogRepo) Create(log *entity.InventoryLog) error {
	defer r.s.lockUnless(r.inTx)()
	r.s.logs = append(r.s.logs, *log)
	return nil
}

func (r *InventoryLogRepo) List(limit, offset int) ([]*entity.InventoryLog, error) {
	defer r.s.lockUnless(r.inTx)()
	list := make([]entity.InventoryLog, len(r.s.logs))
	copy(list, r.s.logs)
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	page := paginate(list, limit, offset)
	out := make([]*entity.InventoryLog, 0, len(page))
	for i := range page {
		out = append(out, &page[i])
	}
	return out, nil
}

// ReportRepo consultas del dashboard sobre el estado en memoria.
type ReportRepo struct {
	s *Store
}

func (r *ReportRepo) SalesTotals(_ context.Context) (decimal.Decimal, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	revenue := decimal.Zero
	var count int64
	for _, s := range r.s.sales {
		revenue = revenue.Add(s.TotalAmount)
		count++
	}
	return revenue, count, nil
}

func (r *ReportRepo) LowStock(_ context.Context, threshold int64) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []entity.Product
	for _, p := range r.s.products {
		if p.Quantity < threshold {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Quantity != list[j].Quantity {
			return list[i].Quantity < list[j].Quantity
		}
		return list[i].Name < list[j].Name
	})
	out := make([]*entity.Product, 0, len(list))
	for i := range list {
		out = append(out, &list[i])
	}
	return out, nil
}

func (r *ReportRepo) SalesByEmployee(_ context.Context) ([]repository.EmployeeSalesResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.EmployeeSalesResult
	for _, u := range r.s.users {
		if u.Role != entity.RoleEmployee {
			continue
		}
		row := repository.EmployeeSalesResult{EmployeeID: u.ID, Username: u.Username, TotalSales: decimal.Zero}
		for _, s := range r.s.sales {
			if s.EmployeeID == u.ID {
				row.SaleCount++
				row.TotalSales = row.TotalSales.Add(s.TotalAmount)
			}
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalSales.GreaterThan(out[j].TotalSales) })
	return out, nil
}

func (r *ReportRepo) AdjustmentsByManager(_ context.Context) ([]repository.ManagerActivityResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.ManagerActivityResult
	for _, u := range r.s.users {
		if u.Role != entity.RoleManager {
			continue
		}
		row := repository.ManagerActivityResult{ManagerID: u.ID, Username: u.Username}
		for _, l := range r.s.logs {
			if l.ManagerID == u.ID {
				row.AdjustmentCount++
				row.NetStockChange += l.Adjustment
			}
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AdjustmentCount > out[j].AdjustmentCount })
	return out, nil
}
