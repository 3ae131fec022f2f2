// Package analytics contiene el caso de uso del dashboard agregado del CEO.
package analytics

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen agregado para el CEO.
//
// Fuente de datos: ReportRepository (consultas read-only). Sin caché: cada
// petición recalcula sobre los datos actuales.
type DashboardUseCase struct {
	reportRepo        repository.ReportRepository
	lowStockThreshold int64
}

// NewDashboardUseCase construye el caso de uso. threshold <= 0 usa el valor por defecto (5).
func NewDashboardUseCase(reportRepo repository.ReportRepository, threshold int64) *DashboardUseCase {
	if threshold <= 0 {
		threshold = 5
	}
	return &DashboardUseCase{reportRepo: reportRepo, lowStockThreshold: threshold}
}

// GetSummary construye el DashboardSummaryDTO. Solo el CEO puede verlo.
//
// Cuatro consultas en paralelo:
//  1. SalesTotals          → TotalRevenue + TotalSales
//  2. LowStock(threshold)  → LowStock
//  3. SalesByEmployee      → EmployeeSales
//  4. AdjustmentsByManager → ManagerActivity
func (uc *DashboardUseCase) GetSummary(ctx context.Context, actor entity.Actor) (*dto.DashboardSummaryDTO, error) {
	if actor.Role != entity.RoleCEO {
		return nil, domain.ErrForbidden
	}

	type totalsResult struct {
		revenue decimal.Decimal
		count   int64
		err     error
	}
	type lowStockResult struct {
		products []*entity.Product
		err      error
	}
	type employeeResult struct {
		rows []repository.EmployeeSalesResult
		err  error
	}
	type managerResult struct {
		rows []repository.ManagerActivityResult
		err  error
	}

	totalsCh := make(chan totalsResult, 1)
	lowCh := make(chan lowStockResult, 1)
	empCh := make(chan employeeResult, 1)
	mgrCh := make(chan managerResult, 1)

	go func() {
		revenue, count, err := uc.reportRepo.SalesTotals(ctx)
		totalsCh <- totalsResult{revenue, count, err}
	}()
	go func() {
		products, err := uc.reportRepo.LowStock(ctx, uc.lowStockThreshold)
		lowCh <- lowStockResult{products, err}
	}()
	go func() {
		rows, err := uc.reportRepo.SalesByEmployee(ctx)
		empCh <- employeeResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.AdjustmentsByManager(ctx)
		mgrCh <- managerResult{rows, err}
	}()

	totals := <-totalsCh
	low := <-lowCh
	emp := <-empCh
	mgr := <-mgrCh

	if totals.err != nil {
		return nil, totals.err
	}
	if low.err != nil {
		return nil, low.err
	}
	if emp.err != nil {
		return nil, emp.err
	}
	if mgr.err != nil {
		return nil, mgr.err
	}

	out := &dto.DashboardSummaryDTO{
		TotalRevenue:    totals.revenue,
		TotalSales:      totals.count,
		LowStock:        make([]dto.LowStockProductDTO, 0, len(low.products)),
		EmployeeSales:   make([]dto.EmployeeSalesDTO, 0, len(emp.rows)),
		ManagerActivity: make([]dto.ManagerActivityDTO, 0, len(mgr.rows)),
	}
	for _, p := range low.products {
		out.LowStock = append(out.LowStock, dto.LowStockProductDTO{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  p.Quantity,
		})
	}
	for _, r := range emp.rows {
		out.EmployeeSales = append(out.EmployeeSales, dto.EmployeeSalesDTO{
			EmployeeID: r.EmployeeID,
			Username:   r.Username,
			SaleCount:  r.SaleCount,
			TotalSales: r.TotalSales,
		})
	}
	for _, r := range mgr.rows {
		out.ManagerActivity = append(out.ManagerActivity, dto.ManagerActivityDTO{
			ManagerID:       r.ManagerID,
			Username:        r.Username,
			AdjustmentCount: r.AdjustmentCount,
			NetStockChange:  r.NetStockChange,
		})
	}
	return out, nil
}
