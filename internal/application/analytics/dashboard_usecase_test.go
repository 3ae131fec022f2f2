package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/analytics"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/memory"
)

func ceoActor() entity.Actor {
	return entity.Actor{UserID: uuid.NewString(), Role: entity.RoleCEO}
}

func seedUser(t *testing.T, store *memory.Store, username string, role entity.Role) *entity.User {
	t.Helper()
	now := time.Now()
	u := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: "$2a$10$hash",
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, store.Users().Create(u))
	return u
}

func TestGetSummary_SoloCEO(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewDashboardUseCase(store.Reports(), 5)

	for _, role := range []entity.Role{entity.RoleManager, entity.RoleHR, entity.RoleEmployee} {
		_, err := uc.GetSummary(context.Background(), entity.Actor{UserID: uuid.NewString(), Role: role})
		assert.ErrorIs(t, err, domain.ErrForbidden, "el rol %s no ve el dashboard", role)
	}
}

func TestGetSummary_AgregadosCompletos(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewDashboardUseCase(store.Reports(), 5)

	emp := seedUser(t, store, "vendedora", entity.RoleEmployee)
	seedUser(t, store, "nueva", entity.RoleEmployee) // empleada sin ventas
	mgr := seedUser(t, store, "gerente", entity.RoleManager)

	now := time.Now()
	// dos ventas de la vendedora: 25.00 + 10.50
	for _, total := range []string{"25.00", "10.50"} {
		require.NoError(t, store.Sales().Create(&entity.Sale{
			ID:          uuid.NewString(),
			EmployeeID:  emp.ID,
			TotalAmount: decimal.RequireFromString(total),
			CreatedAt:   now,
		}, nil))
	}
	// producto con stock bajo (2 < 5) y uno saludable
	require.NoError(t, store.Products().Create(&entity.Product{
		ID: uuid.NewString(), Name: "Escaso", Price: decimal.RequireFromString("1.00"),
		Quantity: 2, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, store.Products().Create(&entity.Product{
		ID: uuid.NewString(), Name: "Abundante", Price: decimal.RequireFromString("1.00"),
		Quantity: 50, CreatedAt: now, UpdatedAt: now,
	}))
	// dos ajustes del gerente: +10 y -3
	for _, delta := range []int64{10, -3} {
		require.NoError(t, store.InventoryLogs().Create(&entity.InventoryLog{
			ID: uuid.NewString(), ManagerID: mgr.ID, ProductID: uuid.NewString(),
			Adjustment: delta, CreatedAt: now,
		}))
	}

	out, err := uc.GetSummary(context.Background(), ceoActor())
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("35.50").Equal(out.TotalRevenue),
		"ingreso esperado 35.50, obtenido %s", out.TotalRevenue)
	assert.Equal(t, int64(2), out.TotalSales)

	require.Len(t, out.LowStock, 1)
	assert.Equal(t, "Escaso", out.LowStock[0].Name)
	assert.Equal(t, int64(2), out.LowStock[0].Quantity)

	// ambas empleadas aparecen, incluso la que no vendió nada
	require.Len(t, out.EmployeeSales, 2)
	byUsername := map[string]int64{}
	for _, e := range out.EmployeeSales {
		byUsername[e.Username] = e.SaleCount
	}
	assert.Equal(t, int64(2), byUsername["vendedora"])
	assert.Equal(t, int64(0), byUsername["nueva"])

	require.Len(t, out.ManagerActivity, 1)
	assert.Equal(t, "gerente", out.ManagerActivity[0].Username)
	assert.Equal(t, int64(2), out.ManagerActivity[0].AdjustmentCount)
	assert.Equal(t, int64(7), out.ManagerActivity[0].NetStockChange)
}

func TestGetSummary_VacioSinDatos(t *testing.T) {
	store := memory.NewStore()
	uc := analytics.NewDashboardUseCase(store.Reports(), 5)

	out, err := uc.GetSummary(context.Background(), ceoActor())
	require.NoError(t, err)
	assert.True(t, out.TotalRevenue.IsZero())
	assert.Equal(t, int64(0), out.TotalSales)
	assert.Empty(t, out.LowStock)
	assert.Empty(t, out.EmployeeSales)
	assert.Empty(t, out.ManagerActivity)
}
