package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/inventory"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/memory"
)

func seedProduct(t *testing.T, store *memory.Store, quantity int64) string {
	t.Helper()
	id := uuid.NewString()
	now := time.Now()
	err := store.Products().Create(&entity.Product{
		ID:        id,
		Name:      "Producto " + id[:8],
		Price:     decimal.RequireFromString("3.00"),
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return id
}

func managerActor() entity.Actor {
	return entity.Actor{UserID: uuid.NewString(), Role: entity.RoleManager}
}

func TestAdjust_SoloManager(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewAdjustStockUseCase(store, store.InventoryLogs())

	p := seedProduct(t, store, 10)
	for _, role := range []entity.Role{entity.RoleCEO, entity.RoleHR, entity.RoleEmployee} {
		actor := entity.Actor{UserID: uuid.NewString(), Role: role}
		_, err := uc.Adjust(context.Background(), actor, dto.AdjustStockRequest{ProductID: p, Adjustment: 1})
		assert.ErrorIs(t, err, domain.ErrForbidden, "el rol %s no debe ajustar inventario", role)
	}
}

func TestAdjust_DeltaCeroEsInvalido(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewAdjustStockUseCase(store, store.InventoryLogs())

	_, err := uc.Adjust(context.Background(), managerActor(), dto.AdjustStockRequest{ProductID: uuid.NewString(), Adjustment: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_AplicaDeltaYRegistraAuditoria(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewAdjustStockUseCase(store, store.InventoryLogs())

	p := seedProduct(t, store, 10)
	actor := managerActor()

	out, err := uc.Adjust(context.Background(), actor, dto.AdjustStockRequest{ProductID: p, Adjustment: -4})
	require.NoError(t, err)
	assert.Equal(t, int64(6), out.NewQuantity)

	prod, err := store.Products().GetByID(p)
	require.NoError(t, err)
	assert.Equal(t, int64(6), prod.Quantity)

	logs, err := store.InventoryLogs().List(10, 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, actor.UserID, logs[0].ManagerID)
	assert.Equal(t, p, logs[0].ProductID)
	assert.Equal(t, int64(-4), logs[0].Adjustment)
}

func TestAdjust_NoEsIdempotente(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewAdjustStockUseCase(store, store.InventoryLogs())

	p := seedProduct(t, store, 0)
	actor := managerActor()

	// el mismo delta dos veces se aplica dos veces
	for i := 0; i < 2; i++ {
		_, err := uc.Adjust(context.Background(), actor, dto.AdjustStockRequest{ProductID: p, Adjustment: 5})
		require.NoError(t, err)
	}
	prod, err := store.Products().GetByID(p)
	require.NoError(t, err)
	assert.Equal(t, int64(10), prod.Quantity)

	logs, err := store.InventoryLogs().List(10, 0)
	require.NoError(t, err)
	assert.Len(t, logs, 2, "cada ajuste deja su propia entrada de auditoría")
}

func TestAdjust_RechazaStockNegativo(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewAdjustStockUseCase(store, store.InventoryLogs())

	p := seedProduct(t, store, 3)

	_, err := uc.Adjust(context.Background(), managerActor(), dto.AdjustStockRequest{ProductID: p, Adjustment: -5})
	var stockErr *domain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.ErrorIs(t, err, domain.ErrNegativeStock)
	assert.Equal(t, p, stockErr.ProductID)

	// ni cambio de stock ni entrada de auditoría
	prod, err := store.Products().GetByID(p)
	require.NoError(t, err)
	assert.Equal(t, int64(3), prod.Quantity)
	logs, err := store.InventoryLogs().List(10, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestAdjust_ProductoInexistente(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewAdjustStockUseCase(store, store.InventoryLogs())

	_, err := uc.Adjust(context.Background(), managerActor(), dto.AdjustStockRequest{ProductID: uuid.NewString(), Adjustment: 1})
	var notFound *domain.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestListLogs_SoloCEOyManager(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewAdjustStockUseCase(store, store.InventoryLogs())

	for _, role := range []entity.Role{entity.RoleCEO, entity.RoleManager} {
		_, err := uc.ListLogs(context.Background(), entity.Actor{UserID: uuid.NewString(), Role: role}, dto.PageRequest{})
		assert.NoError(t, err, "el rol %s debe poder ver la auditoría", role)
	}
	for _, role := range []entity.Role{entity.RoleHR, entity.RoleEmployee} {
		_, err := uc.ListLogs(context.Background(), entity.Actor{UserID: uuid.NewString(), Role: role}, dto.PageRequest{})
		assert.ErrorIs(t, err, domain.ErrForbidden, "el rol %s no debe ver la auditoría", role)
	}
}
