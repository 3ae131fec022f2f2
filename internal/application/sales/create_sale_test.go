package sales_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/sales"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/memory"
)

func seedProduct(t *testing.T, store *memory.Store, price string, quantity int64) string {
	t.Helper()
	id := uuid.NewString()
	now := time.Now()
	err := store.Products().Create(&entity.Product{
		ID:        id,
		Name:      "Producto " + id[:8],
		Price:     decimal.RequireFromString(price),
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	return id
}

func employeeActor() entity.Actor {
	return entity.Actor{UserID: uuid.NewString(), Role: entity.RoleEmployee}
}

func TestCreateSale_SoloEmployee(t *testing.T) {
	store := memory.NewStore()
	uc := sales.NewCreateSaleUseCase(store, store.Sales())

	for _, role := range []entity.Role{entity.RoleCEO, entity.RoleManager, entity.RoleHR} {
		actor := entity.Actor{UserID: uuid.NewString(), Role: role}
		_, err := uc.CreateSale(context.Background(), actor, dto.CreateSaleRequest{
			Items: []dto.SaleItemRequest{{ProductID: uuid.NewString(), Quantity: 1}},
		})
		assert.ErrorIs(t, err, domain.ErrForbidden, "el rol %s no debe registrar ventas", role)
	}
}

func TestCreateSale_SinItemsEsInvalida(t *testing.T) {
	store := memory.NewStore()
	uc := sales.NewCreateSaleUseCase(store, store.Sales())

	_, err := uc.CreateSale(context.Background(), employeeActor(), dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateSale(context.Background(), employeeActor(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: uuid.NewString(), Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero debe rechazarse")
}

func TestCreateSale_TotalYPrecioCongelado(t *testing.T) {
	store := memory.NewStore()
	uc := sales.NewCreateSaleUseCase(store, store.Sales())

	p1 := seedProduct(t, store, "10.00", 10)
	p2 := seedProduct(t, store, "5.50", 10)
	actor := employeeActor()

	out, err := uc.CreateSale(context.Background(), actor, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: p1, Quantity: 2},
			{ProductID: p2, Quantity: 3},
		},
	})
	require.NoError(t, err)

	// total = 10.00×2 + 5.50×3 = 36.50
	assert.True(t, decimal.RequireFromString("36.50").Equal(out.TotalAmount),
		"total esperado 36.50, obtenido %s", out.TotalAmount)
	require.Len(t, out.Items, 2)
	assert.True(t, decimal.RequireFromString("10.00").Equal(out.Items[0].PriceAtSale))
	assert.True(t, decimal.RequireFromString("5.50").Equal(out.Items[1].PriceAtSale))

	// stock descontado
	prod1, err := store.Products().GetByID(p1)
	require.NoError(t, err)
	assert.Equal(t, int64(8), prod1.Quantity)
	prod2, err := store.Products().GetByID(p2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), prod2.Quantity)
}

func TestCreateSale_PrecioPosteriorNoAfectaVenta(t *testing.T) {
	store := memory.NewStore()
	uc := sales.NewCreateSaleUseCase(store, store.Sales())

	p := seedProduct(t, store, "10.00", 5)
	actor := employeeActor()

	out, err := uc.CreateSale(context.Background(), actor, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: p, Quantity: 1}},
	})
	require.NoError(t, err)

	// subir el precio después de la venta
	prod, err := store.Products().GetByID(p)
	require.NoError(t, err)
	prod.Price = decimal.RequireFromString("99.99")
	require.NoError(t, store.Products().Update(prod))

	saved, err := uc.GetSale(context.Background(), actor, out.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("10.00").Equal(saved.Items[0].PriceAtSale),
		"el precio congelado no debe cambiar con el catálogo")
	assert.True(t, decimal.RequireFromString("10.00").Equal(saved.TotalAmount))
}

func TestCreateSale_ProductoRepetidoAcumulaDescuento(t *testing.T) {
	store := memory.NewStore()
	uc := sales.NewCreateSaleUseCase(store, store.Sales())

	p := seedProduct(t, store, "2.00", 5)

	out, err := uc.CreateSale(context.Background(), employeeActor(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: p, Quantity: 3},
			{ProductID: p, Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("10.00").Equal(out.TotalAmount))

	prod, err := store.Products().GetByID(p)
	require.NoError(t, err)
	assert.Equal(t, int64(0), prod.Quantity)
}

func TestCreateSale_ProductoRepetidoSinStockRevierte(t *testing.T) {
	store := memory.NewStore()
	uc := sales.NewCreateSaleUseCase(store, store.Sales())

	p := seedProduct(t, store, "2.00", 5)

	// 3 + 3 > 5: la segunda línea ve el stock ya descontado dentro de la tx
	_, err := uc.CreateSale(context.Background(), employeeActor(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: p, Quantity: 3},
			{ProductID: p, Quantity: 3},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	prod, err := store.Products().GetByID(p)
	require.NoError(t, err)
	assert.Equal(t, int64(5), prod.Quantity, "el descuento de la primera línea debe revertirse")
}

func TestCreateSale_ProductoInexistenteRevierteTodo(t *testing.T) {
	store := memory.NewStore()
	uc := sales.NewCreateSaleUseCase(store, store.Sales())

	p := seedProduct(t, store, "10.00", 10)
	actor := employeeActor()

	_, err := uc.CreateSale(context.Background(), actor, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: p, Quantity: 2},
			{ProductID: uuid.NewString(), Quantity: 1},
		},
	})
	var notFound *domain.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// sin descuento parcial ni venta registrada
	prod, err := store.Products().GetByID(p)
	require.NoError(t, err)
	assert.Equal(t, int64(10), prod.Quantity)
	hist, err := store.Sales().ListByEmployee(actor.UserID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, hist)
}

func TestCreateSale_StockInsuficienteIdentificaProducto(t *testing.T) {
	store := memory.NewStore()
	uc := sales.NewCreateSaleUseCase(store, store.Sales())

	p1 := seedProduct(t, store, "10.00", 10)
	p2 := seedProduct(t, store, "4.00", 1)

	_, err := uc.CreateSale(context.Background(), employeeActor(), dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: p1, Quantity: 2},
			{ProductID: p2, Quantity: 5},
		},
	})
	var stockErr *domain.StockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, p2, stockErr.ProductID)
	assert.Equal(t, int64(5), stockErr.Requested)
	assert.Equal(t, int64(1), stockErr.Available)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	prod1, err := store.Products().GetByID(p1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), prod1.Quantity, "rollback: la primera línea no debe quedar descontada")
}

func TestCreateSale_CheckoutsConcurrentesNoSobrevenden(t *testing.T) {
	store := memory.NewStore()
	uc := sales.NewCreateSaleUseCase(store, store.Sales())

	p := seedProduct(t, store, "10.00", 5)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, qty := range []int64{4, 3} {
		wg.Add(1)
		go func(i int, qty int64) {
			defer wg.Done()
			_, errs[i] = uc.CreateSale(context.Background(), employeeActor(), dto.CreateSaleRequest{
				Items: []dto.SaleItemRequest{{ProductID: p, Quantity: qty}},
			})
		}(i, qty)
	}
	wg.Wait()

	// 4+3 > 5: exactamente una de las dos debe fallar por stock
	var okCount, stockFails int
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case assert.ErrorIs(t, err, domain.ErrInsufficientStock):
			stockFails++
		}
	}
	assert.Equal(t, 1, okCount, "exactamente una venta debe confirmarse")
	assert.Equal(t, 1, stockFails)

	prod, err := store.Products().GetByID(p)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, prod.Quantity, int64(0), "la cantidad nunca queda negativa")
}

func TestGetSale_EmployeeNoVeVentasAjenas(t *testing.T) {
	store := memory.NewStore()
	uc := sales.NewCreateSaleUseCase(store, store.Sales())

	p := seedProduct(t, store, "10.00", 10)
	owner := employeeActor()
	out, err := uc.CreateSale(context.Background(), owner, dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{{ProductID: p, Quantity: 1}},
	})
	require.NoError(t, err)

	otro := employeeActor()
	_, err = uc.GetSale(context.Background(), otro, out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// el dueño sí la ve; un MANAGER también
	_, err = uc.GetSale(context.Background(), owner, out.ID)
	assert.NoError(t, err)
	_, err = uc.GetSale(context.Background(), entity.Actor{UserID: uuid.NewString(), Role: entity.RoleManager}, out.ID)
	assert.NoError(t, err)
}

func TestHistory_EmployeeSoloVeLasSuyas(t *testing.T) {
	store := memory.NewStore()
	uc := sales.NewCreateSaleUseCase(store, store.Sales())

	p := seedProduct(t, store, "1.00", 100)
	a := employeeActor()
	b := employeeActor()
	for _, actor := range []entity.Actor{a, a, b} {
		_, err := uc.CreateSale(context.Background(), actor, dto.CreateSaleRequest{
			Items: []dto.SaleItemRequest{{ProductID: p, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	mine, err := uc.History(context.Background(), a, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, mine.Sales, 2)

	all, err := uc.History(context.Background(), entity.Actor{UserID: uuid.NewString(), Role: entity.RoleCEO}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Sales, 3)
}
