package shifts_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/shifts"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/memory"
)

// fakeClock reloj controlable para fijar el día y avanzar la hora.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newShiftUC(store *memory.Store) (*shifts.ShiftUseCase, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}
	return shifts.NewShiftUseCaseWithClock(store.Shifts(), clock.now), clock
}

func employeeActor() entity.Actor {
	return entity.Actor{UserID: uuid.NewString(), Role: entity.RoleEmployee}
}

func TestCheckIn_SoloEmployee(t *testing.T) {
	store := memory.NewStore()
	uc, _ := newShiftUC(store)

	for _, role := range []entity.Role{entity.RoleCEO, entity.RoleManager, entity.RoleHR} {
		_, err := uc.CheckIn(context.Background(), entity.Actor{UserID: uuid.NewString(), Role: role})
		assert.ErrorIs(t, err, domain.ErrForbidden, "el rol %s no marca jornada", role)
	}
}

func TestCheckIn_ElPrimeroGana(t *testing.T) {
	store := memory.NewStore()
	uc, clock := newShiftUC(store)
	actor := employeeActor()

	first, err := uc.CheckIn(context.Background(), actor)
	require.NoError(t, err)
	require.NotNil(t, first.CheckIn)
	firstMark := *first.CheckIn

	// segundo check-in del mismo día, dos horas después
	clock.advance(2 * time.Hour)
	second, err := uc.CheckIn(context.Background(), actor)
	require.NoError(t, err)
	require.NotNil(t, second.CheckIn)
	assert.True(t, firstMark.Equal(*second.CheckIn), "la marca original debe conservarse")
	assert.Equal(t, first.ID, second.ID, "misma jornada, no una nueva")
}

func TestCheckIn_DiaNuevoJornadaNueva(t *testing.T) {
	store := memory.NewStore()
	uc, clock := newShiftUC(store)
	actor := employeeActor()

	d1, err := uc.CheckIn(context.Background(), actor)
	require.NoError(t, err)

	clock.advance(24 * time.Hour)
	d2, err := uc.CheckIn(context.Background(), actor)
	require.NoError(t, err)

	assert.NotEqual(t, d1.ID, d2.ID)
	assert.NotEqual(t, d1.Date, d2.Date)
}

func TestCheckOut_SinJornadaEsNoOp(t *testing.T) {
	store := memory.NewStore()
	uc, _ := newShiftUC(store)

	out, err := uc.CheckOut(context.Background(), employeeActor())
	require.NoError(t, err, "check-out sin jornada no reporta error")
	assert.Nil(t, out, "no se crea fila ni marca alguna")

	list, err := store.Shifts().ListAll(10, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCheckOut_MarcaUnaSolaVez(t *testing.T) {
	store := memory.NewStore()
	uc, clock := newShiftUC(store)
	actor := employeeActor()

	_, err := uc.CheckIn(context.Background(), actor)
	require.NoError(t, err)

	clock.advance(8 * time.Hour)
	first, err := uc.CheckOut(context.Background(), actor)
	require.NoError(t, err)
	require.NotNil(t, first)
	require.NotNil(t, first.CheckOut)
	firstMark := *first.CheckOut

	clock.advance(time.Hour)
	second, err := uc.CheckOut(context.Background(), actor)
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.True(t, firstMark.Equal(*second.CheckOut), "la primera salida debe conservarse")
}

func TestListShifts_SoloHRyCEO(t *testing.T) {
	store := memory.NewStore()
	uc, _ := newShiftUC(store)

	actor := employeeActor()
	_, err := uc.CheckIn(context.Background(), actor)
	require.NoError(t, err)

	for _, role := range []entity.Role{entity.RoleHR, entity.RoleCEO} {
		out, err := uc.ListShifts(context.Background(), entity.Actor{UserID: uuid.NewString(), Role: role}, dto.PageRequest{})
		require.NoError(t, err, "el rol %s debe poder listar jornadas", role)
		assert.Len(t, out.Shifts, 1)
	}
	for _, role := range []entity.Role{entity.RoleManager, entity.RoleEmployee} {
		_, err := uc.ListShifts(context.Background(), entity.Actor{UserID: uuid.NewString(), Role: role}, dto.PageRequest{})
		assert.ErrorIs(t, err, domain.ErrForbidden, "el rol %s no lista jornadas", role)
	}
}
