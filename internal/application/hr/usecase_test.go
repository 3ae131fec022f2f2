package hr_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/application/hr"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/infrastructure/memory"
)

func seedUser(t *testing.T, store *memory.Store, role entity.Role) *entity.User {
	t.Helper()
	now := time.Now()
	u := &entity.User{
		ID:           uuid.NewString(),
		Username:     "user-" + uuid.NewString()[:8],
		PasswordHash: "$2a$10$hash",
		Name:         "Alguien",
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, store.Users().Create(u))
	return u
}

func hrActor() entity.Actor {
	return entity.Actor{UserID: uuid.NewString(), Role: entity.RoleHR}
}

func TestListEmployees_SoloHRyExcluyeCEO(t *testing.T) {
	store := memory.NewStore()
	uc := hr.NewHRUseCase(store.Users())

	seedUser(t, store, entity.RoleCEO)
	seedUser(t, store, entity.RoleManager)
	seedUser(t, store, entity.RoleEmployee)
	seedUser(t, store, entity.RoleHR)

	out, err := uc.ListEmployees(context.Background(), hrActor(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Employees, 3, "el CEO no aparece en la vista de personal")
	for _, e := range out.Employees {
		assert.NotEqual(t, "CEO", e.Role)
	}

	for _, role := range []entity.Role{entity.RoleCEO, entity.RoleManager, entity.RoleEmployee} {
		_, err := uc.ListEmployees(context.Background(), entity.Actor{UserID: uuid.NewString(), Role: role}, dto.PageRequest{})
		assert.ErrorIs(t, err, domain.ErrForbidden, "el rol %s no gestiona personal", role)
	}
}

func TestUpdateSalary(t *testing.T) {
	store := memory.NewStore()
	uc := hr.NewHRUseCase(store.Users())
	emp := seedUser(t, store, entity.RoleEmployee)

	out, err := uc.UpdateSalary(context.Background(), hrActor(), emp.ID, decimal.RequireFromString("1850.00"))
	require.NoError(t, err)
	require.NotNil(t, out.Salary)
	assert.True(t, decimal.RequireFromString("1850.00").Equal(*out.Salary))

	// negativo se rechaza
	_, err = uc.UpdateSalary(context.Background(), hrActor(), emp.ID, decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// usuario inexistente
	_, err = uc.UpdateSalary(context.Background(), hrActor(), uuid.NewString(), decimal.RequireFromString("100"))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateSalary_NoTocaAlCEO(t *testing.T) {
	store := memory.NewStore()
	uc := hr.NewHRUseCase(store.Users())
	ceo := seedUser(t, store, entity.RoleCEO)

	_, err := uc.UpdateSalary(context.Background(), hrActor(), ceo.ID, decimal.RequireFromString("1"))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateShiftWindow(t *testing.T) {
	store := memory.NewStore()
	uc := hr.NewHRUseCase(store.Users())
	emp := seedUser(t, store, entity.RoleEmployee)

	out, err := uc.UpdateShiftWindow(context.Background(), hrActor(), emp.ID, dto.UpdateShiftWindowRequest{
		ShiftStart: "09:00",
		ShiftEnd:   "17:30",
	})
	require.NoError(t, err)
	require.NotNil(t, out.ShiftStart)
	require.NotNil(t, out.ShiftEnd)
	assert.Equal(t, "09:00", *out.ShiftStart)
	assert.Equal(t, "17:30", *out.ShiftEnd)
}

func TestUpdateShiftWindow_HorasInvalidas(t *testing.T) {
	store := memory.NewStore()
	uc := hr.NewHRUseCase(store.Users())
	emp := seedUser(t, store, entity.RoleEmployee)

	cases := []dto.UpdateShiftWindowRequest{
		{ShiftStart: "9am", ShiftEnd: "17:00"},
		{ShiftStart: "09:00", ShiftEnd: "mediodía"},
		{ShiftStart: "17:00", ShiftEnd: "09:00"}, // fin antes del inicio
		{ShiftStart: "09:00", ShiftEnd: "09:00"}, // ventana vacía
	}
	for _, in := range cases {
		_, err := uc.UpdateShiftWindow(context.Background(), hrActor(), emp.ID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "ventana %s-%s debe rechazarse", in.ShiftStart, in.ShiftEnd)
	}
}
