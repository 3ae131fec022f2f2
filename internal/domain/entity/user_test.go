package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

func TestParseRole_RolesValidos(t *testing.T) {
	for _, s := range []string{"CEO", "MANAGER", "HR", "EMPLOYEE"} {
		role, err := entity.ParseRole(s)
		require.NoError(t, err, "el rol %q debe ser válido", s)
		assert.Equal(t, entity.Role(s), role)
		assert.True(t, role.IsValid())
	}
}

func TestParseRole_RolRechazado(t *testing.T) {
	for _, s := range []string{"", "ceo", "ADMIN", "SUPERVISOR", "Employee"} {
		_, err := entity.ParseRole(s)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "el rol %q debe rechazarse", s)
	}
}

func TestRole_IsValid_RolDesconocido(t *testing.T) {
	assert.False(t, entity.Role("INTERN").IsValid())
	assert.False(t, entity.Role("").IsValid())
}
