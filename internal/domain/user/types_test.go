//go:build unit

package user_test

import (
	"testing"

	"consultation-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect user.Role
		errIs  error
	}{
		{name: "client", input: "client", expect: user.RoleClient},
		{name: "professional", input: "professional", expect: user.RoleProfessional},
		{name: "admin", input: "admin", expect: user.RoleAdmin},
		{name: "unknown role", input: "operator", errIs: user.ErrInvalidRole},
		{name: "empty role", input: "", errIs: user.ErrInvalidRole},
		{name: "case sensitive", input: "Admin", errIs: user.ErrInvalidRole},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			role, err := user.NewRole(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Empty(t, role)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, role)
		})
	}
}

func TestActor_IsAdmin(t *testing.T) {
	id := uuid.New()

	assert.True(t, user.NewActor(id, user.RoleAdmin).IsAdmin())
	assert.False(t, user.NewActor(id, user.RoleClient).IsAdmin())
	assert.False(t, user.NewActor(id, user.RoleProfessional).IsAdmin())
}
