//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"consultation-booking/internal/domain/user"
	"consultation-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	id := uuid.New()

	token, err := svc.GenerateToken(id, user.RoleProfessional)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	sub, err := claims.Subject()
	require.NoError(t, err)
	assert.Equal(t, id, sub)
	assert.Equal(t, "professional", claims.Role)
}

func TestService_SubjectOnlyToken(t *testing.T) {
	id := uuid.New()
	raw := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"sub":  id.String(),
		"role": "client",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := raw.SignedString([]byte("secret"))
	require.NoError(t, err)

	claims, err := jwt.NewService("secret", time.Hour).ValidateToken(signed)
	require.NoError(t, err)

	sub, err := claims.Subject()
	require.NoError(t, err)
	assert.Equal(t, id, sub)
}

func TestService_Rejects(t *testing.T) {
	id := uuid.New()

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("one", time.Hour).GenerateToken(id, user.RoleClient)
		require.NoError(t, err)

		_, err = jwt.NewService("two", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := jwt.NewService("secret", -time.Minute).GenerateToken(id, user.RoleClient)
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
