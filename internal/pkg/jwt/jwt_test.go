//go:build unit

package jwt

import (
	"testing"
	"time"

	"salon-booking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", time.Hour)
	id := uuid.New()

	token, err := svc.GenerateToken(id, user.RoleStaff, "Asha Rao", "asha@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "staff", claims.Role)
	assert.Equal(t, "Asha Rao", claims.Name)
	assert.Equal(t, "asha@example.com", claims.Email)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	id := uuid.New()

	t.Run("expired", func(t *testing.T) {
		svc := NewService("secret", -time.Minute)
		token, err := svc.GenerateToken(id, user.RoleCustomer, "Asha", "a@example.com")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewService("secret", time.Hour).GenerateToken(id, user.RoleCustomer, "Asha", "a@example.com")
		require.NoError(t, err)

		_, err = NewService("other", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
