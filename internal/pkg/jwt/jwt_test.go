//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"cellar-market/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	userID := uuid.New()

	t.Run("issued token round-trips identity", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)
		token, err := svc.GenerateToken(userID, "buyer@example.com")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "buyer@example.com", claims.Email)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken(userID, "buyer@example.com")
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := jwt.NewService("secret", -time.Minute)
		token, err := svc.GenerateToken(userID, "buyer@example.com")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing email is rejected", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)
		token, err := svc.GenerateToken(userID, "  ")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrMissingEmail)
	})

	t.Run("email is normalised", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)
		token, err := svc.GenerateToken(userID, "Buyer@Example.COM")
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "buyer@example.com", claims.Email)
	})
}
