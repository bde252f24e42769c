//go:build unit

package jwt

import (
	"testing"
	"time"

	"salon-booking/internal/domain/user"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("secret", time.Hour)
	id := uuid.New()

	token, err := svc.GenerateToken(id, user.RoleStaff)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "staff", claims.Role)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	issued := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	svc := NewService("secret", time.Hour)
	svc.now = func() time.Time { return issued }
	token, err := svc.GenerateToken(uuid.New(), user.RoleCustomer)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := NewService("secret", time.Hour)
		later.now = func() time.Time { return issued.Add(2 * time.Hour) }
		_, err := later.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewService("other", time.Hour)
		other.now = svc.now
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing user id", func(t *testing.T) {
		raw := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{
			Role: "customer",
			RegisteredClaims: gojwt.RegisteredClaims{
				ExpiresAt: gojwt.NewNumericDate(issued.Add(time.Hour)),
			},
		})
		signed, err := raw.SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = svc.ValidateToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
