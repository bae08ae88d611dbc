package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims.UserID)
}

func TestJWTExpiryIsThirtyDays(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 30*24*time.Hour, lifetime)
}

func TestJWTWrongSecretRejected(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTGarbageRejected(t *testing.T) {
	svc := NewJWTService("test-secret")

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
