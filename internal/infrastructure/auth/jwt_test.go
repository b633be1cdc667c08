package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", "vitrine", 30)

	token, err := svc.Generate(42, "member")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "member", claims.Role)
	assert.Equal(t, "vitrine", claims.Issuer)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", "vitrine", 30).Generate(1, "member")
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", "vitrine", 30).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	token, err := NewJWTService("secret", "other-app", 30).Generate(1, "admin")
	require.NoError(t, err)

	_, err = NewJWTService("secret", "vitrine", 30).Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	_, err := NewJWTService("secret", "vitrine", 30).Verify("not.a.token")
	assert.Error(t, err)
}
