package jwt

import (
	"testing"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc, err := NewJWTService("test-secret", "15m")
	require.NoError(t, err)

	tokenString, expiresAt, err := svc.GenerateAccessToken("2", "Sarah Manager", user.RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Positive(t, expiresAt)

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "2", claims["user_id"])
	assert.Equal(t, "Sarah Manager", claims["name"])
	assert.Equal(t, "manager", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_RejectsUnknownRole(t *testing.T) {
	svc, err := NewJWTService("test-secret", "15m")
	require.NoError(t, err)

	_, _, err = svc.GenerateAccessToken("9", "Nobody", user.Role("owner"))
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewJWTService_InvalidExpiration(t *testing.T) {
	_, err := NewJWTService("test-secret", "fifteen minutes")
	assert.Error(t, err)
}

func TestDecode_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService("secret-a", "15m")
	require.NoError(t, err)
	verifier, err := NewJWTService("secret-b", "15m")
	require.NoError(t, err)

	tokenString, _, err := issuer.GenerateAccessToken("1", "Admin User", user.RoleSuperAdmin)
	require.NoError(t, err)

	_, err = verifier.JWTAuth().Decode(tokenString)
	assert.Error(t, err)
}
