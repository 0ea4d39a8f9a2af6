package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := GenerateToken("secret", "jane@exemplo.com", "user", "Jane Silva", "Lauro de Freitas")
	require.NoError(t, err)

	claims, err := ValidateToken("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, "jane@exemplo.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "Jane Silva", claims.Name)
	assert.Equal(t, "Lauro de Freitas", claims.Base)
	assert.NotEmpty(t, claims.ID)
	assert.False(t, claims.IsAdmin())
}

func TestTokenWrongSecret(t *testing.T) {
	tok, err := GenerateToken("right", "a@b.com", "user", "A", "")
	require.NoError(t, err)

	_, err = ValidateToken("wrong", tok)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	_, err := ValidateToken("secret", "not.a.token")
	assert.Error(t, err)
}

func TestIsAdmin(t *testing.T) {
	admin := &Claims{Role: "admin"}
	user := &Claims{Role: "user"}
	assert.True(t, admin.IsAdmin())
	assert.False(t, user.IsAdmin())
}
