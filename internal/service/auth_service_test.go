package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laticiniossantana/notabase/internal/auth"
)

func TestLoginBuiltinAdmin(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.auth.Login("admin@exemplo.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "admin", res.User.Role)
	assert.Equal(t, "Administrador", res.User.Name)
	assert.Empty(t, res.User.Base)

	claims, err := auth.ValidateToken("test-secret", res.Token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
}

func TestLoginTableUserAlwaysGetsUserRole(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.users.SeedDefaults())

	res, err := env.auth.Login("admin@laticiniossantana.com.br", "admin123Ls")
	require.NoError(t, err)
	assert.Equal(t, "user", res.User.Role, "table accounts never get the admin role")
	assert.Equal(t, "Admin User", res.User.Name)
	assert.Equal(t, "Galpão", res.User.Base)
}

func TestLoginFirstMatchWinsOnDuplicateEmails(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.users.Create(UserInput{
		FirstName: "Primeira", LastName: "Conta",
		Email: "dup@x.com", Base: "Galpão", Password: "s1",
	})
	require.NoError(t, err)
	// second account with the same email, added behind the uniqueness check
	// via an in-place edit
	u2, err := env.users.Create(UserInput{
		FirstName: "Segunda", LastName: "Conta",
		Email: "other@x.com", Base: "Galpão", Password: "s1",
	})
	require.NoError(t, err)
	_, err = env.users.Update(u2.ID, UserInput{
		FirstName: "Segunda", LastName: "Conta",
		Email: "dup@x.com", Base: "Galpão", Password: "s1",
	})
	require.NoError(t, err)

	res, err := env.auth.Login("dup@x.com", "s1")
	require.NoError(t, err)
	assert.Equal(t, "Primeira Conta", res.User.Name)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.users.SeedDefaults())

	_, err := env.auth.Login("admin@exemplo.com", "wrong")
	assert.EqualError(t, err, "invalid credentials")

	_, err = env.auth.Login("nobody@x.com", "123456")
	assert.EqualError(t, err, "invalid credentials")

	// right password, wrong account
	_, err = env.auth.Login("marlene@laticiniossantana.com.br", "admin123Ls")
	assert.EqualError(t, err, "invalid credentials")
}
