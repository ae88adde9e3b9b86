package controller_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubolimpo_backend/internals/testutil"
)

func TestRegisterAndLogin(t *testing.T) {
	env := testutil.NewEnv(t)

	res := env.Do(t, "POST", "/api/auth/register", map[string]any{
		"username": "olimpo",
		"password": "supersecret",
		"email":    "Admin@Olimpo.com ",
	}, "")
	require.Equal(t, 201, res.Status, res.Body)
	assert.Equal(t, "admin@olimpo.com", res.Data()["email"])
	assert.NotContains(t, res.Data(), "password")

	res = env.Do(t, "POST", "/api/auth/register", map[string]any{
		"username": "intruder",
		"password": "supersecret",
	}, "")
	assert.Equal(t, 409, res.Status)
	n, err := env.Repos.Users.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	_, err = env.Repos.Users.FindActiveByUsername(context.Background(), "intruder")
	assert.Error(t, err)

	res = env.Do(t, "POST", "/api/auth/login", map[string]any{
		"username": "olimpo",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, 401, res.Status)
	assert.Equal(t, "Credenciales inválidas.", res.Message())

	res = env.Do(t, "POST", "/api/auth/login", map[string]any{
		"username": "olimpo",
		"password": "supersecret",
	}, "")
	require.Equal(t, 200, res.Status, res.Body)
	token, _ := res.Data()["token"].(string)
	require.NotEmpty(t, token)

	res = env.Do(t, "GET", "/api/auth/me", nil, token)
	require.Equal(t, 200, res.Status)
	assert.Equal(t, "olimpo", res.Data()["username"])
}

func TestRegisterValidation(t *testing.T) {
	env := testutil.NewEnv(t)

	res := env.Do(t, "POST", "/api/auth/register", map[string]any{"username": "ab", "password": "123"}, "")
	assert.Equal(t, 400, res.Status)
	assert.Equal(t, "VALIDATION_ERROR", res.Body["error_code"])
}

func TestMeRequiresToken(t *testing.T) {
	env := testutil.NewEnv(t)

	res := env.Do(t, "GET", "/api/auth/me", nil, "")
	assert.Equal(t, 401, res.Status)

	res = env.Do(t, "GET", "/api/auth/me", nil, "garbage")
	assert.Equal(t, 401, res.Status)
}
