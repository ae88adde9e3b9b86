package controller_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubolimpo_backend/internals/testutil"
)

func createPlayer(t *testing.T, env *testutil.Env, token string) uint {
	t.Helper()
	res := env.Do(t, "POST", "/api/players", map[string]any{
		"firstName":   "Juan",
		"lastName":    "Pérez",
		"position":    "Delantero",
		"number":      9,
		"dateOfBirth": "2001-05-14",
	}, token)
	require.Equal(t, 201, res.Status, res.Body)
	return testutil.ID(res.Data())
}

func TestPlayerLifecycle(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)

	id := createPlayer(t, env, token)
	path := fmt.Sprintf("/api/players/%d", id)

	res := env.Do(t, "GET", path, nil, "")
	require.Equal(t, 200, res.Status)
	assert.Equal(t, "Activo", res.Data()["status"])
	assert.Equal(t, "2001-05-14", res.Data()["dateOfBirth"])
	assert.Equal(t, true, res.Data()["is_active"])

	res = env.Do(t, "PUT", path, map[string]any{"lastName": "Gómez", "number": nil}, token)
	require.Equal(t, 200, res.Status, res.Body)
	assert.Equal(t, "Juan", res.Data()["firstName"])
	assert.Equal(t, "Gómez", res.Data()["lastName"])
	assert.Nil(t, res.Data()["number"])

	res = env.Do(t, "PUT", fmt.Sprintf("/api/players/delete/%d", id), nil, token)
	require.Equal(t, 200, res.Status)

	res = env.Do(t, "PUT", fmt.Sprintf("/api/players/delete/%d", id), nil, token)
	assert.Equal(t, 400, res.Status)
	assert.Contains(t, res.Message(), "ya está inactiva")

	res = env.Do(t, "GET", path, nil, "")
	assert.Equal(t, 404, res.Status)

	res = env.Do(t, "GET", "/api/players", nil, "")
	require.Equal(t, 200, res.Status)
	assert.Empty(t, res.List())
}

func TestPlayerWritesRequireAuth(t *testing.T) {
	env := testutil.NewEnv(t)

	res := env.Do(t, "POST", "/api/players", map[string]any{"firstName": "A"}, "")
	assert.Equal(t, 401, res.Status)

	res = env.Do(t, "PUT", "/api/players/delete/1", nil, "")
	assert.Equal(t, 401, res.Status)
}

func TestPlayerValidation(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)

	res := env.Do(t, "POST", "/api/players", map[string]any{"lastName": "Sin Nombre"}, token)
	assert.Equal(t, 400, res.Status)
	assert.Equal(t, "VALIDATION_ERROR", res.Body["error_code"])

	res = env.Do(t, "POST", "/api/players", "{not json", token)
	assert.Equal(t, 400, res.Status)

	id := createPlayer(t, env, token)
	res = env.Do(t, "PUT", fmt.Sprintf("/api/players/%d", id), map[string]any{"firstName": nil}, token)
	assert.Equal(t, 400, res.Status)

	res = env.Do(t, "GET", "/api/players/abc", nil, "")
	assert.Equal(t, 400, res.Status)

	res = env.Do(t, "PUT", "/api/players/delete/999", nil, token)
	assert.Equal(t, 404, res.Status)
}
