package controller_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubolimpo_backend/internals/testutil"
)

func TestMonthlyPlayerUniqueness(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)

	res := env.Do(t, "POST", "/api/players", map[string]any{
		"firstName": "Ana",
		"lastName":  "Ruiz",
		"position":  "Portera",
	}, token)
	require.Equal(t, 201, res.Status, res.Body)
	playerID := testutil.ID(res.Data())

	award := map[string]any{"playerId": playerID, "year": 2024, "month": 3, "reason": "Valla invicta"}
	res = env.Do(t, "POST", "/api/monthly-players", award, token)
	require.Equal(t, 201, res.Status, res.Body)
	awardID := testutil.ID(res.Data())
	player, _ := res.Data()["player"].(map[string]any)
	assert.Equal(t, "Ana", player["firstName"])

	res = env.Do(t, "POST", "/api/monthly-players", award, token)
	assert.Equal(t, 409, res.Status)

	res = env.Do(t, "PUT", fmt.Sprintf("/api/monthly-players/delete/%d", awardID), nil, token)
	require.Equal(t, 200, res.Status)

	res = env.Do(t, "POST", "/api/monthly-players", award, token)
	assert.Equal(t, 201, res.Status)
}

func TestMonthlyPlayerRequiresPlayer(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)

	res := env.Do(t, "POST", "/api/monthly-players", map[string]any{
		"playerId": 42, "year": 2024, "month": 3, "reason": "x",
	}, token)
	assert.Equal(t, 400, res.Status)

	res = env.Do(t, "POST", "/api/monthly-players", map[string]any{
		"playerId": 42, "year": 2024, "month": 13, "reason": "x",
	}, token)
	assert.Equal(t, 400, res.Status)
	assert.Equal(t, "VALIDATION_ERROR", res.Body["error_code"])
}

func TestMonthlyPlayerHiddenWhenPlayerInactive(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)

	res := env.Do(t, "POST", "/api/players", map[string]any{
		"firstName": "Luis",
		"lastName":  "Mora",
		"position":  "Delantero",
	}, token)
	require.Equal(t, 201, res.Status, res.Body)
	playerID := testutil.ID(res.Data())

	res = env.Do(t, "POST", "/api/monthly-players", map[string]any{
		"playerId": playerID, "year": 2025, "month": 6, "reason": "Máximo goleador",
	}, token)
	require.Equal(t, 201, res.Status, res.Body)
	awardID := testutil.ID(res.Data())

	res = env.Do(t, "GET", "/api/monthly-players", nil, "")
	require.Equal(t, 200, res.Status)
	require.Len(t, res.List(), 1)
	item := res.List()[0].(map[string]any)
	player := item["player"].(map[string]any)
	assert.Equal(t, true, player["is_active"])
	assert.Equal(t, "Activo", player["status"])
	assert.NotEqual(t, "0001-01-01T00:00:00Z", player["createdAt"])

	res = env.Do(t, "PUT", fmt.Sprintf("/api/players/delete/%d", playerID), nil, token)
	require.Equal(t, 200, res.Status)

	res = env.Do(t, "GET", "/api/monthly-players", nil, "")
	require.Equal(t, 200, res.Status)
	assert.Empty(t, res.List())

	res = env.Do(t, "GET", fmt.Sprintf("/api/monthly-players/%d", awardID), nil, "")
	assert.Equal(t, 404, res.Status)
}
