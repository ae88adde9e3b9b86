package controller_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubolimpo_backend/internals/testutil"
)

func createTeam(t *testing.T, env *testutil.Env, token, name, abbr string) uint {
	t.Helper()
	res := env.Do(t, "POST", "/api/teams", map[string]any{
		"name":            name,
		"shortName":       name,
		"abbreviatedName": abbr,
	}, token)
	require.Equal(t, 201, res.Status, res.Body)
	return testutil.ID(res.Data())
}

func TestCreateMatchAssignsOrder(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)
	home := createTeam(t, env, token, "Olimpo", "OLI")
	away := createTeam(t, env, token, "Rivales", "RIV")

	match := map[string]any{
		"category":   "Primera",
		"homeTeamId": home,
		"awayTeamId": away,
		"matchType":  "Liga",
		"dateTime":   "2024-08-10T18:00:00Z",
	}
	res := env.Do(t, "POST", "/api/matches", match, token)
	require.Equal(t, 201, res.Status, res.Body)
	assert.EqualValues(t, 5, res.Data()["order"])
	assert.Equal(t, "Programado", res.Data()["status"])
	homeTeam, _ := res.Data()["homeTeam"].(map[string]any)
	assert.Equal(t, "Olimpo", homeTeam["name"])

	res = env.Do(t, "POST", "/api/matches", match, token)
	require.Equal(t, 201, res.Status)
	assert.EqualValues(t, 10, res.Data()["order"])

	match["order"] = 1
	res = env.Do(t, "POST", "/api/matches", match, token)
	require.Equal(t, 201, res.Status)
	assert.EqualValues(t, 1, res.Data()["order"])

	res = env.Do(t, "GET", "/api/matches", nil, "")
	require.Equal(t, 200, res.Status)
	require.Len(t, res.List(), 3)
	first, _ := res.List()[0].(map[string]any)
	assert.EqualValues(t, 1, first["order"])
}

func TestMatchRejectsMissingTeam(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)
	home := createTeam(t, env, token, "Olimpo", "OLI")

	res := env.Do(t, "POST", "/api/matches", map[string]any{
		"category":   "Primera",
		"homeTeamId": home,
		"awayTeamId": 999,
		"matchType":  "Liga",
	}, token)
	assert.Equal(t, 400, res.Status)
	assert.Contains(t, res.Message(), "no existen")

	away := createTeam(t, env, token, "Rivales", "RIV")
	res = env.Do(t, "POST", "/api/matches", map[string]any{
		"category":   "Primera",
		"homeTeamId": home,
		"awayTeamId": away,
		"matchType":  "Liga",
	}, token)
	require.Equal(t, 201, res.Status)
	id := testutil.ID(res.Data())

	res = env.Do(t, "PUT", fmt.Sprintf("/api/matches/%d", id), map[string]any{"awayTeamId": 777}, token)
	assert.Equal(t, 400, res.Status)

	res = env.Do(t, "PUT", fmt.Sprintf("/api/matches/%d", id), map[string]any{"homeTeamScore": 2, "awayTeamScore": 1, "status": "Finalizado"}, token)
	require.Equal(t, 200, res.Status, res.Body)
	assert.EqualValues(t, 2, res.Data()["homeTeamScore"])
	assert.Equal(t, "Finalizado", res.Data()["status"])
}

func TestMatchTypeLength(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)
	home := createTeam(t, env, token, "Olimpo", "OLI")
	away := createTeam(t, env, token, "Rivales", "RIV")

	match := map[string]any{
		"category":   "Primera",
		"homeTeamId": home,
		"awayTeamId": away,
		"matchType":  strings.Repeat("a", 100),
	}
	res := env.Do(t, "POST", "/api/matches", match, token)
	require.Equal(t, 201, res.Status, res.Body)
	id := testutil.ID(res.Data())

	match["matchType"] = strings.Repeat("a", 101)
	res = env.Do(t, "POST", "/api/matches", match, token)
	assert.Equal(t, 400, res.Status)

	res = env.Do(t, "PUT", fmt.Sprintf("/api/matches/%d", id), map[string]any{"matchType": strings.Repeat("b", 101)}, token)
	assert.Equal(t, 400, res.Status)
}
