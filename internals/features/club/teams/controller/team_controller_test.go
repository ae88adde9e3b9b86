package controller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubolimpo_backend/internals/testutil"
)

func TestCreateTeam(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)

	body := map[string]any{
		"name":            "Club Olimpo",
		"shortName":       "Olimpo",
		"abbreviatedName": "oli",
		"primaryColor":    "#FFD700",
	}
	res := env.Do(t, "POST", "/api/teams", body, token)
	require.Equal(t, 201, res.Status, res.Body)
	assert.Equal(t, "OLI", res.Data()["abbreviatedName"])

	body["abbreviatedName"] = "OL2"
	res = env.Do(t, "POST", "/api/teams", body, token)
	assert.Equal(t, 409, res.Status)

	res = env.Do(t, "POST", "/api/teams", map[string]any{
		"name":            "Rival",
		"shortName":       "Rival",
		"abbreviatedName": "RIVAL",
	}, token)
	assert.Equal(t, 400, res.Status)
}
