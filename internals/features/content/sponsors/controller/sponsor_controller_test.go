package controller_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubolimpo_backend/internals/testutil"
)

func TestSponsorRules(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)

	res := env.Do(t, "POST", "/api/sponsors", map[string]any{"name": "Cervecería Local"}, token)
	require.Equal(t, 201, res.Status, res.Body)
	assert.Equal(t, "Partner", res.Data()["level"])
	id := testutil.ID(res.Data())

	res = env.Do(t, "POST", "/api/sponsors", map[string]any{"name": "Platino SA", "level": "Platinum"}, token)
	assert.Equal(t, 400, res.Status)

	res = env.Do(t, "POST", "/api/sponsors", map[string]any{
		"name":      "Al Revés",
		"startDate": "2025-06-01T00:00:00Z",
		"endDate":   "2025-01-01T00:00:00Z",
	}, token)
	assert.Equal(t, 400, res.Status)

	res = env.Do(t, "POST", "/api/sponsors", map[string]any{
		"name":      "Temporada 2025",
		"startDate": "2025-01-01",
		"endDate":   "2025-06-30",
	}, token)
	require.Equal(t, 201, res.Status, res.Body)
	assert.Equal(t, "2025-01-01", res.Data()["startDate"])
	assert.Equal(t, "2025-06-30", res.Data()["endDate"])

	res = env.Do(t, "PUT", fmt.Sprintf("/api/sponsors/%d", id), map[string]any{"level": "Gold"}, token)
	require.Equal(t, 200, res.Status, res.Body)
	assert.Equal(t, "Gold", res.Data()["level"])

	res = env.Do(t, "POST", "/api/sponsors", map[string]any{"name": "Cervecería Local"}, token)
	assert.Equal(t, 409, res.Status)
}
