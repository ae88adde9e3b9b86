package controller_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubolimpo_backend/internals/testutil"
)

func seedCategory(t *testing.T, env *testutil.Env, token, name string) uint {
	t.Helper()
	res := env.Do(t, "POST", "/api/categories", map[string]any{"name": name}, token)
	require.Equal(t, 201, res.Status, res.Body)
	return testutil.ID(res.Data())
}

func TestNewsSlugLookupCountsViews(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)
	cat := seedCategory(t, env, token, "Primer Equipo")

	res := env.Do(t, "POST", "/api/news", map[string]any{
		"title":       "Mi Noticia Slug",
		"content":     "Cuerpo",
		"categoryIds": []uint{cat},
	}, token)
	require.Equal(t, 201, res.Status, res.Body)
	assert.Equal(t, "mi-noticia-slug", res.Data()["slug"])
	assert.Equal(t, true, res.Data()["is_published"])
	cats, _ := res.Data()["categories"].([]any)
	assert.Len(t, cats, 1)
	id := testutil.ID(res.Data())

	res = env.Do(t, "GET", "/api/news/mi-noticia-slug", nil, "")
	require.Equal(t, 200, res.Status)
	assert.EqualValues(t, 1, res.Data()["viewsCount"])

	res = env.Do(t, "GET", fmt.Sprintf("/api/news/%d", id), nil, "")
	require.Equal(t, 200, res.Status)
	assert.EqualValues(t, 2, res.Data()["viewsCount"])

	res = env.Do(t, "GET", "/api/news/no-existe", nil, "")
	assert.Equal(t, 404, res.Status)
}

func TestNewsDraftsAndFilter(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)

	res := env.Do(t, "POST", "/api/news", map[string]any{
		"title":        "Borrador",
		"content":      "x",
		"is_published": false,
	}, token)
	require.Equal(t, 201, res.Status, res.Body)

	res = env.Do(t, "POST", "/api/news", map[string]any{"title": "Publicada", "content": "y"}, token)
	require.Equal(t, 201, res.Status)

	res = env.Do(t, "GET", "/api/news/borrador", nil, "")
	assert.Equal(t, 404, res.Status)

	res = env.Do(t, "GET", "/api/news?published=false", nil, "")
	require.Equal(t, 200, res.Status)
	require.Len(t, res.List(), 1)
	draft, _ := res.List()[0].(map[string]any)
	assert.Equal(t, "Borrador", draft["title"])

	res = env.Do(t, "GET", "/api/news", nil, "")
	require.Equal(t, 200, res.Status)
	assert.Len(t, res.List(), 2)

	res = env.Do(t, "GET", "/api/news?published=quizas", nil, "")
	assert.Equal(t, 400, res.Status)
}

func TestNewsCategories(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)
	a := seedCategory(t, env, token, "Cantera")
	b := seedCategory(t, env, token, "Femenino")

	res := env.Do(t, "POST", "/api/news", map[string]any{
		"title": "Con Categoría Fantasma", "content": "x", "categoryIds": []uint{a, 999},
	}, token)
	assert.Equal(t, 400, res.Status)

	res = env.Do(t, "GET", "/api/news", nil, "")
	assert.Empty(t, res.List())

	res = env.Do(t, "POST", "/api/news", map[string]any{
		"title": "Noticia", "content": "x", "categoryIds": []uint{a},
	}, token)
	require.Equal(t, 201, res.Status)
	id := testutil.ID(res.Data())

	res = env.Do(t, "PUT", fmt.Sprintf("/api/news/%d", id), map[string]any{"categoryIds": []uint{b}}, token)
	require.Equal(t, 200, res.Status, res.Body)
	cats, _ := res.Data()["categories"].([]any)
	require.Len(t, cats, 1)
	only, _ := cats[0].(map[string]any)
	assert.Equal(t, "Femenino", only["name"])

	res = env.Do(t, "PUT", fmt.Sprintf("/api/news/%d", id), map[string]any{"subtitle": "Nuevo"}, token)
	require.Equal(t, 200, res.Status)
	cats, _ = res.Data()["categories"].([]any)
	assert.Len(t, cats, 1)

	res = env.Do(t, "PUT", fmt.Sprintf("/api/news/delete/%d", id), nil, token)
	require.Equal(t, 200, res.Status)
	res = env.Do(t, "PUT", fmt.Sprintf("/api/news/delete/%d", id), nil, token)
	assert.Equal(t, 400, res.Status)
	assert.Contains(t, res.Message(), "ya está inactiva")
}
