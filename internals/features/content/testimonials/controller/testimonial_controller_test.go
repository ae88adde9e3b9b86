package controller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "clubolimpo_backend/internals/helpers"
	"clubolimpo_backend/internals/testutil"
)

func TestTestimonialDefaultsAndRating(t *testing.T) {
	env := testutil.NewEnv(t)
	token := env.Token(t)

	res := env.Do(t, "POST", "/api/testimonials", map[string]any{
		"authorName": "Socio Fundador",
		"text":       "Una familia.",
		"rating":     5,
	}, token)
	require.Equal(t, 201, res.Status, res.Body)
	assert.Equal(t, helper.Today().String(), res.Data()["date"])

	res = env.Do(t, "POST", "/api/testimonials", map[string]any{
		"authorName": "Exigente",
		"text":       "Demasiadas estrellas.",
		"rating":     6,
	}, token)
	assert.Equal(t, 400, res.Status)
}
