package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"clubolimpo_backend/internals/databases/crud"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Mi Noticia Slug":          "mi-noticia-slug",
		"  --Hello,   World!!--  ": "hello-world",
		"Copa 2024 / Final":        "copa-2024-final",
		"Campeón":                  "campe-n",
		"***":                      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, GenerateSlug(in), in)
	}
}

func TestSlugOrDerive(t *testing.T) {
	explicit := "  custom-slug "
	blank := "   "
	assert.Equal(t, "custom-slug", SlugOrDerive(&explicit, "Ignored Title"))
	assert.Equal(t, "derived-title", SlugOrDerive(&blank, "Derived Title"))
	assert.Equal(t, "derived-title", SlugOrDerive(nil, "Derived Title"))
}

func TestPatchFieldTriState(t *testing.T) {
	var body struct {
		Name  PatchField[string] `json:"name"`
		Notes PatchField[string] `json:"notes"`
		Count PatchField[int]    `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Olimpo","notes":null}`), &body))

	assert.True(t, body.Name.Set())
	assert.True(t, body.Notes.Present)
	assert.Nil(t, body.Notes.Value)
	assert.False(t, body.Count.Present)

	name, notes := "old", "keep me"
	notesPtr := &notes
	count := 7
	body.Name.Apply(&name)
	body.Notes.ApplyNullable(&notesPtr)
	body.Count.Apply(&count)

	assert.Equal(t, "Olimpo", name)
	assert.Nil(t, notesPtr)
	assert.Equal(t, 7, count)
}

func TestTrimPatch(t *testing.T) {
	p := Ptr("   ")
	TrimPatch(&p)
	assert.True(t, p.Present)
	assert.Nil(t, p.Value)

	q := Ptr("  x ")
	TrimPatch(&q)
	assert.Equal(t, "x", *q.Value)
}

func TestCheckPatch(t *testing.T) {
	v := validator.New()
	errs := FieldErrors{}

	CheckPatch(v, errs, "name", PatchField[string]{Present: true}, "max=5", true)
	CheckPatch(v, errs, "bio", PatchField[string]{Present: true}, "max=5", false)
	CheckPatch(v, errs, "title", Ptr("demasiado largo"), "max=5", true)
	CheckPatch(v, errs, "skipped", PatchField[string]{}, "max=1", true)

	assert.Equal(t, []string{"no puede ser nulo"}, errs["name"])
	assert.NotContains(t, errs, "bio")
	assert.Equal(t, []string{"máximo 5"}, errs["title"])
	assert.NotContains(t, errs, "skipped")
}

func TestParseIDOrSlug(t *testing.T) {
	assert.Equal(t, IDOrSlug{ID: 42}, ParseIDOrSlug("42"))
	assert.True(t, ParseIDOrSlug("42").IsID())
	assert.Equal(t, IDOrSlug{Slug: "mi-noticia-slug"}, ParseIDOrSlug("mi-noticia-slug"))
	assert.Equal(t, IDOrSlug{Slug: "0"}, ParseIDOrSlug("0"))
	assert.Equal(t, IDOrSlug{Slug: "-3"}, ParseIDOrSlug("-3"))
	assert.False(t, ParseIDOrSlug("2024-final").IsID())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", d.String())

	d, err = ParseDate("2024-03-09T23:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", d.String())

	d, err = ParseDate("2024-03-09 00:00:00+00:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", d.String())

	_, err = ParseDate("09/03/2024")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	var body struct {
		Day *Date `json:"day"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2023-12-31"}`), &body))
	require.NotNil(t, body.Day)
	assert.Equal(t, time.December, body.Day.Time().Month())

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"2023-12-31"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"day":"yesterday"}`), &body))
}

func TestClassifyDBError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want DBErrorKind
	}{
		{"gorm not found", gorm.ErrRecordNotFound, DBErrNotFound},
		{"crud not found", fmt.Errorf("wrap: %w", crud.ErrNotFound), DBErrNotFound},
		{"pgconn unique", &pgconn.PgError{Code: "23505", ConstraintName: "uq_teams_name"}, DBErrDuplicate},
		{"pgconn fk", &pgconn.PgError{Code: "23503"}, DBErrForeignKey},
		{"pq unique", &pq.Error{Code: "23505"}, DBErrDuplicate},
		{"pq not null", &pq.Error{Code: "23502"}, DBErrCheck},
		{"gorm translated", gorm.ErrDuplicatedKey, DBErrDuplicate},
		{"gorm check", gorm.ErrCheckConstraintViolated, DBErrCheck},
		{"pgconn check", &pgconn.PgError{Code: "23514", ConstraintName: "chk_rating"}, DBErrCheck},
		{"sqlite text", errors.New("UNIQUE constraint failed: teams.name"), DBErrDuplicate},
		{"other", errors.New("connection reset"), DBErrUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, _ := ClassifyDBError(tc.err)
			assert.Equal(t, tc.want, kind)
		})
	}

	_, detail := ClassifyDBError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_teams_name"})
	assert.Equal(t, "uq_teams_name", detail)
}

func TestRespondDBErrorConflictDetail(t *testing.T) {
	app := fiber.New()
	app.Post("/teams", func(c *fiber.Ctx) error {
		err := fmt.Errorf("insert: %w", &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_teams_name",
			Detail:         "Key (name)=(Olimpo) already exists.",
		})
		return RespondDBError(c, err, "El equipo ya existe.", "Error interno")
	})
	app.Post("/check", func(c *fiber.Ctx) error {
		return RespondDBError(c, &pgconn.PgError{Code: "23514", ConstraintName: "chk_rating"}, "dup", "Error interno")
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/teams", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "El equipo ya existe.", body["message"])
	assert.Equal(t, "Key (name)=(Olimpo) already exists.", body["error_detail"])

	resp, err = app.Test(httptest.NewRequest("POST", "/check", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body = map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["message"], "chk_rating")
}
