package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "clubolimpo_backend/internals/features/content/sponsors/model"
	"clubolimpo_backend/internals/features/content/sponsors/repository"
	helper "clubolimpo_backend/internals/helpers"
	"clubolimpo_backend/internals/testutil"
)

func date(y int, m time.Month, d int) *helper.Date {
	v := helper.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &v
}

func activeNames(t *testing.T, repo *repository.SponsorRepository) []string {
	t.Helper()
	rows, err := repo.List(context.Background())
	require.NoError(t, err)
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names
}

func TestDeactivateExpired(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSponsorRepository(testutil.NewDB(t))
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, s := range []*model.Sponsor{
		{Name: "Vencido", EndDate: date(2025, 5, 1), Level: model.LevelPartner, IsActive: true},
		{Name: "Vigente", EndDate: date(2025, 7, 1), Level: model.LevelPartner, IsActive: true},
		{Name: "Sin Fin", Level: model.LevelPartner, IsActive: true},
	} {
		require.NoError(t, repo.Create(ctx, s))
	}

	n, err := repo.DeactivateExpired(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.ElementsMatch(t, []string{"Vigente", "Sin Fin"}, activeNames(t, repo))

	n, err = repo.DeactivateExpired(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeactivateExpiredKeepsLastDay(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSponsorRepository(testutil.NewDB(t))
	require.NoError(t, repo.Create(ctx, &model.Sponsor{
		Name: "Último Día", EndDate: date(2025, 6, 30), Level: model.LevelPartner, IsActive: true,
	}))

	n, err := repo.DeactivateExpired(ctx, time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []string{"Último Día"}, activeNames(t, repo))

	n, err = repo.DeactivateExpired(ctx, time.Date(2025, 7, 1, 0, 0, 1, 0, time.UTC))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.Empty(t, activeNames(t, repo))
}
