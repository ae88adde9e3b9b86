package user

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubolimpo_backend/internals/features/users/auth/repository"
	authService "clubolimpo_backend/internals/features/users/auth/service"
	"clubolimpo_backend/internals/testutil"
)

func TestSeedAdminRunsOnce(t *testing.T) {
	ctx := context.Background()
	users := repository.NewUserRepository(testutil.NewDB(t))
	svc := authService.NewAuthService(users, "s", time.Hour)
	log := logrus.New()
	log.SetOutput(io.Discard)

	seed := AdminSeed{Username: "olimpoadmin", Password: "changeme", Email: " admin@olimpo.com "}
	require.NoError(t, SeedAdmin(ctx, svc, seed, log))
	require.NoError(t, SeedAdmin(ctx, svc, AdminSeed{Username: "other", Password: "x"}, log))

	n, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, _, u, err := svc.Login(ctx, "olimpoadmin", "changeme")
	require.NoError(t, err)
	require.NotNil(t, u.Email)
	assert.Equal(t, "admin@olimpo.com", *u.Email)
}

func TestSeedAdminSkipsWithoutCredentials(t *testing.T) {
	ctx := context.Background()
	users := repository.NewUserRepository(testutil.NewDB(t))
	svc := authService.NewAuthService(users, "s", time.Hour)
	log := logrus.New()
	log.SetOutput(io.Discard)

	require.NoError(t, SeedAdmin(ctx, svc, AdminSeed{Username: "admin"}, log))
	n, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
