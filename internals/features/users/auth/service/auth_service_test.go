package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubolimpo_backend/internals/features/users/auth/repository"
	"clubolimpo_backend/internals/features/users/auth/service"
	"clubolimpo_backend/internals/testutil"
)

func newService(t *testing.T) *service.AuthService {
	t.Helper()
	return service.NewAuthService(repository.NewUserRepository(testutil.NewDB(t)), "s3cret", time.Hour)
}

func TestRegisterAllowsOnlyOneAdmin(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	user, err := svc.Register(ctx, "admin", "password1", nil)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "password1", user.Password)

	_, err = svc.Register(ctx, "second", "password2", nil)
	assert.ErrorIs(t, err, service.ErrAdminExists)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	_, err := svc.Register(ctx, "admin", "password1", nil)
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, _, _, err = svc.Login(ctx, "nobody", "password1")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	token, exp, user, err := svc.Login(ctx, " admin ", "password1")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, "admin", claims.Username)
}

func TestParseToken(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	user, err := svc.Register(ctx, "admin", "password1", nil)
	require.NoError(t, err)

	token, _, err := svc.IssueToken(user)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := *svc
		later.Now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.ParseToken(token)
		assert.ErrorIs(t, err, service.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := *svc
		other.Secret = "other"
		_, err := other.ParseToken(token)
		assert.ErrorIs(t, err, service.ErrTokenInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ParseToken("not.a.jwt")
		assert.ErrorIs(t, err, service.ErrTokenInvalid)
	})

	t.Run("missing secret", func(t *testing.T) {
		empty := *svc
		empty.Secret = ""
		_, err := empty.ParseToken(token)
		assert.ErrorIs(t, err, service.ErrMissingSecret)
	})
}

func TestTokenLivesTwentyFourHoursByDefault(t *testing.T) {
	ctx := context.Background()
	svc := service.NewAuthService(repository.NewUserRepository(testutil.NewDB(t)), "s3cret", 0)
	require.Equal(t, 24*time.Hour, svc.TTL)

	user, err := svc.Register(ctx, "admin", "password1", nil)
	require.NoError(t, err)

	issued := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return issued }
	token, exp, err := svc.IssueToken(user)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(24*time.Hour), exp)

	at := func(d time.Duration) *service.AuthService {
		s := *svc
		s.Now = func() time.Time { return issued.Add(d) }
		return &s
	}

	claims, err := at(23*time.Hour + 59*time.Minute).ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)

	_, err = at(24*time.Hour + time.Second).ParseToken(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}
