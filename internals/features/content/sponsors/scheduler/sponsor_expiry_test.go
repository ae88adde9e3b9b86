package scheduler

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExpirer struct {
	n   int64
	err error
	at  time.Time
}

func (s *stubExpirer) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	s.at = now
	return s.n, s.err
}

func quiet() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRunPassesClock(t *testing.T) {
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	repo := &stubExpirer{n: 2}
	job := NewSponsorExpiryJob(repo, quiet())
	job.Now = func() time.Time { return fixed }

	n, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.True(t, repo.at.Equal(fixed))
	assert.Equal(t, time.UTC, repo.at.Location())
}

func TestRunSurfacesErrors(t *testing.T) {
	log, hook := test.NewNullLogger()
	job := NewSponsorExpiryJob(&stubExpirer{err: errors.New("db down")}, log)
	_, err := job.Run(context.Background())
	assert.EqualError(t, err, "db down")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "[SPONSOR-EXPIRY] failed to deactivate expired sponsors", entry.Message)
	assert.Equal(t, err, entry.Data[logrus.ErrorKey])
}

func TestStart(t *testing.T) {
	job := NewSponsorExpiryJob(&stubExpirer{}, quiet())

	c, err := job.Start("  ")
	assert.NoError(t, err)
	assert.Nil(t, c)

	_, err = job.Start("not a schedule")
	assert.Error(t, err)

	c, err = job.Start("@every 1h")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()
}
