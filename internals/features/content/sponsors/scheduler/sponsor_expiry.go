package scheduler

import (
	"context"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Expirer is implemented by the sponsor repository.
type Expirer interface {
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type SponsorExpiryJob struct {
	Repo    Expirer
	Log     logrus.FieldLogger
	Now     func() time.Time
	Timeout time.Duration
}

func NewSponsorExpiryJob(repo Expirer, log logrus.FieldLogger) *SponsorExpiryJob {
	return &SponsorExpiryJob{Repo: repo, Log: log, Now: time.Now, Timeout: time.Minute}
}

// Run deactivates every active sponsor whose end date has passed.
func (j *SponsorExpiryJob) Run(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, j.Timeout)
	defer cancel()

	n, err := j.Repo.DeactivateExpired(ctx, j.Now().UTC())
	if err != nil {
		j.Log.WithError(err).Error("[SPONSOR-EXPIRY] failed to deactivate expired sponsors")
		return 0, err
	}
	if n > 0 {
		j.Log.WithField("count", n).Info("[SPONSOR-EXPIRY] sponsors deactivated")
	}
	return n, nil
}

// Start schedules the job; an empty schedule disables it and returns nil.
func (j *SponsorExpiryJob) Start(schedule string) (*cron.Cron, error) {
	schedule = strings.TrimSpace(schedule)
	if schedule == "" {
		j.Log.Info("[SPONSOR-EXPIRY] disabled (SPONSOR_EXPIRY_CRON empty)")
		return nil, nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(schedule, func() {
		_, _ = j.Run(context.Background())
	}); err != nil {
		return nil, err
	}
	c.Start()
	j.Log.WithField("schedule", schedule).Info("[SPONSOR-EXPIRY] started")
	return c, nil
}
